package assert

import "errors"

// ErrorIs checks that `err` matches `target` using errors.Is and fails the test
// otherwise.
func ErrorIs(t TestingErrf, err, target error, msgAndArgs ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error `%v` but got `%v`%s",
		target, err, fromMsgAndArgs(msgAndArgs...),
	)
}
