package webserver_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ironsmile/musicsearch/src/webserver"
)

// TestWithInternalError makes sure that Internal Server Error status code is
// set when the underlying handler returns an error and that the error ends up in
// the logs instead of the response body.
func TestWithInternalError(t *testing.T) {
	var someError = fmt.Errorf("test-error")

	logs := &bytes.Buffer{}
	h := webserver.WithInternalError(
		log.New(logs),
		func(_ http.ResponseWriter, _ *http.Request) error {
			return someError
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	statusCode := resp.Result().StatusCode
	if statusCode != http.StatusInternalServerError {
		t.Errorf("expected status code %d but got %d",
			http.StatusInternalServerError, statusCode)
	}

	if strings.Contains(resp.Body.String(), someError.Error()) {
		t.Errorf("response body included the error string")
	}

	if !strings.Contains(logs.String(), someError.Error()) {
		t.Errorf("the error was not logged")
	}
}

func TestWithInternalErrorNoError(t *testing.T) {
	h := webserver.WithInternalError(
		log.New(&bytes.Buffer{}),
		func(w http.ResponseWriter, _ *http.Request) error {
			w.WriteHeader(http.StatusAccepted)
			return nil
		},
	)

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusAccepted {
		t.Errorf("expected status code %d but got %d", http.StatusAccepted, resp.Code)
	}
}
