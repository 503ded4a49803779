package entity_test

import (
	"errors"
	"testing"

	"github.com/ironsmile/musicsearch/src/assert"
	"github.com/ironsmile/musicsearch/src/entity"
)

// TestParseType checks that all known types are accepted regardless of their case
// and that unknown ones are rejected.
func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.Type
		err      error
	}{
		{input: "artist", expected: entity.Artist},
		{input: "Release-Group", expected: entity.ReleaseGroup},
		{input: " label ", expected: entity.Label},
		{input: "URL", expected: entity.URL},
		{input: "band", err: entity.ErrUnknownType},
		{input: "", err: entity.ErrUnknownType},
	}

	for _, test := range tests {
		found, err := entity.ParseType(test.input)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%q: expected error %v but got %v", test.input, test.err, err)
			}
			continue
		}

		assert.NilErr(t, err, "parsing %q", test.input)
		assert.Equal(t, test.expected, found, "parsing %q", test.input)
	}
}

// TestNewIdentifier makes sure identifiers are validated and normalised.
func TestNewIdentifier(t *testing.T) {
	id, err := entity.NewIdentifier(
		"  5B11F4CE-A62D-471E-81FC-A69A8278C7DA ",
		entity.Artist,
	)
	assert.NilErr(t, err)
	assert.Equal(t, "5b11f4ce-a62d-471e-81fc-a69a8278c7da", id.ID)
	assert.Equal(t, entity.Artist, id.Type)
	assert.Equal(t, "artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da", id.String())

	_, err = entity.NewIdentifier("not-an-mbid", entity.Artist)
	if !errors.Is(err, entity.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID but got %v", err)
	}

	_, err = entity.NewIdentifier("5b11f4ce-a62d-471e-81fc-a69a8278c7da", entity.Type("band"))
	if !errors.Is(err, entity.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType but got %v", err)
	}
}
