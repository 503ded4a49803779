// Package entity defines the MusicBrainz entity types and the identifiers used for
// looking them up.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pborman/uuid"
)

// ErrUnknownType is returned by ParseType for strings which are not one of the
// MusicBrainz entity types.
var ErrUnknownType = errors.New("unknown entity type")

// ErrInvalidID is returned by NewIdentifier when the ID is not a MusicBrainz ID.
var ErrInvalidID = errors.New("invalid MusicBrainz ID")

// Type is a MusicBrainz entity type. Its string value is the path segment used for
// this type in the web service.
type Type string

// All the entity types supported by the MusicBrainz web service.
const (
	Area         Type = "area"
	Artist       Type = "artist"
	Event        Type = "event"
	Genre        Type = "genre"
	Instrument   Type = "instrument"
	Label        Type = "label"
	Place        Type = "place"
	Recording    Type = "recording"
	Release      Type = "release"
	ReleaseGroup Type = "release-group"
	Series       Type = "series"
	Work         Type = "work"
	URL          Type = "url"
)

var knownTypes = map[Type]struct{}{
	Area:         {},
	Artist:       {},
	Event:        {},
	Genre:        {},
	Instrument:   {},
	Label:        {},
	Place:        {},
	Recording:    {},
	Release:      {},
	ReleaseGroup: {},
	Series:       {},
	Work:         {},
	URL:          {},
}

// ParseType returns the Type for `s`. Matching is case insensitive.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := knownTypes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Identifier points to a single entity in the MusicBrainz database.
type Identifier struct {
	// ID is the MBID in its canonical lower case form.
	ID string

	// Type is the kind of entity this ID belongs to.
	Type Type
}

// NewIdentifier validates `id` and returns an Identifier for it.
func NewIdentifier(id string, t Type) (Identifier, error) {
	if _, ok := knownTypes[t]; !ok {
		return Identifier{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}

	parsed := uuid.Parse(strings.TrimSpace(id))
	if parsed == nil {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return Identifier{
		ID:   parsed.String(),
		Type: t,
	}, nil
}

// String returns a human readable representation such as "artist/<mbid>".
func (i Identifier) String() string {
	return fmt.Sprintf("%s/%s", i.Type, i.ID)
}
