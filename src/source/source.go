// Package source is responsible for fetching JSON documents from the upstream web
// services: MusicBrainz, Wikidata, Wikipedia and the Cover Art Archive.
//
// Every call site chooses a Policy which decides what a missing document means to it.
// Non-success HTTP statuses are "not found". Everything else which goes wrong, such as
// failed connections or malformed JSON, is an error.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrNotFound is matched by the errors returned for documents which were not found
// when the Required policy is used.
var ErrNotFound = errors.New("document not found")

// ErrResponseTooBig is returned when the response body is larger than the allowed
// maximum.
var ErrResponseTooBig = errors.New("response body is too big")

// Policy decides how a Fetcher reports documents which could not be found.
type Policy int

const (
	// Required documents which are not found cause an error which matches
	// ErrNotFound.
	Required Policy = iota

	// Optional documents which are not found are reported with found == false and
	// no error.
	Optional

	// BestEffort is the same as Optional but requests which did not finish in the
	// per-request timeout are reported as not found too.
	BestEffort
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case BestEffort:
		return "best-effort"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Target describes a single document in an upstream service.
type Target struct {
	// Source is a short name of the upstream service. It is used for logging,
	// metrics and errors.
	Source string

	// Base is the URL of the service API, for example "https://musicbrainz.org/ws/2".
	Base string

	// Path segments appended to Base. Every one of them is escaped.
	Path []string

	// Query is the query string of the request.
	Query url.Values
}

// URL returns the full URL of the target.
func (t Target) URL() (*url.URL, error) {
	base, err := url.Parse(t.Base)
	if err != nil {
		return nil, fmt.Errorf("parsing %s base URL: %w", t.Source, err)
	}

	if len(t.Path) > 0 {
		escaped := make([]string, 0, len(t.Path))
		for _, segment := range t.Path {
			escaped = append(escaped, url.PathEscape(segment))
		}
		base = base.JoinPath(escaped...)
	}

	if len(t.Query) > 0 {
		base.RawQuery = t.Query.Encode()
	}

	return base, nil
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Fetcher

// Fetcher retrieves a single JSON document and decodes it in `dst`.
type Fetcher interface {
	// Fetch makes one GET request for `target` and decodes the response in `dst`.
	// When found is false `dst` is left untouched.
	Fetch(ctx context.Context, target Target, policy Policy, dst any) (found bool, err error)
}

// Error is returned by the Client for failed requests.
type Error struct {
	// Source is the same as Target.Source.
	Source string

	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status code of the response if one was received.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned HTTP %d for %s: %s",
			e.Source, e.StatusCode, e.URL, e.Err)
	}
	return fmt.Sprintf("%s request %s: %s", e.Source, e.URL, e.Err)
}

// Unwrap makes errors.Is and errors.As work with the cause.
func (e *Error) Unwrap() error {
	return e.Err
}
