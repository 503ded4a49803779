// Package musicbrainz looks up entities in the MusicBrainz web service and returns
// the parts of them which are needed for enriching an artist: its name, its URL
// relations and its release groups.
//
// More info: https://musicbrainz.org/doc/MusicBrainz_API
package musicbrainz

import (
	"context"
	"net/url"

	"github.com/ironsmile/musicsearch/src/entity"
	"github.com/ironsmile/musicsearch/src/source"
)

// DefaultAPIURL is the address of the public MusicBrainz web service.
const DefaultAPIURL = "https://musicbrainz.org/ws/2"

// SourceName is the name used for MusicBrainz in logs and metrics.
const SourceName = "musicbrainz"

// Relation types which point to sources of biographical text.
const (
	RelationWikipedia = "wikipedia"
	RelationWikidata  = "wikidata"
)

// PrimaryTypeAlbum is the primary type of release groups which are studio albums.
const PrimaryTypeAlbum = "Album"

// Record is an entity as returned by the lookup endpoint with URL relations and
// release groups included.
type Record struct {
	Name          string         `json:"name"`
	Relations     []Relation     `json:"relations"`
	ReleaseGroups []ReleaseGroup `json:"release-groups"`
}

// Relation is a typed link from an entity to an external resource.
type Relation struct {
	Type string      `json:"type"`
	URL  RelationURL `json:"url"`
}

// RelationURL is the target of a URL relation.
type RelationURL struct {
	Resource string `json:"resource"`
}

// ReleaseGroup groups all releases of one album, single, EP and so on.
type ReleaseGroup struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PrimaryType string `json:"primary-type"`
}

// Client looks up entities in MusicBrainz.
type Client struct {
	fetcher source.Fetcher
	apiURL  string
}

// NewClient returns a Client which uses `fetcher` for requests to the web service
// at `apiURL`. An empty `apiURL` means DefaultAPIURL.
func NewClient(fetcher source.Fetcher, apiURL string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		fetcher: fetcher,
		apiURL:  apiURL,
	}
}

// Lookup returns the record for `id`. When MusicBrainz does not return it found is
// false and the error is nil.
func (c *Client) Lookup(ctx context.Context, id entity.Identifier) (*Record, bool, error) {
	query := make(url.Values)
	query.Set("fmt", "json")
	query.Set("inc", "url-rels release-groups")

	var rec Record
	found, err := c.fetcher.Fetch(ctx, source.Target{
		Source: SourceName,
		Base:   c.apiURL,
		Path:   []string{id.Type.String(), id.ID},
		Query:  query,
	}, source.Optional, &rec)
	if err != nil || !found {
		return nil, false, err
	}

	return &rec, true, nil
}
