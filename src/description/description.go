// Package description finds a short biographical text for a MusicBrainz entity.
//
// The text is the introduction of the entity's English Wikipedia article. The article
// title is taken from the entity's Wikipedia relation when it has one. Otherwise the
// Wikidata relation is used for looking up the title of the English article in the
// item's site links.
//
// The following APIs are used:
//
//   - Wikidata API: https://www.wikidata.org/w/api.php?action=help&modules=wbgetentities
//   - Wikipedia TextExtracts: https://www.mediawiki.org/wiki/Extension:TextExtracts
package description

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ironsmile/musicsearch/src/musicbrainz"
	"github.com/ironsmile/musicsearch/src/source"
)

// Default addresses of the APIs.
const (
	DefaultWikidataURL  = "https://www.wikidata.org/w/api.php"
	DefaultWikipediaURL = "https://en.wikipedia.org/w/api.php"
)

// Names used for the sources in logs and metrics.
const (
	WikidataSource  = "wikidata"
	WikipediaSource = "wikipedia"
)

const englishSiteLink = "enwiki"

// ErrMalformedResponse is returned when an API response does not contain the
// expected fields.
var ErrMalformedResponse = errors.New("unexpected response structure")

// ErrUnrecognisedURL is returned for relations with URLs which do not point to a
// Wikipedia article or a Wikidata item.
var ErrUnrecognisedURL = errors.New("unrecognised wiki URL")

// Outcome is the result of a description lookup. It either has a non-empty Text or
// its Tier is TierNone.
type Outcome struct {
	Text string
	Tier Tier
}

// Unavailable returns the outcome for entities without a description.
func Unavailable() Outcome {
	return Outcome{Tier: TierNone}
}

// Available returns true when there is a description.
func (o Outcome) Available() bool {
	return o.Tier != TierNone
}

// MarshalJSON encodes the outcome as its text or null when it is not available.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if !o.Available() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Text)
}

// Options configure a Resolver. Zero values mean defaults.
type Options struct {
	WikidataURL  string
	WikipediaURL string

	// FallbackOnError makes failed Wikidata and Wikipedia lookups result in an
	// unavailable description instead of an error.
	FallbackOnError bool

	Logger *log.Logger
}

// Resolver finds descriptions. It is safe for concurrent use.
type Resolver struct {
	fetcher      source.Fetcher
	wikidataURL  string
	wikipediaURL string
	fallback     bool
	log          *log.Logger
}

// NewResolver returns a Resolver which uses `fetcher` for its lookups.
func NewResolver(fetcher source.Fetcher, opts Options) *Resolver {
	r := &Resolver{
		fetcher:      fetcher,
		wikidataURL:  opts.WikidataURL,
		wikipediaURL: opts.WikipediaURL,
		fallback:     opts.FallbackOnError,
		log:          opts.Logger,
	}

	if r.wikidataURL == "" {
		r.wikidataURL = DefaultWikidataURL
	}
	if r.wikipediaURL == "" {
		r.wikipediaURL = DefaultWikipediaURL
	}
	if r.log == nil {
		r.log = log.New(io.Discard)
	}

	return r
}

// Resolve returns the description for an entity with `relations`. Entities without
// Wikipedia or Wikidata relations have an unavailable description and no requests
// are made for them.
func (r *Resolver) Resolve(
	ctx context.Context,
	relations []musicbrainz.Relation,
) (Outcome, error) {
	step, err := Plan(relations)
	if err != nil {
		return r.failed(ctx, step, err)
	}

	var title string
	switch step.Tier {
	case TierNone:
		return Unavailable(), nil
	case TierDirect:
		title = step.Key
	case TierIndirect:
		title, err = r.englishTitle(ctx, step.Key)
		if err != nil {
			return r.failed(ctx, step, err)
		}
	}

	extract, err := r.extract(ctx, title)
	if err != nil {
		return r.failed(ctx, step, err)
	}

	if strings.TrimSpace(extract) == "" {
		return Unavailable(), nil
	}

	return Outcome{Text: extract, Tier: step.Tier}, nil
}

func (r *Resolver) failed(ctx context.Context, step Step, err error) (Outcome, error) {
	if !r.fallback || ctx.Err() != nil {
		return Outcome{}, fmt.Errorf("resolving description: %w", err)
	}

	r.log.Warn("description not available",
		"tier", step.Tier,
		"key", step.Key,
		"err", err,
	)
	return Unavailable(), nil
}

// englishTitle returns the title of the English Wikipedia article for the Wikidata
// item with `itemID`.
func (r *Resolver) englishTitle(ctx context.Context, itemID string) (string, error) {
	query := make(url.Values)
	query.Set("action", "wbgetentities")
	query.Set("format", "json")
	query.Set("props", "sitelinks")
	query.Set("ids", itemID)

	var resp wdEntitiesResponse
	_, err := r.fetcher.Fetch(ctx, source.Target{
		Source: WikidataSource,
		Base:   r.wikidataURL,
		Query:  query,
	}, source.Required, &resp)
	if err != nil {
		return "", err
	}

	item, ok := resp.Entities[itemID]
	if !ok {
		return "", fmt.Errorf("%w: no Wikidata entity %s", ErrMalformedResponse, itemID)
	}

	link, ok := item.Sitelinks[englishSiteLink]
	if !ok || link.Title == "" {
		return "", fmt.Errorf(
			"%w: Wikidata entity %s has no %s site link",
			ErrMalformedResponse,
			itemID,
			englishSiteLink,
		)
	}

	return link.Title, nil
}

// extract returns the plain text introduction of the Wikipedia article `title`.
func (r *Resolver) extract(ctx context.Context, title string) (string, error) {
	query := make(url.Values)
	query.Set("action", "query")
	query.Set("format", "json")
	query.Set("prop", "extracts")
	query.Set("exintro", "true")
	query.Set("explaintext", "true")
	query.Set("redirects", "true")
	query.Set("titles", title)

	var resp wpQueryResponse
	_, err := r.fetcher.Fetch(ctx, source.Target{
		Source: WikipediaSource,
		Base:   r.wikipediaURL,
		Query:  query,
	}, source.Required, &resp)
	if err != nil {
		return "", err
	}

	if resp.Query == nil || len(resp.Query.Pages) == 0 {
		return "", fmt.Errorf("%w: no Wikipedia pages for %q", ErrMalformedResponse, title)
	}

	pageIDs := make([]string, 0, len(resp.Query.Pages))
	for pageID := range resp.Query.Pages {
		pageIDs = append(pageIDs, pageID)
	}
	sort.Slice(pageIDs, func(i, j int) bool {
		return pageIDLess(pageIDs[i], pageIDs[j])
	})

	// Missing pages have negative IDs and no extract.
	for _, pageID := range pageIDs {
		if page := resp.Query.Pages[pageID]; page.Extract != nil {
			return *page.Extract, nil
		}
	}

	return "", fmt.Errorf(
		"%w: Wikipedia page for %q has no extract",
		ErrMalformedResponse,
		title,
	)
}

// pageIDLess orders Wikipedia page IDs numerically. IDs which are not numbers come
// after the numeric ones.
func pageIDLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// The following are structures only used to decode the JSON responses of the
// Wikidata and Wikipedia APIs. And only the stuff we are interested in.

/*
wdEntitiesResponse represents the response of wbgetentities. Truncated example:

	{
	  "entities": {
	    "Q43177": {
	      "type": "item",
	      "id": "Q43177",
	      "sitelinks": {
	        "enwiki": {"site": "enwiki", "title": "Iron Maiden", "badges": []}
	      }
	    }
	  }
	}
*/
type wdEntitiesResponse struct {
	Entities map[string]wdEntity `json:"entities"`
}

type wdEntity struct {
	Sitelinks map[string]wdSiteLink `json:"sitelinks"`
}

type wdSiteLink struct {
	Title string `json:"title"`
}

type wpQueryResponse struct {
	Query *wpQuery `json:"query"`
}

type wpQuery struct {
	Pages map[string]wpPage `json:"pages"`
}

type wpPage struct {
	Title   string  `json:"title"`
	Extract *string `json:"extract"`
}
