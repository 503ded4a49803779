package description

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ironsmile/musicsearch/src/musicbrainz"
)

// wikiPathPrefix is the path prefix of both Wikipedia articles and Wikidata items.
const wikiPathPrefix = "/wiki/"

// Tier says from where a description comes.
type Tier int

const (
	// TierNone means that there is no description available.
	TierNone Tier = iota

	// TierDirect descriptions are found using the Wikipedia relation directly.
	TierDirect

	// TierIndirect descriptions are found by first getting the Wikipedia title from
	// the Wikidata relation.
	TierIndirect
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierDirect:
		return "direct"
	case TierIndirect:
		return "indirect"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Step is what has to be done in order to find a description. Key is the Wikipedia
// title for TierDirect and the Wikidata item ID for TierIndirect.
type Step struct {
	Tier Tier
	Key  string
}

// Plan decides how the description for an entity with `relations` will be found.
// It does no I/O. Wikipedia relations take precedence over Wikidata ones. When there
// is more than one relation of a type the last one is used.
func Plan(relations []musicbrainz.Relation) (Step, error) {
	var wikipedia, wikidata *musicbrainz.Relation

	for i := range relations {
		switch relations[i].Type {
		case musicbrainz.RelationWikipedia:
			wikipedia = &relations[i]
		case musicbrainz.RelationWikidata:
			wikidata = &relations[i]
		}
	}

	if wikipedia != nil {
		title, err := keyFromResource(wikipedia.URL.Resource)
		if err != nil {
			return Step{}, err
		}
		return Step{Tier: TierDirect, Key: title}, nil
	}

	if wikidata != nil {
		itemID, err := keyFromResource(wikidata.URL.Resource)
		if err != nil {
			return Step{}, err
		}
		return Step{Tier: TierIndirect, Key: itemID}, nil
	}

	return Step{Tier: TierNone}, nil
}

// keyFromResource returns the part of the path after "/wiki/" for URLs such as
// https://en.wikipedia.org/wiki/Iron_Maiden or https://www.wikidata.org/wiki/Q43177.
func keyFromResource(resource string) (string, error) {
	resURL, err := url.Parse(resource)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnrecognisedURL, err)
	}

	if !strings.HasPrefix(resURL.Path, wikiPathPrefix) {
		return "", fmt.Errorf("%w: %s", ErrUnrecognisedURL, resource)
	}

	key := strings.TrimPrefix(resURL.Path, wikiPathPrefix)
	key = strings.TrimSuffix(key, "/")
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrUnrecognisedURL, resource)
	}

	return key, nil
}
