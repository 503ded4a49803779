package description_test

import (
	"testing"

	"github.com/ironsmile/musicsearch/src/assert"
	"github.com/ironsmile/musicsearch/src/description"
	"github.com/ironsmile/musicsearch/src/musicbrainz"
)

func rel(relType, resource string) musicbrainz.Relation {
	return musicbrainz.Relation{
		Type: relType,
		URL:  musicbrainz.RelationURL{Resource: resource},
	}
}

// TestPlan checks which tier and key are chosen for all kinds of relation sets.
func TestPlan(t *testing.T) {
	tests := []struct {
		desc      string
		relations []musicbrainz.Relation
		expected  description.Step
		expErr    bool
	}{
		{
			desc:     "no relations",
			expected: description.Step{Tier: description.TierNone},
		},
		{
			desc: "unrelated relations only",
			relations: []musicbrainz.Relation{
				rel("discogs", "https://www.discogs.com/artist/251595"),
				rel("fanpage", "http://maidenfans.com/"),
			},
			expected: description.Step{Tier: description.TierNone},
		},
		{
			desc: "wikipedia only",
			relations: []musicbrainz.Relation{
				rel("wikipedia", "https://en.wikipedia.org/wiki/Example_Band"),
			},
			expected: description.Step{Tier: description.TierDirect, Key: "Example_Band"},
		},
		{
			desc: "wikidata only",
			relations: []musicbrainz.Relation{
				rel("discogs", "https://www.discogs.com/artist/251595"),
				rel("wikidata", "https://www.wikidata.org/wiki/Q43177"),
			},
			expected: description.Step{Tier: description.TierIndirect, Key: "Q43177"},
		},
		{
			desc: "wikipedia wins over wikidata regardless of order",
			relations: []musicbrainz.Relation{
				rel("wikipedia", "https://en.wikipedia.org/wiki/Iron_Maiden"),
				rel("wikidata", "https://www.wikidata.org/wiki/Q43177"),
			},
			expected: description.Step{Tier: description.TierDirect, Key: "Iron_Maiden"},
		},
		{
			desc: "last relation of a type wins",
			relations: []musicbrainz.Relation{
				rel("wikidata", "https://www.wikidata.org/wiki/Q1"),
				rel("wikidata", "https://www.wikidata.org/wiki/Q2"),
			},
			expected: description.Step{Tier: description.TierIndirect, Key: "Q2"},
		},
		{
			desc: "escaped titles are decoded",
			relations: []musicbrainz.Relation{
				rel("wikipedia", "https://en.wikipedia.org/wiki/AC%2FDC"),
			},
			expected: description.Step{Tier: description.TierDirect, Key: "AC/DC"},
		},
		{
			desc: "host of different length",
			relations: []musicbrainz.Relation{
				rel("wikipedia", "http://wikipedia.example/wiki/Motörhead"),
			},
			expected: description.Step{Tier: description.TierDirect, Key: "Motörhead"},
		},
		{
			desc: "not a wiki URL",
			relations: []musicbrainz.Relation{
				rel("wikipedia", "https://en.wikipedia.org/w/index.php?title=Iron_Maiden"),
			},
			expErr: true,
		},
		{
			desc: "empty key",
			relations: []musicbrainz.Relation{
				rel("wikidata", "https://www.wikidata.org/wiki/"),
			},
			expErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			step, err := description.Plan(test.relations)
			if test.expErr {
				assert.ErrorIs(t, err, description.ErrUnrecognisedURL)
				return
			}

			assert.NilErr(t, err)
			assert.Equal(t, test.expected, step)
		})
	}
}
