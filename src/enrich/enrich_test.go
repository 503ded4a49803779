package enrich_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ironsmile/musicsearch/src/art"
	"github.com/ironsmile/musicsearch/src/art/artfakes"
	"github.com/ironsmile/musicsearch/src/assert"
	"github.com/ironsmile/musicsearch/src/description"
	"github.com/ironsmile/musicsearch/src/enrich"
	"github.com/ironsmile/musicsearch/src/enrich/enrichfakes"
	"github.com/ironsmile/musicsearch/src/entity"
	"github.com/ironsmile/musicsearch/src/metrics"
	"github.com/ironsmile/musicsearch/src/musicbrainz"
)

const nirvanaMBID = "5b11f4ce-a62d-471e-81fc-a69a8278c7da"

var nirvanaRecord = &musicbrainz.Record{
	Name: "Nirvana",
	Relations: []musicbrainz.Relation{
		{
			Type: musicbrainz.RelationWikidata,
			URL: musicbrainz.RelationURL{
				Resource: "https://www.wikidata.org/wiki/Q11649",
			},
		},
	},
	ReleaseGroups: []musicbrainz.ReleaseGroup{
		{ID: "rg-bleach", Title: "Bleach", PrimaryType: "Album"},
		{ID: "rg-smells", Title: "Smells Like Teen Spirit", PrimaryType: "Single"},
		{ID: "rg-nevermind", Title: "Nevermind", PrimaryType: "Album"},
	},
}

type enricherFakes struct {
	catalog   *enrichfakes.FakeCatalog
	describer *enrichfakes.FakeDescriber
	finder    *artfakes.FakeCoverFinder
	metrics   *metrics.Metrics
}

func newTestEnricher(t *testing.T) (*enrich.Enricher, enricherFakes, entity.Identifier) {
	t.Helper()

	fakes := enricherFakes{
		catalog:   &enrichfakes.FakeCatalog{},
		describer: &enrichfakes.FakeDescriber{},
		finder:    &artfakes.FakeCoverFinder{},
		metrics:   metrics.New(),
	}

	fakes.catalog.LookupReturns(nirvanaRecord, true, nil)
	fakes.describer.ResolveReturns(description.Outcome{
		Text: "Nirvana was an American rock band.",
		Tier: description.TierIndirect,
	}, nil)
	fakes.finder.FindCoverCalls(func(_ context.Context, albumID string) (art.ImageRef, error) {
		if albumID == "rg-nevermind" {
			return art.ImageRef{}, nil
		}
		return art.ImageRef{URL: coverURL(albumID)}, nil
	})

	id, err := entity.NewIdentifier(nirvanaMBID, entity.Artist)
	assert.NilErr(t, err)

	enricher := enrich.NewEnricher(
		fakes.catalog,
		fakes.describer,
		fakes.finder,
		enrich.Options{Metrics: fakes.metrics},
	)
	return enricher, fakes, id
}

func TestEnrich(t *testing.T) {
	enricher, fakes, id := newTestEnricher(t)

	rec, err := enricher.Enrich(context.Background(), id)
	assert.NilErr(t, err)
	if rec == nil {
		t.Fatal("expected a record but got nil")
	}

	assert.Equal(t, "Nirvana", rec.Name)
	assert.Equal(t, nirvanaMBID, rec.MBID)
	assert.Equal(t, "Nirvana was an American rock band.", rec.Description.Text)
	assert.Equal(t, 2, len(rec.Albums))
	assert.Equal(t, enrich.Album{
		Title: "Bleach",
		ID:    "rg-bleach",
		Image: art.ImageRef{URL: coverURL("rg-bleach")},
	}, rec.Albums[0])
	assert.Equal(t, enrich.Album{Title: "Nevermind", ID: "rg-nevermind"}, rec.Albums[1])

	_, lookedUp := fakes.catalog.LookupArgsForCall(0)
	assert.Equal(t, id, lookedUp)

	_, relations := fakes.describer.ResolveArgsForCall(0)
	assert.Equal(t, 1, len(relations))
	assert.Equal(t, nirvanaRecord.Relations[0], relations[0])

	okCount := testutil.ToFloat64(
		fakes.metrics.Enrichments.WithLabelValues(metrics.OutcomeOK),
	)
	assert.Equal(t, 1.0, okCount)
}

func TestEnrichJSON(t *testing.T) {
	enricher, _, id := newTestEnricher(t)

	rec, err := enricher.Enrich(context.Background(), id)
	assert.NilErr(t, err)

	encoded, err := json.Marshal(rec)
	assert.NilErr(t, err)

	expected := `{"name":"Nirvana","mbid":"` + nirvanaMBID + `",` +
		`"description":"Nirvana was an American rock band.",` +
		`"albums":[` +
		`{"title":"Bleach","id":"rg-bleach","image":"http://caa/rg-bleach.jpg"},` +
		`{"title":"Nevermind","id":"rg-nevermind","image":null}]}`
	assert.Equal(t, expected, string(encoded))
}

// TestEnrichIdempotent makes sure that enriching the same entity twice with the
// same upstream answers gives equal records.
func TestEnrichIdempotent(t *testing.T) {
	enricher, _, id := newTestEnricher(t)

	first, err := enricher.Enrich(context.Background(), id)
	assert.NilErr(t, err)
	second, err := enricher.Enrich(context.Background(), id)
	assert.NilErr(t, err)

	firstJSON, err := json.Marshal(first)
	assert.NilErr(t, err)
	secondJSON, err := json.Marshal(second)
	assert.NilErr(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestEnrichNotFound(t *testing.T) {
	enricher, fakes, id := newTestEnricher(t)
	fakes.catalog.LookupReturns(nil, false, nil)

	rec, err := enricher.Enrich(context.Background(), id)
	assert.ErrorIs(t, err, enrich.ErrNotFound)
	if rec != nil {
		t.Errorf("expected no record but got %+v", rec)
	}

	assert.Equal(t, 0, fakes.describer.ResolveCallCount())
	assert.Equal(t, 0, fakes.finder.FindCoverCallCount())

	notFoundCount := testutil.ToFloat64(
		fakes.metrics.Enrichments.WithLabelValues(metrics.OutcomeNotFound),
	)
	assert.Equal(t, 1.0, notFoundCount)
}

func TestEnrichFailures(t *testing.T) {
	upstreamErr := errors.New("upstream is on fire")

	tests := []struct {
		desc  string
		setup func(enricherFakes)
	}{
		{
			desc: "catalog lookup",
			setup: func(f enricherFakes) {
				f.catalog.LookupReturns(nil, false, upstreamErr)
			},
		},
		{
			desc: "description",
			setup: func(f enricherFakes) {
				f.describer.ResolveReturns(description.Outcome{}, upstreamErr)
			},
		},
		{
			desc: "cover art",
			setup: func(f enricherFakes) {
				f.finder.FindCoverReturns(art.ImageRef{}, upstreamErr)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			enricher, fakes, id := newTestEnricher(t)
			test.setup(fakes)

			rec, err := enricher.Enrich(context.Background(), id)
			assert.ErrorIs(t, err, upstreamErr)
			if errors.Is(err, enrich.ErrNotFound) {
				t.Errorf("failure must not be reported as not found: %s", err)
			}
			if rec != nil {
				t.Errorf("expected no record but got %+v", rec)
			}

			errCount := testutil.ToFloat64(
				fakes.metrics.Enrichments.WithLabelValues(metrics.OutcomeError),
			)
			assert.Equal(t, 1.0, errCount)
		})
	}
}

func TestEnrichCancelled(t *testing.T) {
	enricher, fakes, id := newTestEnricher(t)
	fakes.describer.ResolveCalls(func(
		ctx context.Context,
		_ []musicbrainz.Relation,
	) (description.Outcome, error) {
		<-ctx.Done()
		return description.Outcome{}, ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := enricher.Enrich(ctx, id)
	assert.ErrorIs(t, err, context.Canceled)
	if rec != nil {
		t.Errorf("expected no record but got %+v", rec)
	}
}
