// Package enrich puts together the enriched record of a MusicBrainz entity. Its name
// comes from MusicBrainz, its description from Wikipedia and the cover images of its
// albums from the Cover Art Archive.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/musicsearch/src/art"
	"github.com/ironsmile/musicsearch/src/description"
	"github.com/ironsmile/musicsearch/src/entity"
	"github.com/ironsmile/musicsearch/src/metrics"
	"github.com/ironsmile/musicsearch/src/musicbrainz"
)

// ErrNotFound is returned by Enrich when MusicBrainz does not know the entity.
var ErrNotFound = errors.New("entity not found")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Catalog

// Catalog looks up entities in the metadata catalog. It is satisfied by
// *musicbrainz.Client.
type Catalog interface {
	Lookup(ctx context.Context, id entity.Identifier) (*musicbrainz.Record, bool, error)
}

//counterfeiter:generate . Describer

// Describer finds the description of an entity from its relations. It is satisfied
// by *description.Resolver.
type Describer interface {
	Resolve(ctx context.Context, relations []musicbrainz.Relation) (description.Outcome, error)
}

// Record is the enriched entity.
type Record struct {
	Name        string              `json:"name"`
	MBID        string              `json:"mbid"`
	Description description.Outcome `json:"description"`
	Albums      []Album             `json:"albums"`
}

// Options configure an Enricher.
type Options struct {
	// MaxParallel is the maximum number of cover lookups done at the same time for
	// a single record. Zero means no limit.
	MaxParallel int

	Metrics *metrics.Metrics
	Logger  *log.Logger
}

// Enricher creates enriched records. It keeps no state between calls and is safe
// for concurrent use.
type Enricher struct {
	catalog     Catalog
	describer   Describer
	finder      art.CoverFinder
	maxParallel int
	metrics     *metrics.Metrics
	log         *log.Logger
}

// NewEnricher returns an Enricher which uses the given sources.
func NewEnricher(
	catalog Catalog,
	describer Describer,
	finder art.CoverFinder,
	opts Options,
) *Enricher {
	e := &Enricher{
		catalog:     catalog,
		describer:   describer,
		finder:      finder,
		maxParallel: opts.MaxParallel,
		metrics:     opts.Metrics,
		log:         opts.Logger,
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}

	return e
}

// Enrich returns the enriched record for `id`. ErrNotFound is returned when
// MusicBrainz does not have such entity. On any other error no record is returned.
func (e *Enricher) Enrich(ctx context.Context, id entity.Identifier) (*Record, error) {
	start := time.Now()
	rec, err := e.enrich(ctx, id)
	e.metrics.ObserveEnrichment(enrichmentOutcome(err), time.Since(start))

	if err != nil && !errors.Is(err, ErrNotFound) {
		e.log.Error("enrichment failed", "id", id, "err", err)
	}

	return rec, err
}

func (e *Enricher) enrich(ctx context.Context, id entity.Identifier) (*Record, error) {
	primary, found, err := e.catalog.Lookup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var (
		desc   description.Outcome
		albums []Album
	)

	// The two lookups write to different variables.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		desc, err = e.describer.Resolve(gctx, primary.Relations)
		return err
	})
	g.Go(func() error {
		var err error
		albums, err = Aggregate(gctx, e.finder, e.maxParallel, primary.ReleaseGroups)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("enriching %s: %w", id, err)
	}

	return &Record{
		Name:        primary.Name,
		MBID:        id.ID,
		Description: desc,
		Albums:      albums,
	}, nil
}

func enrichmentOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeError
	}
}
