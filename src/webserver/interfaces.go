package webserver

import (
	"context"

	"github.com/ironsmile/musicsearch/src/enrich"
	"github.com/ironsmile/musicsearch/src/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Enricher

// Enricher creates enriched records. It is satisfied by *enrich.Enricher.
type Enricher interface {
	Enrich(ctx context.Context, id entity.Identifier) (*enrich.Record, error)
}

//counterfeiter:generate . FrontImageGetter

// FrontImageGetter downloads album front images. It is satisfied by *art.Client.
type FrontImageGetter interface {
	GetFrontImage(ctx context.Context, albumID string) ([]byte, string, error)
}
