package enrich

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/musicsearch/src/art"
	"github.com/ironsmile/musicsearch/src/musicbrainz"
)

// Album is a studio album of an artist together with its cover image.
type Album struct {
	Title string       `json:"title"`
	ID    string       `json:"id"`
	Image art.ImageRef `json:"image"`
}

// Aggregate returns an Album for every release group in `groups` which is an album.
// All other release groups are dropped. The cover images are looked up concurrently,
// at most `limit` at a time. A non-positive limit means no limit.
//
// Albums are returned in the order of `groups`. When any of the cover lookups fails
// the rest are cancelled and only the error is returned.
func Aggregate(
	ctx context.Context,
	finder art.CoverFinder,
	limit int,
	groups []musicbrainz.ReleaseGroup,
) ([]Album, error) {
	albums := filterAlbums(groups)
	if len(albums) == 0 {
		return []Album{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	// Every goroutine writes only to its own index.
	results := make([]Album, len(albums))
	for i, group := range albums {
		g.Go(func() error {
			image, err := finder.FindCover(ctx, group.ID)
			if err != nil {
				return fmt.Errorf("album %s: %w", group.ID, err)
			}

			results[i] = Album{
				Title: group.Title,
				ID:    group.ID,
				Image: image,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func filterAlbums(groups []musicbrainz.ReleaseGroup) []musicbrainz.ReleaseGroup {
	var albums []musicbrainz.ReleaseGroup
	for _, group := range groups {
		if strings.EqualFold(group.PrimaryType, musicbrainz.PrimaryTypeAlbum) {
			albums = append(albums, group)
		}
	}
	return albums
}
