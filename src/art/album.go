package art

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pborman/uuid"
	cca "gopkg.in/mineo/gocaa.v1"

	"github.com/ironsmile/musicsearch/src/source"
)

const releaseGroupPath = "release-group"

// Image is one entry of the image list the Cover Art Archive returns for a release
// group. Only the fields needed for selecting a cover are decoded.
type Image struct {
	Image string `json:"image"`
	Front bool   `json:"front"`
}

// SelectImage returns the first image marked as front. When none is marked the
// first image is returned. An empty list has no image available.
func SelectImage(images []Image) ImageRef {
	for _, image := range images {
		if image.Front {
			return ImageRef{URL: image.Image}
		}
	}

	if len(images) == 0 {
		return ImageRef{}
	}

	return ImageRef{URL: images[0].Image}
}

// FindCover implements CoverFinder. Not found release groups and lookups which
// timed out are reported as unavailable images.
func (c *Client) FindCover(ctx context.Context, albumID string) (ImageRef, error) {
	var resp caaReleaseGroupImages
	found, err := c.fetcher.Fetch(ctx, source.Target{
		Source: SourceName,
		Base:   c.archiveURL,
		Path:   []string{releaseGroupPath, albumID},
	}, source.BestEffort, &resp)
	if err != nil {
		return ImageRef{}, fmt.Errorf("finding cover for %s: %w", albumID, err)
	}
	if !found {
		return ImageRef{}, nil
	}

	return SelectImage(resp.Images), nil
}

// GetFrontImage downloads the front image of the release group with `albumID`.
// It returns the image and its mime type. The download is abandoned with ctx's
// error once ctx is done.
func (c *Client) GetFrontImage(
	ctx context.Context,
	albumID string,
) ([]byte, string, error) {
	mbid := uuid.Parse(albumID)
	if mbid == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidAlbumID, albumID)
	}

	img, err := c.releaseGroupFront(ctx, mbid)
	if err != nil {
		httpErr, ok := err.(cca.HTTPError)
		if ok && httpErr.StatusCode == http.StatusNotFound {
			return nil, "", ErrImageNotFound
		}
		return nil, "", fmt.Errorf("downloading front image for %s: %w", albumID, err)
	}

	if len(img.Data) > c.maxImageSize {
		return nil, "", ErrImageTooBig
	}

	return img.Data, img.Mimetype, nil
}

type frontImageResult struct {
	img cca.CoverArtImage
	err error
}

// releaseGroupFront downloads the original size front image with the gocaa client.
// The client accepts no context and panics on transport errors, so the download
// runs in its own goroutine. On ctx expiry the goroutine is abandoned and finishes
// whenever the archive answers.
func (c *Client) releaseGroupFront(
	ctx context.Context,
	mbid uuid.UUID,
) (cca.CoverArtImage, error) {
	if err := ctx.Err(); err != nil {
		return cca.CoverArtImage{}, err
	}

	done := make(chan frontImageResult, 1)
	go func() {
		var res frontImageResult
		defer func() {
			if r := recover(); r != nil {
				res = frontImageResult{err: fmt.Errorf("%w: %v", ErrArchiveUnreachable, r)}
			}
			done <- res
		}()

		// Release groups support only the original image size.
		res.img, res.err = c.caaClient.GetReleaseGroupFront(mbid, cca.ImageSizeOriginal)
	}()

	select {
	case res := <-done:
		return res.img, res.err
	case <-ctx.Done():
		return cca.CoverArtImage{}, ctx.Err()
	}
}

// caaReleaseGroupImages is the JSON returned by the Cover Art Archive for
// /release-group/{mbid}. Truncated example:
//
//	{
//	  "images": [
//	    {"front": true, "image": "http://coverartarchive.org/release/1/2.jpg", ...}
//	  ],
//	  "release": "https://musicbrainz.org/release/..."
//	}
type caaReleaseGroupImages struct {
	Images []Image `json:"images"`
}
