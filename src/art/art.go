package art

import (
	"context"
	"encoding/json"
	"errors"

	cca "gopkg.in/mineo/gocaa.v1"

	"github.com/ironsmile/musicsearch/src/source"
)

// DefaultArchiveURL is the address of the public Cover Art Archive.
const DefaultArchiveURL = "https://coverartarchive.org"

// SourceName is the name used for the Cover Art Archive in logs and metrics.
const SourceName = "coverartarchive"

const defaultMaxImageSize = 1024 * 1024 * 10

// ErrImageNotFound is returned by GetFrontImage when the album has no front image.
var ErrImageNotFound = errors.New("image not found")

// ErrImageTooBig is returned when some image has been find but it is deemed to big
// for the server to handle.
var ErrImageTooBig = errors.New("image is too big")

// ErrArchiveUnreachable is returned by GetFrontImage when the image could not be
// downloaded because of a transport failure.
var ErrArchiveUnreachable = errors.New("cover art archive unreachable")

// ErrInvalidAlbumID is returned for album IDs which are not MusicBrainz IDs.
var ErrInvalidAlbumID = errors.New("invalid album ID")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . CoverFinder

// CoverFinder defines a type which is capable of finding the cover image of albums.
type CoverFinder interface {
	// FindCover returns the cover image of the album (a release group) with
	// `albumID`. Albums without any cover art have an unavailable ImageRef and
	// no error.
	FindCover(ctx context.Context, albumID string) (ImageRef, error)
}

// ImageRef is a reference to a cover image. The zero value means that there is no
// image available.
type ImageRef struct {
	URL string
}

// Available returns true when the reference points to an image.
func (r ImageRef) Available() bool {
	return r.URL != ""
}

// MarshalJSON encodes the reference as its URL or null when no image is available.
func (r ImageRef) MarshalJSON() ([]byte, error) {
	if !r.Available() {
		return []byte("null"), nil
	}
	return json.Marshal(r.URL)
}

// Options configure a Client. Zero values mean defaults.
type Options struct {
	// ArchiveURL is the address of the Cover Art Archive.
	ArchiveURL string

	// UserAgent is used for downloading images.
	UserAgent string

	// MaxImageSize is the size in bytes of the largest image GetFrontImage will
	// return.
	MaxImageSize int
}

// Client is a client for recovering artwork from the Cover Art Archive. It is safe
// for concurrent use.
//
// It implements CoverFinder.
type Client struct {
	fetcher      source.Fetcher
	caaClient    CAAClient
	archiveURL   string
	maxImageSize int
}

// NewClient returns fully configured Client. The image lists are fetched with
// `fetcher` while images are downloaded with the gocaa client.
func NewClient(fetcher source.Fetcher, opts Options) *Client {
	if opts.ArchiveURL == "" {
		opts.ArchiveURL = DefaultArchiveURL
	}
	if opts.MaxImageSize <= 0 {
		opts.MaxImageSize = defaultMaxImageSize
	}

	caaClient := cca.NewCAAClient(opts.UserAgent)
	caaClient.BaseURL = opts.ArchiveURL

	return &Client{
		fetcher:      fetcher,
		caaClient:    caaClient,
		archiveURL:   opts.ArchiveURL,
		maxImageSize: opts.MaxImageSize,
	}
}
