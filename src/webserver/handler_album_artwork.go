package webserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/ironsmile/musicsearch/src/art"
	"github.com/ironsmile/musicsearch/src/webserver/webutils"
)

const artworkTimeout = time.Minute

// AlbumArtworkHandler is a http.Handler which will find and serve the front image
// of a particular album.
type AlbumArtworkHandler struct {
	images FrontImageGetter
	log    *log.Logger
}

// NewAlbumArtworkHandler returns a new Album artwork handler.
func NewAlbumArtworkHandler(images FrontImageGetter, logger *log.Logger) *AlbumArtworkHandler {
	return &AlbumArtworkHandler{
		images: images,
		log:    logger,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (aah AlbumArtworkHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	albumID, ok := mux.Vars(req)["albumID"]
	if !ok {
		http.NotFoundHandler().ServeHTTP(writer, req)
		return
	}

	WithInternalError(aah.log, func(w http.ResponseWriter, r *http.Request) error {
		return aah.find(w, r, albumID)
	}).ServeHTTP(writer, req)
}

func (aah AlbumArtworkHandler) find(
	writer http.ResponseWriter,
	req *http.Request,
	albumID string,
) error {
	ctx, cancel := context.WithTimeout(req.Context(), artworkTimeout)
	defer cancel()

	img, mimeType, err := aah.images.GetFrontImage(ctx, albumID)
	switch {
	case errors.Is(err, art.ErrInvalidAlbumID):
		webutils.JSONError(writer, err.Error(), http.StatusBadRequest)
		return nil
	case errors.Is(err, art.ErrImageNotFound):
		webutils.JSONError(writer, "album has no front image", http.StatusNotFound)
		return nil
	case errors.Is(err, art.ErrImageTooBig):
		webutils.JSONError(writer, err.Error(), http.StatusBadGateway)
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		webutils.JSONError(
			writer,
			"timed out waiting for the Cover Art Archive",
			http.StatusGatewayTimeout,
		)
		return nil
	case err != nil:
		return err
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(img)
	}

	writer.Header().Set("Content-Type", mimeType)
	writer.Header().Set("Content-Length", strconv.Itoa(len(img)))
	writer.Header().Set("Cache-Control", "max-age=604800")

	if req.Method == http.MethodHead {
		return nil
	}

	if _, err := writer.Write(img); err != nil {
		aah.log.Warn("sending artwork", "album", albumID, "err", err)
	}

	return nil
}
