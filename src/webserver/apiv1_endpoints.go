package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	EndpointSearch            = "/search"
	EndpointMetrics           = "/metrics"
	APIv1EndpointAbout        = "/v1/about"
	APIv1EndpointEntity       = "/v1/{entityType}/{mbid}"
	APIv1EndpointAlbumArtwork = "/v1/album/{albumID}/artwork"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIv1Methods = map[string][]string{
	EndpointSearch:            {http.MethodGet},
	APIv1EndpointAbout:        {http.MethodGet},
	APIv1EndpointEntity:       {http.MethodGet},
	APIv1EndpointAlbumArtwork: {http.MethodGet, http.MethodHead},
}
