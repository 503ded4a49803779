package webserver

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// AccessHandler is an http.Handler which wraps around another handler and prints
// access logs.
type AccessHandler struct {
	wrapped http.Handler
	log     *log.Logger
}

// NewAccessHandler returns an AccessHandler which will call `h` and then log
// information about the http request and response.
func NewAccessHandler(h http.Handler, logger *log.Logger) *AccessHandler {
	return &AccessHandler{
		wrapped: h,
		log:     logger,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *AccessHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	started := time.Now()
	ww := newLoggedResponseWriter(w)
	h.wrapped.ServeHTTP(ww, req)

	h.log.Info("request",
		"method", req.Method,
		"url", req.URL.RequestURI(),
		"dur", time.Since(started),
		"status", ww.code,
		"userAgent", req.Header.Get("User-Agent"),
		"remoteAddr", req.RemoteAddr,
	)
}

type loggedResponseWriter struct {
	http.ResponseWriter
	code int
}

func newLoggedResponseWriter(w http.ResponseWriter) *loggedResponseWriter {
	return &loggedResponseWriter{
		ResponseWriter: w,
		code:           http.StatusOK,
	}
}

func (w *loggedResponseWriter) WriteHeader(status int) {
	w.code = status
	w.ResponseWriter.WriteHeader(status)
}
