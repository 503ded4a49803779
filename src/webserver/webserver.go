// Package webserver contains the webserver which deals with processing requests
// from the user and presenting them with enriched records.
package webserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/ironsmile/musicsearch/src/config"
	"github.com/ironsmile/musicsearch/src/metrics"
)

// Server represents our webserver. It will be controlled from here.
type Server struct {
	// Configuration of this server
	cfg *config.Config

	enricher Enricher
	images   FrontImageGetter
	metrics  *metrics.Metrics
	log      *log.Logger

	// WG used in Server.Wait to sync with server's end
	wg sync.WaitGroup

	// The actual http.Server doing the HTTP work
	httpSrv *http.Server

	// The server's net.Listener. Set by Serve.
	listener net.Listener

	// serveErr is the reason the server stopped. Read it after Wait.
	serveErr error
}

// NewServer returns a new Server using the supplied configuration cfg. The returned
// server is ready and calling its Serve method will start it. `m` may be nil in
// which case /metrics is not served.
func NewServer(
	cfg *config.Config,
	enricher Enricher,
	images FrontImageGetter,
	m *metrics.Metrics,
	logger *log.Logger,
) *Server {
	return &Server{
		cfg:      cfg,
		enricher: enricher,
		images:   images,
		metrics:  m,
		log:      logger,
	}
}

// Handler returns the http.Handler with all the routes and middlewares of the
// server.
func (srv *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.StrictSlash(true)

	handlers := map[string]http.Handler{
		EndpointSearch:            NewSearchHandler(srv.enricher, srv.log),
		APIv1EndpointAbout:        NewAboutHandler(),
		APIv1EndpointEntity:       NewEntityHandler(srv.enricher, srv.log),
		APIv1EndpointAlbumArtwork: NewAlbumArtworkHandler(srv.images, srv.log),
	}

	for path, handler := range handlers {
		router.Handle(path, handler).Methods(APIv1Methods[path]...)
	}

	if srv.cfg.Metrics && srv.metrics != nil {
		router.Handle(EndpointMetrics, srv.metrics.Handler()).Methods(http.MethodGet)
	}

	var handler http.Handler = router

	if srv.cfg.Gzip {
		handler = NewGzipHandler(handler, []string{"/artwork", EndpointMetrics})
	}

	return NewAccessHandler(handler, srv.log)
}

// Serve starts listening and serving HTTP requests in a goroutine. Errors from
// listening are returned immediately. Trying to call this method more than once
// for the same server will result in panic.
func (srv *Server) Serve() error {
	if srv.httpSrv != nil {
		panic("Second Server.Serve call for the same server")
	}

	srv.httpSrv = &http.Server{
		Addr:           srv.cfg.Listen,
		Handler:        srv.Handler(),
		ReadTimeout:    time.Duration(srv.cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(srv.cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: srv.cfg.MaxHeadersSize,
	}

	lsn, err := net.Listen("tcp", srv.httpSrv.Addr)
	if err != nil {
		return err
	}
	srv.listener = lsn

	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()

		srv.log.Info("webserver started", "address", lsn.Addr())
		err := srv.httpSrv.Serve(lsn)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		srv.serveErr = err
		srv.log.Info("webserver stopped")
	}()

	return nil
}

// Addr returns the address on which the server listens. It is nil before Serve.
func (srv *Server) Addr() net.Addr {
	if srv.listener == nil {
		return nil
	}
	return srv.listener.Addr()
}

// Stop stops the webserver gracefully. Requests in progress are given until `ctx`
// is done to finish.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait syncs whoever called this with the server's stop. It returns the error
// which caused the server to stop, if any.
func (srv *Server) Wait() error {
	srv.wg.Wait()
	return srv.serveErr
}
