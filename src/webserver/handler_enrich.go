package webserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/ironsmile/musicsearch/src/enrich"
	"github.com/ironsmile/musicsearch/src/entity"
	"github.com/ironsmile/musicsearch/src/webserver/webutils"
)

// EnrichHandler is a http.Handler which responds with the enriched record of an
// entity.
type EnrichHandler struct {
	enricher Enricher
	log      *log.Logger

	// idFromRequest finds out for which entity the request is.
	idFromRequest func(*http.Request) (entity.Identifier, error)
}

// NewSearchHandler returns the handler for /search?mbid={mbid}. The MBID is always
// of an artist.
func NewSearchHandler(enricher Enricher, logger *log.Logger) *EnrichHandler {
	return &EnrichHandler{
		enricher:      enricher,
		log:           logger,
		idFromRequest: artistFromQuery,
	}
}

// NewEntityHandler returns the handler for /v1/{entityType}/{mbid}. It must be used
// with a gorilla/mux router.
func NewEntityHandler(enricher Enricher, logger *log.Logger) *EnrichHandler {
	return &EnrichHandler{
		enricher:      enricher,
		log:           logger,
		idFromRequest: entityFromVars,
	}
}

// ServeHTTP implements http.Handler.
func (h *EnrichHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	WithInternalError(h.log, h.enrich).ServeHTTP(writer, req)
}

func (h *EnrichHandler) enrich(writer http.ResponseWriter, req *http.Request) error {
	id, err := h.idFromRequest(req)
	if err != nil {
		webutils.JSONError(writer, err.Error(), http.StatusBadRequest)
		return nil
	}

	rec, err := h.enricher.Enrich(req.Context(), id)
	if errors.Is(err, enrich.ErrNotFound) {
		webutils.JSONError(writer, notFoundMessage(id), http.StatusNotFound)
		return nil
	} else if err != nil {
		return err
	}

	return writeJSON(writer, rec)
}

func artistFromQuery(req *http.Request) (entity.Identifier, error) {
	mbid := req.URL.Query().Get("mbid")
	if mbid == "" {
		return entity.Identifier{}, errors.New("the mbid query parameter is required")
	}
	return entity.NewIdentifier(mbid, entity.Artist)
}

func entityFromVars(req *http.Request) (entity.Identifier, error) {
	vars := mux.Vars(req)

	entityType, err := entity.ParseType(vars["entityType"])
	if err != nil {
		return entity.Identifier{}, err
	}

	return entity.NewIdentifier(vars["mbid"], entityType)
}

func notFoundMessage(id entity.Identifier) string {
	return fmt.Sprintf(
		"The information from MusicBrainz could not be retrieved or "+
			"the MBID %s does not belong to %s %s",
		id.ID, article(id.Type), id.Type,
	)
}

func article(t entity.Type) string {
	switch t {
	case entity.Area, entity.Artist, entity.Event, entity.Instrument:
		return "an"
	default:
		return "a"
	}
}
