package webserver

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/ironsmile/musicsearch/src/webserver/webutils"
)

// HandlerFuncWithError is similar to http.HandlerFunc but returns an error when
// the handling of the request failed.
type HandlerFuncWithError func(http.ResponseWriter, *http.Request) error

// WithInternalError converts HandlerFuncWithError to http.HandlerFunc by making sure
// all errors returned are logged and Internal Server Error HTTP status is sent with
// a JSON body. The error itself is not shown to the client.
func WithInternalError(logger *log.Logger, fnc HandlerFuncWithError) http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		err := fnc(writer, req)
		if err == nil {
			return
		}

		logger.Error("request failed",
			"method", req.Method,
			"url", req.URL.RequestURI(),
			"err", err,
		)
		webutils.JSONError(
			writer,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
	}
}

// writeJSON encodes `val` as the JSON body of a 200 OK response.
func writeJSON(writer http.ResponseWriter, val any) error {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(writer).Encode(val)
}
