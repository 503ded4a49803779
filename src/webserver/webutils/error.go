// Package webutils contains helpers shared by the HTTP handlers.
package webutils

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

// JSONError writes a JSON object with an error message and sets the HTTP status code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	resp := jsonErrorMessage{
		Error: message,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&resp); err != nil {
		log.Error("writing JSON error body", "err", err)
	}
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}
