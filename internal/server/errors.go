// Package server carries the HTTP plumbing shared by every handler: JSON
// envelopes, request ids, logging middleware, and the router.
package server

import (
	"encoding/json"
	"net/http"
)

type jsonError struct {
	Error string `json:"error"`
}

type jsonMessage struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, jsonError{Error: message})
}

func WriteJSONMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, jsonMessage{Message: message})
}
