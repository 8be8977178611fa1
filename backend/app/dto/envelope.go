package dto

import (
	"encoding/json"
	"net/http"
)

// Response codes used across the API. Errors are carried in the body over
// HTTP 200, never as transport-level statuses.
const (
	CodeOK            = 0
	CodeInvalid       = -1
	CodeUnauthorized  = -2
	CodeForbidden     = -3
	CodeRouteNotFound = -4
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func WriteOK(w http.ResponseWriter, msg string, data any) {
	WriteJSON(w, Response{Code: CodeOK, Msg: msg, Data: data})
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, Response{Code: code, Msg: msg})
}
