package handlers

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, APIResponse{Status: true, Message: message, Data: data})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Status: false, Message: message})
}

// WriteInternalError reports a 500 with the underlying error message
// alongside the generic one.
func WriteInternalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, APIResponse{
		Status:  false,
		Message: "Internal server error",
		Error:   err.Error(),
	})
}
