package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the body written for gateway-level failures. The shape
// ({"detail": "..."}) matches what the upstream route services return, so
// clients can decode errors uniformly whichever layer produced them.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error. Otherwise it returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"Hello": "World"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] whose detail is the standard status
// text for statusCode (e.g. "Not Found").
func WriteError(w http.ResponseWriter, statusCode int) {
	WriteJSON(w, ErrorResponse{Detail: http.StatusText(statusCode)}, statusCode)
}
