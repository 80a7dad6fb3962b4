package errors

import (
	"encoding/json"
	"net/http"
)

// APIError is the error shape returned by every API endpoint.
type APIError struct {
	Status  int     `json:"status"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given status code,
// message and optional details.
func NewAPIError(status int, message string, details *string) APIError {
	return APIError{
		Status:  status,
		Message: message,
		Details: details,
	}
}

// Write writes the APIError to the response writer as JSON.
func (e APIError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(e)
}
