// Package response contains the JSON bodies written by the handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// Message is the body of a plain confirmation response.
type Message struct {
	Message string `json:"message"`
}

// ErrorDetail is the body of every error response.
// Errors is only set for validation failures.
type ErrorDetail struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes one rejected request field.
// - Field: The JSON name of the field, "body" for undecodable input or "id" for the path id.
// - Rule: The validation rule that failed.
// - Message: A human readable explanation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// WriteJSON writes body as JSON with the given status code.
func WriteJSON(res http.ResponseWriter, status int, body any) error {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	return json.NewEncoder(res).Encode(body)
}

// WriteError writes an ErrorDetail with the given status code.
func WriteError(res http.ResponseWriter, status int, detail string, fields ...FieldError) error {
	return WriteJSON(res, status, ErrorDetail{Detail: detail, Errors: fields})
}
