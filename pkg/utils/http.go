package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ErrorResponse is the error envelope shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

// WriteInternalError reports a 500. The underlying error detail is exposed
// only in development mode.
func WriteInternalError(w http.ResponseWriter, message string, err error, dev bool) error {
	detail := "Internal server error"
	if dev && err != nil {
		detail = err.Error()
	}
	return WriteJSON(w, ErrorResponse{Message: message, Error: detail}, http.StatusInternalServerError)
}

// WriteValidationError reports a 400 listing the offending fields.
func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ErrorResponse{Message: "Validation failed"}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}
