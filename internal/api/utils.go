package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nlourenco/movie-catalog-backend/internal/services/movies"
)

type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorMessage string `json:"error"`
}

type DefaultResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the per-field messages for a 400.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []movies.FieldError `json:"errors"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) error {
	response, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)

	return nil
}

func respondWithError(w http.ResponseWriter, code int, msg string) error {
	messageBody := ErrorResponse{
		StatusCode:   code,
		ErrorMessage: msg,
	}
	return respondWithJSON(w, code, messageBody)
}

func respondWithValidationErrors(w http.ResponseWriter, fieldErrors []movies.FieldError) error {
	return respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}

func RespondWithAuthError(w http.ResponseWriter, code int, err error) error {
	messageBody := ErrorResponse{
		StatusCode:   code,
		ErrorMessage: formatErrorMessage(err),
	}
	return respondWithJSON(w, code, messageBody)
}

func formatErrorMessage(err error) string {
	errorMsg := err.Error()
	if len(errorMsg) > 0 {
		return strings.ToUpper(errorMsg[:1]) + errorMsg[1:]
	}
	return ""
}
