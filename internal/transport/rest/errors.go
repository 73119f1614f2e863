package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []FieldErrorPayload `json:"fields,omitempty"`
}

// FieldErrorPayload names one invalid request parameter.
type FieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeValidationError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Error = "invalid parameters"
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, FieldErrorPayload{Field: fe.Field, Message: fe.Message})
		}
	}

	writeJSON(w, http.StatusBadRequest, resp)
}
