package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type invalidResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type quotaResponse struct {
	Error        string  `json:"error"`
	Kind         string  `json:"kind"`
	NextResetISO *string `json:"nextResetIso,omitempty"`
}

type notesState struct {
	Notes          *string `json:"notes"`
	NotesUpdatedAt *string `json:"notesUpdatedAt"`
}

type conflictResponse struct {
	Error   string     `json:"error"`
	Current notesState `json:"current"`
}

type tooLargeResponse struct {
	Error     string `json:"error"`
	MaxLength int    `json:"maxLength"`
}

func writeInvalid(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, invalidResponse{
		Error:  "invalid",
		Fields: []fieldErrorResponse{{Field: field, Message: message}},
	})
}

// handleError maps domain errors to HTTP responses. Unknown errors are logged
// and reported as 500 without leaking details.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		quota    *domain.QuotaExhaustedError
		conflict *domain.NotesConflictError
		invalid  *domain.ValidationError
	)

	switch {
	case errors.As(err, &quota):
		resp := quotaResponse{Error: "quota_exhausted", Kind: quota.Kind.String()}
		if quota.NextReset != nil {
			iso := domain.FormatTimestamp(*quota.NextReset)
			resp.NextResetISO = &iso
		}
		writeJSON(w, http.StatusPaymentRequired, resp)
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error: "conflict",
			Current: notesState{
				Notes:          conflict.Notes,
				NotesUpdatedAt: timestampPtr(conflict.NotesUpdatedAt),
			},
		})
	case errors.Is(err, domain.ErrTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, tooLargeResponse{
			Error:     "too_large",
			MaxLength: domain.MaxNotesLength,
		})
	case errors.As(err, &invalid):
		resp := invalidResponse{Error: "invalid"}
		for _, fe := range invalid.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "request deadline exceeded", slog.String("error", err.Error()))
		writeError(w, http.StatusGatewayTimeout, "timeout")
	case errors.Is(err, domain.ErrFetchFailure):
		log.ErrorContext(r.Context(), "image fetch failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "fetch_failure")
	case errors.Is(err, domain.ErrProviderFailure):
		log.ErrorContext(r.Context(), "provider failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "provider_failure")
	case errors.Is(err, context.Canceled):
		// Client went away; the status is only seen by the access log.
		log.InfoContext(r.Context(), "request canceled")
		writeError(w, http.StatusServiceUnavailable, "canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

// decodeJSON reads a JSON request body into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large")
			return false
		}
		writeInvalid(w, "body", "malformed JSON")
		return false
	}
	return true
}
