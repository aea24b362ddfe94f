package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/service/discussion"
)

type discussionService interface {
	Discuss(ctx context.Context, input discussion.DiscussInput) (string, error)
	Reset(ctx context.Context, dreamID uuid.UUID) error
}

// DiscussionHandler serves follow-up conversations about a dream.
type DiscussionHandler struct {
	svc discussionService
	log *slog.Logger
}

func NewDiscussionHandler(svc discussionService, logger *slog.Logger) *DiscussionHandler {
	return &DiscussionHandler{
		svc: svc,
		log: logger.With("handler", "discussion"),
	}
}

// Routes mounts the handler under r.
func (h *DiscussionHandler) Routes(r chi.Router) {
	r.Post("/dreams/{id}/discussion", h.Discuss)
	r.Delete("/dreams/{id}/discussion", h.Reset)
}

type discussRequest struct {
	Message string `json:"message"`
}

type discussResponse struct {
	Reply string `json:"reply"`
}

// Discuss handles POST /api/dreams/{id}/discussion.
func (h *DiscussionHandler) Discuss(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}

	var req discussRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.svc.Discuss(r.Context(), discussion.DiscussInput{DreamID: id, Message: req.Message})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, discussResponse{Reply: reply})
}

// Reset handles DELETE /api/dreams/{id}/discussion.
func (h *DiscussionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Reset(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
