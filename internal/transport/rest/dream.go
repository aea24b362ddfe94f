package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/internal/service/dream"
)

type dreamService interface {
	Submit(ctx context.Context, input dream.SubmitInput) (*dream.SubmitResult, error)
	GenerateImage(ctx context.Context, input dream.GenerateImageInput) (*dream.ImageResult, error)
	PatchNotes(ctx context.Context, input dream.PatchNotesInput) (*domain.Dream, error)
	SetHidden(ctx context.Context, input dream.SetHiddenInput) (*domain.Dream, error)
	GetDream(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error)
	ListDreams(ctx context.Context, input dream.ListInput) ([]domain.Dream, int, error)
}

// DreamHandler serves the dream journal endpoints.
type DreamHandler struct {
	svc       dreamService
	publicURL string
	log       *slog.Logger
}

// NewDreamHandler creates a DreamHandler. publicURL is the prefix image file
// names are served under.
func NewDreamHandler(svc dreamService, publicURL string, logger *slog.Logger) *DreamHandler {
	return &DreamHandler{
		svc:       svc,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       logger.With("handler", "dream"),
	}
}

// Routes mounts the handler under r.
func (h *DreamHandler) Routes(r chi.Router) {
	r.Post("/dreams", h.Submit)
	r.Get("/dreams", h.List)
	r.Get("/dreams/{id}", h.Get)
	r.Post("/dreams/{id}/image", h.GenerateImage)
	r.Patch("/dreams/{id}/notes", h.PatchNotes)
	r.Patch("/dreams/{id}/hidden", h.SetHidden)
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type dreamResponse struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Analysis       *string `json:"analysis"`
	Summary        *string `json:"summary"`
	Tone           *string `json:"tone"`
	Outcome        *string `json:"outcome"`
	IsQuestion     bool    `json:"isQuestion"`
	Hidden         bool    `json:"hidden"`
	ImageFile      *string `json:"imageFile"`
	ImageURL       *string `json:"imageUrl"`
	Notes          *string `json:"notes"`
	NotesUpdatedAt *string `json:"notesUpdatedAt"`
	CreatedAt      string  `json:"createdAt"`
}

func (h *DreamHandler) toResponse(d *domain.Dream) dreamResponse {
	resp := dreamResponse{
		ID:             d.ID.String(),
		Text:           d.Text,
		Analysis:       d.Analysis,
		Summary:        d.Summary,
		IsQuestion:     d.IsQuestion,
		Hidden:         d.Hidden,
		ImageFile:      d.ImageFile,
		Notes:          d.Notes,
		NotesUpdatedAt: timestampPtr(d.NotesUpdatedAt),
		CreatedAt:      domain.FormatTimestamp(d.CreatedAt),
	}
	if d.Tone != nil {
		tone := d.Tone.String()
		resp.Tone = &tone
	}
	if d.Outcome != nil {
		outcome := d.Outcome.String()
		resp.Outcome = &outcome
	}
	if d.ImageFile != nil {
		url := h.imageURL(*d.ImageFile)
		resp.ImageURL = &url
	}
	return resp
}

func (h *DreamHandler) imageURL(name string) string {
	return h.publicURL + "/" + strings.TrimLeft(name, "/")
}

func timestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatTimestamp(*t)
	return &s
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

type submitRequest struct {
	Text           string  `json:"text"`
	ProfileContext *string `json:"profileContext"`
}

type submitResponse struct {
	DreamID             string        `json:"dreamId"`
	Analysis            *string       `json:"analysis"`
	Tone                *string       `json:"tone"`
	IsQuestion          bool          `json:"isQuestion"`
	ShouldGenerateImage bool          `json:"shouldGenerateImage"`
	Dream               dreamResponse `json:"dream"`
}

// Submit handles POST /api/dreams.
func (h *DreamHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Submit(r.Context(), dream.SubmitInput{
		Text:           req.Text,
		ProfileContext: req.ProfileContext,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d := h.toResponse(res.Dream)
	writeJSON(w, http.StatusCreated, submitResponse{
		DreamID:             d.ID,
		Analysis:            d.Analysis,
		Tone:                d.Tone,
		IsQuestion:          d.IsQuestion,
		ShouldGenerateImage: res.ShouldGenerateImage,
		Dream:               d,
	})
}

// ---------------------------------------------------------------------------
// Read
// ---------------------------------------------------------------------------

type listResponse struct {
	Items []dreamResponse `json:"items"`
	Total int             `json:"total"`
}

// List handles GET /api/dreams.
func (h *DreamHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := dream.ListInput{}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeInvalid(w, "limit", "must be an integer")
			return
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeInvalid(w, "offset", "must be an integer")
			return
		}
		input.Offset = n
	}
	if v := q.Get("includeHidden"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeInvalid(w, "includeHidden", "must be a boolean")
			return
		}
		input.IncludeHidden = b
	}
	if v := q.Get("outcome"); v != "" {
		outcome := domain.Outcome(v)
		input.Outcome = &outcome
	}

	dreams, total, err := h.svc.ListDreams(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]dreamResponse, 0, len(dreams))
	for i := range dreams {
		items = append(items, h.toResponse(&dreams[i]))
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total})
}

// Get handles GET /api/dreams/{id}.
func (h *DreamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.GetDream(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(d))
}

// ---------------------------------------------------------------------------
// Image
// ---------------------------------------------------------------------------

type imageResponse struct {
	Skipped   bool    `json:"skipped"`
	ImageFile *string `json:"imageFile"`
	ImageURL  *string `json:"imageUrl"`
}

// GenerateImage handles POST /api/dreams/{id}/image.
func (h *DreamHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.GenerateImage(r.Context(), dream.GenerateImageInput{DreamID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := imageResponse{Skipped: res.Skipped, ImageFile: res.ImageFile}
	switch {
	case res.ImageURL != "":
		resp.ImageURL = &res.ImageURL
	case res.ImageFile != nil:
		url := h.imageURL(*res.ImageFile)
		resp.ImageURL = &url
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Notes and visibility
// ---------------------------------------------------------------------------

// PatchNotes handles PATCH /api/dreams/{id}/notes. The body must carry a
// "notes" key holding a string or null; an optional "lastSeenUpdatedAt"
// enables the stale-write check.
func (h *DreamHandler) PatchNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}

	body, ok := readBody(w, r)
	if !ok {
		return
	}
	if !gjson.ValidBytes(body) {
		writeInvalid(w, "body", "malformed JSON")
		return
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		writeInvalid(w, "body", "must be an object")
		return
	}

	notes, ok := optionalString(w, parsed.Get("notes"), "notes", true)
	if !ok {
		return
	}
	lastSeen, ok := optionalString(w, parsed.Get("lastSeenUpdatedAt"), "lastSeenUpdatedAt", false)
	if !ok {
		return
	}

	d, err := h.svc.PatchNotes(r.Context(), dream.PatchNotesInput{
		DreamID:           id,
		Notes:             notes,
		LastSeenUpdatedAt: lastSeen,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, notesState{
		Notes:          d.Notes,
		NotesUpdatedAt: timestampPtr(d.NotesUpdatedAt),
	})
}

type hiddenRequest struct {
	Hidden *bool `json:"hidden"`
}

// SetHidden handles PATCH /api/dreams/{id}/hidden.
func (h *DreamHandler) SetHidden(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}

	var req hiddenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Hidden == nil {
		writeInvalid(w, "hidden", "required")
		return
	}

	d, err := h.svc.SetHidden(r.Context(), dream.SetHiddenInput{DreamID: id, Hidden: *req.Hidden})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(d))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func dreamID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, "id", "must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large")
			return nil, false
		}
		writeInvalid(w, "body", "unreadable")
		return nil, false
	}
	return body, true
}

// optionalString accepts a JSON string or null. Any other type is rejected
// with 422. When required is set the key must be present.
func optionalString(w http.ResponseWriter, v gjson.Result, field string, required bool) (*string, bool) {
	switch {
	case !v.Exists():
		if required {
			writeInvalid(w, field, "required")
			return nil, false
		}
		return nil, true
	case v.Type == gjson.Null:
		return nil, true
	case v.Type == gjson.String:
		s := v.String()
		return &s, true
	default:
		writeInvalid(w, field, "must be a string or null")
		return nil, false
	}
}
