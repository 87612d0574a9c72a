package sketches

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"
	"roadsketch/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SketchStore interface {
	Create(ctx context.Context, owner uuid.UUID, req domain.SaveSketchRequest) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, req domain.SaveSketchRequest) error
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Sketch, error)
	List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

type Exporter interface {
	Export(ctx context.Context, owner, id uuid.UUID) (export.File, error)
}

type Handler struct {
	logger   *slog.Logger
	Sketches SketchStore
	Exporter Exporter
}

func NewHandler(logger *slog.Logger, sketches SketchStore, exporter Exporter) *Handler {
	return &Handler{
		logger:   logger,
		Sketches: sketches,
		Exporter: exporter,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) SketchCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SketchCreate", slog.String("remote", r.RemoteAddr))

	owner, err := middleware.OwnerFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	req, ok := middleware.Body[domain.SaveSketchRequest](r.Context())
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.Sketches.Create(r.Context(), owner, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sketch created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, domain.CreateSketchResponse{ID: id.String()})
}

func (h *Handler) SketchList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SketchList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	owner, err := middleware.OwnerFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page := parseInt(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	items, total, err := h.Sketches.List(r.Context(), owner, page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.SketchSummary{}
	}

	l.Info("sketches listed", slog.Int("count", len(items)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, domain.ListSketchesResponse{
		Sketches: items,
		Page:     page,
		Limit:    limit,
		Total:    total,
	})
}

func (h *Handler) SketchGet(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	s, err := h.Sketches.Get(r.Context(), owner, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) SketchUpdate(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	req, ok := middleware.Body[domain.SaveSketchRequest](r.Context())
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Sketches.Update(r.Context(), owner, id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SketchDelete(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	if err := h.Sketches.Delete(r.Context(), owner, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SketchExport(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	f, err := h.Exporter.Export(r.Context(), owner, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("sketch exported", slog.String("id", id.String()), slog.Int("bytes", len(f.Data)))
	WriteFile(w, f)
}

// scope resolves the owner and the {id} path parameter, answering 400 itself
// when either is missing or malformed.
func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (owner, id uuid.UUID, ok bool) {
	owner, err := middleware.OwnerFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	idStr := chi.URLParam(r, "id")
	id, err = uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, uuid.Nil, false
	}
	return owner, id, true
}

// WriteFile sends an export as a download.
func WriteFile(w http.ResponseWriter, f export.File) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}
