package public

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"
	"roadsketch/internal/render"
	"roadsketch/internal/symbols"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Geocoder interface {
	Lookup(ctx context.Context, query string) ([]domain.GeocodeResult, error)
}

type SharedSketches interface {
	GetPublic(ctx context.Context, id uuid.UUID) (*domain.Sketch, error)
}

type SharedExporter interface {
	ExportPublic(ctx context.Context, id uuid.UUID) (export.File, error)
}

type PageRenderer interface {
	Render(w http.ResponseWriter, code int, name string, data any) error
}

type Handler struct {
	logger   *slog.Logger
	Geocoder Geocoder
	Sketches SharedSketches
	Exporter SharedExporter
	Pages    PageRenderer
}

func NewHandler(logger *slog.Logger, geocoder Geocoder, sketches SharedSketches, exporter SharedExporter, pages PageRenderer) *Handler {
	return &Handler{
		logger:   logger,
		Geocoder: geocoder,
		Sketches: sketches,
		Exporter: exporter,
		Pages:    pages,
	}
}

func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	h.log(r).Debug("Geocode", slog.String("q", q))

	results, err := h.Geocoder.Lookup(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.GeocodeResult{}
	}
	h.writeJSON(w, http.StatusOK, results)
}

type symbolsResponse struct {
	Categories []symbols.Category `json:"categories"`
	Symbols    []symbols.Entry    `json:"symbols"`
}

// Symbols lists the catalog, optionally narrowed by ?category= and ?q=.
func (h *Handler) Symbols(w http.ResponseWriter, r *http.Request) {
	c := symbols.Category(strings.TrimSpace(r.URL.Query().Get("category")))
	if c != "" && !knownCategory(c) {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	entries := symbols.Filter(c, r.URL.Query().Get("q"))
	if entries == nil {
		entries = []symbols.Entry{}
	}
	h.writeJSON(w, http.StatusOK, symbolsResponse{Categories: symbols.Categories, Symbols: entries})
}

func knownCategory(c symbols.Category) bool {
	for _, k := range symbols.Categories {
		if k == c {
			return true
		}
	}
	return false
}

// SharePage renders a public sketch as HTML. Private and missing sketches
// both answer 404.
func (h *Handler) SharePage(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	s, err := h.Sketches.GetPublic(r.Context(), id)
	if err != nil {
		if code, _ := status(err); code == http.StatusNotFound {
			h.notFound(w, r)
			return
		}
		h.handleError(w, r, err)
		return
	}

	view := render.NewShareView(s, "/share/"+id.String()+"/image.png")
	if err := h.Pages.Render(w, http.StatusOK, render.SharePage, view); err != nil {
		l.Error("render share page failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) ShareImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	f, err := h.Exporter.ExportPublic(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if err := h.Pages.Render(w, http.StatusNotFound, render.NotFoundPage, nil); err != nil {
		h.log(r).Error("render not found page failed", slog.Any("error", err))
		http.NotFound(w, r)
	}
}
