package sketches

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roadsketch/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	code, msg := Status(err)
	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	}
	if code >= 500 {
		l.Error("handler error", attrs...)
	} else {
		l.Warn("handler error", attrs...)
	}

	h.writeJSON(w, code, map[string]string{"error": msg})
}

// Status maps a service error onto an HTTP status and a client-safe message.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, e.ErrTitleRequired):
		return http.StatusBadRequest, e.ErrTitleRequired.Error()
	case errors.Is(err, e.ErrTooFewPoints):
		return http.StatusBadRequest, e.ErrTooFewPoints.Error()
	case errors.Is(err, e.ErrUnknownType):
		return http.StatusBadRequest, e.ErrUnknownType.Error()
	case errors.Is(err, e.ErrInvalidOwner):
		return http.StatusBadRequest, e.ErrInvalidOwner.Error()
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "conflict"
	case errors.Is(err, e.ErrUnavailable):
		return http.StatusServiceUnavailable, "service unavailable"
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout, "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
