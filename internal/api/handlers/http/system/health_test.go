package system_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadsketch/internal/api/handlers/http/system"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemReady(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	cases := []struct {
		name   string
		checks map[string]system.Pinger
		want   int
	}{
		{name: "all up", checks: map[string]system.Pinger{"postgres": up, "redis": up}, want: http.StatusOK},
		{name: "redis down", checks: map[string]system.Pinger{"postgres": up, "redis": down}, want: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := system.NewHandler(logger, tc.checks)
			rr := httptest.NewRecorder()
			h.SystemReady(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, rr.Code)
			}
			var got map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(got) != len(tc.checks) {
				t.Fatalf("unexpected body %v", got)
			}
		})
	}
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected %d %q", rr.Code, rr.Body.String())
	}
}
