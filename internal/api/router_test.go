package api_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"roadsketch/internal/api"
	"roadsketch/internal/config"
	"roadsketch/internal/domain"
	"roadsketch/internal/metrics"
	"roadsketch/internal/middleware"
	"roadsketch/internal/render"
	"roadsketch/internal/service"
	mock_service "roadsketch/internal/service/mocks"
	"roadsketch/pkg/e"
)

type fixture struct {
	handler  http.Handler
	sketches *mock_service.MockSketchService
	geocode  *mock_service.MockGeocodeService
	exports  *mock_service.MockExportService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		sketches: mock_service.NewMockSketchService(ctrl),
		geocode:  mock_service.NewMockGeocodeService(ctrl),
		exports:  mock_service.NewMockExportService(ctrl),
	}

	pages, err := render.NewRenderer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		Http:   config.HttpConfig{Port: ":0"},
		APIKey: "k",
		CORS:   config.CORSConfig{AllowedOrigins: []string{"https://widget.example"}},
	}
	srv := api.NewServer(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), api.Deps{
		Service: service.NewService(f.sketches, f.geocode, f.exports),
		Metrics: metrics.NewCollector("test"),
		Pages:   pages,
	})
	f.handler = srv.Handler()
	return f
}

func (f fixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.RemoteAddr = "192.0.2.1:5555"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func authed(owner uuid.UUID) map[string]string {
	return map[string]string{middleware.APIKeyHeader: "k", middleware.OwnerHeader: owner.String()}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.do(http.MethodGet, "/api/v1/sketches", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_RequiresOwner(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.do(http.MethodGet, "/api/v1/sketches", "", map[string]string{middleware.APIKeyHeader: "k"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_CreateAndFetch(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	owner, id := uuid.New(), uuid.New()

	f.sketches.EXPECT().Create(gomock.Any(), owner, gomock.Any()).Return(id, nil)
	f.sketches.EXPECT().Get(gomock.Any(), owner, id).Return(&domain.Sketch{ID: &id, Title: "t"}, nil)

	rr := f.do(http.MethodPost, "/api/v1/sketches", `{"title":"t"}`, authed(owner))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Contains(t, rr.Body.String(), id.String())

	rr = f.do(http.MethodGet, "/api/v1/sketches/"+id.String(), "", authed(owner))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"title":"t"`)
}

func TestRouter_GeocodeAndSymbols(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.geocode.EXPECT().Lookup(gomock.Any(), "ab").Return([]domain.GeocodeResult{}, nil)

	rr := f.do(http.MethodGet, "/api/v1/geocode?q=ab", "", map[string]string{middleware.APIKeyHeader: "k"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))

	rr = f.do(http.MethodGet, "/api/v1/symbols", "", map[string]string{middleware.APIKeyHeader: "k"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"fire_truck"`)
}

func TestRouter_ShareWithoutAPIKey(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	id := uuid.New()
	f.sketches.EXPECT().GetPublic(gomock.Any(), id).Return(nil, e.ErrNotFound)

	rr := f.do(http.MethodGet, "/share/"+id.String(), "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Header().Get("Content-Type"), "text/html")
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/health", "", nil).Code)

	rr := f.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `test_http_requests_total{method="GET",route="/api/v1/health",status="200"} 1`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.do(http.MethodOptions, "/api/v1/sketches", "", map[string]string{
		"Origin":                        "https://widget.example",
		"Access-Control-Request-Method": http.MethodPost,
	})
	require.Equal(t, "https://widget.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
