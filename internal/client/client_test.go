package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"roadsketch/internal/client"
	"roadsketch/internal/domain"
	"roadsketch/internal/editor"
	"roadsketch/internal/geocode"
	"roadsketch/internal/middleware"
	"roadsketch/pkg/e"
)

var (
	_ editor.Store   = (*client.Client)(nil)
	_ geocode.Lookup = (*client.Client)(nil)
)

func newClient(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL, APIKey: "k", Timeout: 2 * time.Second}, nil)
	require.NoError(t, err)
	return c
}

func TestClient_CreateSendsHeadersAndBody(t *testing.T) {
	t.Parallel()

	owner, id := uuid.New(), uuid.New()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/sketches", r.URL.Path)
		require.Equal(t, "k", r.Header.Get(middleware.APIKeyHeader))
		require.Equal(t, owner.String(), r.Header.Get(middleware.OwnerHeader))

		var req domain.SaveSketchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "crash", req.Title)
		require.Len(t, req.Incidents, 1)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.CreateSketchResponse{ID: id.String()})
	})

	got, err := c.Create(context.Background(), owner, &domain.Sketch{
		Title:     "crash",
		Incidents: []domain.Incident{{ID: "a", Type: "car", Scale: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestClient_GetFillsOwnerAndID(t *testing.T) {
	t.Parallel()

	owner, id := uuid.New(), uuid.New()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sketches/"+id.String(), r.URL.Path)
		_, _ = w.Write([]byte(`{"title":"x","incidents":[],"drawn_lines":[],"metadata":{"zoom":15}}`))
	})

	s, err := c.Get(context.Background(), owner, id)
	require.NoError(t, err)
	require.Equal(t, owner, s.OwnerID)
	require.NotNil(t, s.ID)
	require.Equal(t, id, *s.ID)
	require.NotNil(t, s.Metadata.Zoom)
	require.Equal(t, 15.0, *s.Metadata.Zoom)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		body   string
		want   error
	}{
		{status: http.StatusNotFound, body: `{"error":"not found"}`, want: e.ErrNotFound},
		{status: http.StatusBadRequest, body: `{"error":"title is required"}`, want: e.ErrTitleRequired},
		{status: http.StatusBadRequest, body: `{"error":"validation failed"}`, want: e.ErrInvalidInput},
		{status: http.StatusServiceUnavailable, body: `{"error":"service unavailable"}`, want: e.ErrUnavailable},
		{status: http.StatusTooManyRequests, body: ``, want: e.ErrUnavailable},
		{status: http.StatusInternalServerError, body: `oops`, want: e.ErrInternal},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status)+tc.body, func(t *testing.T) {
			t.Parallel()

			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			err := c.Update(context.Background(), uuid.New(), uuid.New(), &domain.Sketch{Title: "x"})
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/geocode", r.URL.Path)
		require.Equal(t, "dom tower", r.URL.Query().Get("q"))
		require.Empty(t, r.Header.Get(middleware.OwnerHeader))
		_, _ = w.Write([]byte(`[{"label":"Domtoren, Utrecht","lat":52.0907,"lon":5.1214}]`))
	})

	got, err := c.Search(context.Background(), "dom tower")
	require.NoError(t, err)
	require.Equal(t, []domain.GeocodeResult{{Label: "Domtoren, Utrecht", Lat: 52.0907, Lon: 5.1214}}, got)
}

func TestClient_ListAndDelete(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.Equal(t, "3", r.URL.Query().Get("page"))
			require.Equal(t, "10", r.URL.Query().Get("limit"))
			_ = json.NewEncoder(w).Encode(domain.ListSketchesResponse{
				Sketches: []domain.SketchSummary{{Title: "a"}},
				Page:     3, Limit: 10, Total: 21,
			})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	items, total, err := c.List(context.Background(), uuid.New(), 3, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(21), total)

	require.NoError(t, c.Delete(context.Background(), uuid.New(), uuid.New()))
}

func TestClient_ExportUsesServerFileName(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="sketch-2024-05-01.png"`)
		_, _ = w.Write([]byte("png"))
	})

	f, err := c.Export(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, "sketch-2024-05-01.png", f.Name)
	require.Equal(t, "image/png", f.ContentType)
	require.Equal(t, []byte("png"), f.Data)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.New(client.Config{BaseURL: url, APIKey: "k"}, nil)
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "utrecht")
	require.ErrorIs(t, err, e.ErrUnavailable)
}

func TestNew_BadURL(t *testing.T) {
	t.Parallel()

	_, err := client.New(client.Config{BaseURL: "not a url"}, nil)
	require.ErrorIs(t, err, e.ErrInvalidInput)
}
