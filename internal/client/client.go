// Package client talks to the sketch backend over HTTP. It is the Store the
// editor saves through and the Lookup its geocode searcher queries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"
	"roadsketch/internal/middleware"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	base   *url.URL
	apiKey string
	http   *http.Client
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("client.New: base url %q: %w", cfg.BaseURL, e.ErrInvalidInput)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		base:   base,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

func (c *Client) Create(ctx context.Context, owner uuid.UUID, s *domain.Sketch) (uuid.UUID, error) {
	const op = "client.Create"

	var out domain.CreateSketchResponse
	if err := c.do(ctx, op, http.MethodPost, "/api/v1/sketches", nil, owner, domain.NewSaveSketchRequest(s), &out); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(out.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: bad id %q: %w", op, out.ID, e.ErrInternal)
	}
	return id, nil
}

func (c *Client) Update(ctx context.Context, owner uuid.UUID, id uuid.UUID, s *domain.Sketch) error {
	return c.do(ctx, "client.Update", http.MethodPut, "/api/v1/sketches/"+id.String(), nil, owner, domain.NewSaveSketchRequest(s), nil)
}

func (c *Client) Get(ctx context.Context, owner uuid.UUID, id uuid.UUID) (*domain.Sketch, error) {
	var s domain.Sketch
	if err := c.do(ctx, "client.Get", http.MethodGet, "/api/v1/sketches/"+id.String(), nil, owner, nil, &s); err != nil {
		return nil, err
	}
	s.OwnerID = owner
	if s.ID == nil {
		s.ID = &id
	}
	return &s, nil
}

func (c *Client) List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out domain.ListSketchesResponse
	if err := c.do(ctx, "client.List", http.MethodGet, "/api/v1/sketches", q, owner, nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Sketches, out.Total, nil
}

func (c *Client) Delete(ctx context.Context, owner uuid.UUID, id uuid.UUID) error {
	return c.do(ctx, "client.Delete", http.MethodDelete, "/api/v1/sketches/"+id.String(), nil, owner, nil, nil)
}

// Search implements the geocode lookup the editor's searcher debounces.
func (c *Client) Search(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	q := url.Values{}
	q.Set("q", query)

	var out []domain.GeocodeResult
	if err := c.do(ctx, "client.Search", http.MethodGet, "/api/v1/geocode", q, uuid.Nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.GeocodeResult{}
	}
	return out, nil
}

// Export downloads the server-side raster of a stored sketch.
func (c *Client) Export(ctx context.Context, owner uuid.UUID, id uuid.UUID) (export.File, error) {
	const op = "client.Export"

	resp, err := c.send(ctx, op, http.MethodGet, "/api/v1/sketches/"+id.String()+"/export.png", nil, owner, nil)
	if err != nil {
		return export.File{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return export.File{}, c.transportError(ctx, op, err)
	}
	f := export.File{
		Name:        export.FileName("sketch", time.Now()),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		f.Name = params["filename"]
	}
	return f, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, owner uuid.UUID, in, out any) error {
	resp, err := c.send(ctx, op, method, path, query, owner, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %v: %w", op, err, e.ErrInternal)
	}
	return nil
}

// send returns a response with a 2xx status or an error mapped to a
// sentinel. The caller closes the body.
func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, owner uuid.UUID, in any) (*http.Response, error) {
	u := *c.base
	u.Path = c.base.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %v: %w", op, err, e.ErrInvalidInput)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInternal)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.APIKeyHeader, c.apiKey)
	if owner != uuid.Nil {
		req.Header.Set(middleware.OwnerHeader, owner.String())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, op, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	var apiErr struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&apiErr)

	c.logger.Debug("backend error",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.String("error", apiErr.Error),
	)
	return nil, fmt.Errorf("%s: %s: %w", op, resp.Status, statusError(resp.StatusCode, apiErr.Error))
}

func (c *Client) transportError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return e.WrapError(ctx, op, ctx.Err())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return e.WrapError(ctx, op, err)
	}
	return fmt.Errorf("%s: %v: %w", op, err, e.ErrUnavailable)
}

func statusError(code int, msg string) error {
	switch code {
	case http.StatusNotFound:
		return e.ErrNotFound
	case http.StatusBadRequest:
		switch msg {
		case e.ErrTitleRequired.Error():
			return e.ErrTitleRequired
		case e.ErrTooFewPoints.Error():
			return e.ErrTooFewPoints
		case e.ErrUnknownType.Error():
			return e.ErrUnknownType
		case e.ErrInvalidOwner.Error():
			return e.ErrInvalidOwner
		}
		return e.ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusRequestEntityTooLarge:
		return e.ErrInvalidInput
	case http.StatusConflict:
		return e.ErrConflict
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable:
		return e.ErrUnavailable
	case http.StatusGatewayTimeout:
		return e.ErrDeadline
	default:
		return e.ErrInternal
	}
}
