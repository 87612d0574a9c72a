package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"

	"github.com/sony/gobreaker"
)

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Limit     int
	Timeout   time.Duration

	// Breaker settings. Zero values fall back to defaults.
	MaxRequests      uint32
	Interval         time.Duration
	OpenTimeout      time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// Nominatim queries a Nominatim compatible /search endpoint through a
// circuit breaker. Upstream 5xx and transport failures count against the
// breaker; while it is open Search fails fast with e.ErrUnavailable.
type Nominatim struct {
	base      *url.URL
	userAgent string
	limit     int
	client    *http.Client
	cb        *gobreaker.CircuitBreaker
	logger    *slog.Logger
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// errUpstream marks failures the breaker should count.
var errUpstream = errors.New("geocode upstream failure")

func NewNominatim(cfg NominatimConfig, logger *slog.Logger) (*Nominatim, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("geocode.NewNominatim: base url %q: %w", cfg.BaseURL, e.ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 3
	}
	if cfg.Interval == 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 0.6
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 5
	}

	n := &Nominatim{
		base:      base,
		userAgent: cfg.UserAgent,
		limit:     cfg.Limit,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
	n.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "geocode",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name), slog.String("from", from.String()), slog.String("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, errUpstream)
		},
	})
	return n, nil
}

func (n *Nominatim) State() gobreaker.State { return n.cb.State() }

func (n *Nominatim) Search(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	const op = "geocode.Nominatim.Search"

	out, err := n.cb.Execute(func() (any, error) {
		return n.search(ctx, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrUnavailable)
		}
		if errors.Is(err, errUpstream) {
			return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrUnavailable)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out.([]domain.GeocodeResult), nil
}

func (n *Nominatim) search(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	u := *n.base
	u.Path += "/search"
	v := url.Values{}
	v.Set("q", query)
	v.Set("format", "jsonv2")
	v.Set("limit", strconv.Itoa(n.limit))
	u.RawQuery = v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, e.WrapError(ctx, "geocode.Nominatim.search", ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", errUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", errUpstream, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, e.ErrInvalidInput)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", errUpstream, err)
	}

	out := make([]domain.GeocodeResult, 0, len(places))
	for _, p := range places {
		lat, err1 := strconv.ParseFloat(p.Lat, 64)
		lon, err2 := strconv.ParseFloat(p.Lon, 64)
		if err1 != nil || err2 != nil {
			n.logger.Debug("skipping place with bad coordinates", slog.String("label", p.DisplayName))
			continue
		}
		out = append(out, domain.GeocodeResult{Label: p.DisplayName, Lat: lat, Lon: lon})
	}
	return out, nil
}
