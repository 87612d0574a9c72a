package export

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TileSource supplies map tiles in the slippy-map z/x/y scheme.
type TileSource interface {
	Tile(ctx context.Context, z, x, y int) (image.Image, error)
}

// HTTPTiles fetches tiles from a URL template containing {z}, {x} and {y}.
type HTTPTiles struct {
	template  string
	userAgent string
	http      *http.Client
}

func NewHTTPTiles(template, userAgent string, timeout time.Duration) *HTTPTiles {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPTiles{
		template:  template,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTiles) URL(z, x, y int) string {
	return strings.NewReplacer(
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	).Replace(t.template)
}

func (t *HTTPTiles) Tile(ctx context.Context, z, x, y int) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL(z, x, y), nil)
	if err != nil {
		return nil, err
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	resp, err := t.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile %d/%d/%d: %s", z, x, y, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tile %d/%d/%d: decode: %w", z, x, y, err)
	}
	return img, nil
}
