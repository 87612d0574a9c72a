package editor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

// Palette is the fixed set of named stroke colours.
var Palette = map[string]string{
	"red":    "#e53935",
	"blue":   "#1e88e5",
	"black":  "#000000",
	"yellow": "#fdd835",
	"green":  "#43a047",
	"white":  "#ffffff",
}

const (
	DefaultLineColor  = "#e53935"
	DefaultLineWeight = 4.0
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NormalizeColor resolves a palette name or #rrggbb value to lower-case
// #rrggbb.
func NormalizeColor(c string) (string, bool) {
	c = strings.ToLower(strings.TrimSpace(c))
	if v, ok := Palette[c]; ok {
		return v, true
	}
	if hexColor.MatchString(c) {
		return c, true
	}
	return "", false
}

// LineCapture accumulates pointer-drag samples into a polyline. While a
// capture is open the map's gestures are held suspended.
type LineCapture struct {
	gestures *GestureSwitch
	open     bool
	points   []domain.LatLng
	color    string
	weight   float64
	now      func() time.Time
	newID    func() string
}

func NewLineCapture(gestures *GestureSwitch) *LineCapture {
	return &LineCapture{
		gestures: gestures,
		color:    DefaultLineColor,
		weight:   DefaultLineWeight,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// SetStyle changes the colour and weight used for subsequent lines.
func (c *LineCapture) SetStyle(color string, weight float64) error {
	norm, ok := NormalizeColor(color)
	if !ok {
		return fmt.Errorf("editor.LineCapture.SetStyle: color %q: %w", color, e.ErrInvalidInput)
	}
	if weight < domain.MinLineWeight || weight > domain.MaxLineWeight {
		return fmt.Errorf("editor.LineCapture.SetStyle: weight %v: %w", weight, e.ErrInvalidInput)
	}
	c.color, c.weight = norm, weight
	return nil
}

func (c *LineCapture) Style() (string, float64) { return c.color, c.weight }

func (c *LineCapture) Capturing() bool { return c.open }

// Points returns a copy of the in-progress sequence, for live preview.
func (c *LineCapture) Points() []domain.LatLng {
	return append([]domain.LatLng(nil), c.points...)
}

// Begin opens a new capture seeded with start. An already open capture is
// discarded first.
func (c *LineCapture) Begin(start domain.LatLng) {
	if c.open {
		c.Discard()
	}
	c.open = true
	c.points = []domain.LatLng{start}
	c.gestures.Suspend(holdCapture)
}

// Append adds p while a capture is open. Repeats of the last point are
// dropped since a stationary pointer adds no shape.
func (c *LineCapture) Append(p domain.LatLng) bool {
	if !c.open {
		return false
	}
	if n := len(c.points); n > 0 && c.points[n-1] == p {
		return false
	}
	c.points = append(c.points, p)
	return true
}

// Commit closes the capture. It yields a line only when at least two
// distinct points were collected.
func (c *LineCapture) Commit() (domain.DrawnLine, error) {
	if !c.open {
		return domain.DrawnLine{}, fmt.Errorf("editor.LineCapture.Commit: no capture open: %w", e.ErrInvalidInput)
	}
	pts := c.points
	c.close()
	if distinct(pts) < 2 {
		return domain.DrawnLine{}, fmt.Errorf("editor.LineCapture.Commit: %w", e.ErrTooFewPoints)
	}
	return domain.DrawnLine{
		ID:        c.newID(),
		Positions: pts,
		Color:     c.color,
		Weight:    c.weight,
		Timestamp: c.now(),
	}, nil
}

// Discard abandons the capture without producing a line.
func (c *LineCapture) Discard() {
	c.close()
}

func (c *LineCapture) close() {
	c.open = false
	c.points = nil
	c.gestures.Resume(holdCapture)
}

func distinct(pts []domain.LatLng) int {
	seen := make(map[domain.LatLng]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
	}
	return len(seen)
}
