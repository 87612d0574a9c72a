package editor

import (
	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"
)

// MapState is the restorable view of the underlying map.
type MapState struct {
	Center domain.LatLng
	Zoom   float64
	Layer  string
	Width  int
	Height int
}

func (s MapState) Viewport() geometry.Viewport {
	return geometry.Viewport{
		CenterLat: s.Center.Lat,
		CenterLng: s.Center.Lng,
		Zoom:      s.Zoom,
		Width:     s.Width,
		Height:    s.Height,
	}
}

// MapView is the map tile renderer the editor is overlaid on.
type MapView interface {
	// SetInteractive turns the map's own pan, zoom and rotate gestures on or
	// off.
	SetInteractive(enabled bool)
	ToScreen(p domain.LatLng) geometry.Point
	ToGeo(pt geometry.Point) domain.LatLng
	State() MapState
	SetState(s MapState)
}

// Gesture suspension reasons.
const (
	holdDrawing = "drawing"
	holdCapture = "capture"
	holdMove    = "move"
)

// GestureSwitch is the one shared on/off switch for the map's native
// gestures. Callers suspend and resume under a reason; the map is
// interactive exactly when no reason is held. Both calls are idempotent per
// reason, so unbalanced exits cannot leak a disabled map.
type GestureSwitch struct {
	view    MapView
	held    map[string]struct{}
	enabled bool
}

func NewGestureSwitch(view MapView) *GestureSwitch {
	g := &GestureSwitch{view: view, held: make(map[string]struct{}), enabled: true}
	view.SetInteractive(true)
	return g
}

func (g *GestureSwitch) Suspend(reason string) {
	g.held[reason] = struct{}{}
	g.apply()
}

func (g *GestureSwitch) Resume(reason string) {
	delete(g.held, reason)
	g.apply()
}

// ResumeAll drops every hold.
func (g *GestureSwitch) ResumeAll() {
	for k := range g.held {
		delete(g.held, k)
	}
	g.apply()
}

func (g *GestureSwitch) Enabled() bool { return g.enabled }

func (g *GestureSwitch) Holding(reason string) bool {
	_, ok := g.held[reason]
	return ok
}

func (g *GestureSwitch) apply() {
	want := len(g.held) == 0
	if want == g.enabled {
		return
	}
	g.enabled = want
	g.view.SetInteractive(want)
}
