// Package export rasterizes a sketch over map tiles and writes it out as a
// PNG file.
package export

import (
	"image/color"
	"strconv"
	"strings"

	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"

	"golang.org/x/image/colornames"
)

// Scene is what gets drawn: the sketch, the map view it is seen through and
// an optional selected incident to highlight.
type Scene struct {
	Sketch   *domain.Sketch
	View     geometry.Viewport
	Selected string
}

// SceneFor centres a view on the sketch's stored map centre, or on the
// bounding box of its content when none was stored. A stored zoom outside
// [domain.MinZoom, domain.MaxZoom] is ignored.
func SceneFor(s *domain.Sketch, width, height int, defaultZoom float64) Scene {
	v := geometry.Viewport{Zoom: defaultZoom, Width: width, Height: height}
	if z := s.Metadata.Zoom; z != nil && *z >= domain.MinZoom && *z <= domain.MaxZoom {
		v.Zoom = *z
	}
	switch {
	case s.Metadata.MapCenter != nil:
		v.CenterLat, v.CenterLng = s.Metadata.MapCenter.Lat, s.Metadata.MapCenter.Lng
	default:
		if c, ok := contentCenter(s); ok {
			v.CenterLat, v.CenterLng = c.Lat, c.Lng
		}
	}
	return Scene{Sketch: s, View: v}
}

func contentCenter(s *domain.Sketch) (domain.LatLng, bool) {
	first := true
	var minLat, maxLat, minLng, maxLng float64
	add := func(p domain.LatLng) {
		if first {
			minLat, maxLat, minLng, maxLng = p.Lat, p.Lat, p.Lng, p.Lng
			first = false
			return
		}
		minLat, maxLat = min(minLat, p.Lat), max(maxLat, p.Lat)
		minLng, maxLng = min(minLng, p.Lng), max(maxLng, p.Lng)
	}
	for _, inc := range s.Incidents {
		add(inc.Position)
	}
	for _, l := range s.DrawnLines {
		for _, p := range l.Positions {
			add(p)
		}
	}
	if first {
		return domain.LatLng{}, false
	}
	return domain.LatLng{Lat: (minLat + maxLat) / 2, Lng: (minLng + maxLng) / 2}, true
}

// ParseColor reads #rrggbb, #rgb or an SVG colour name. Unknown values are
// black.
func ParseColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{A: 0xff}
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
