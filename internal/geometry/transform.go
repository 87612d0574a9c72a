// Package geometry holds pure functions for icon transforms and map
// projection.
package geometry

import "math"

// Point is a screen position in pixels, origin top-left.
type Point struct {
	X float64
	Y float64
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IconBox is the on-screen footprint of a transformed icon.
type IconBox struct {
	// Width and Height bound the rotated, scaled icon.
	Width  float64
	Height float64
	// AnchorX and AnchorY locate the icon's geographic point inside the box.
	AnchorX float64
	AnchorY float64
	// ScaleX is negative when the icon is mirrored.
	ScaleX   float64
	ScaleY   float64
	Rotation int
}

// NormalizeRotation wraps deg into [0, 360).
func NormalizeRotation(deg int) int {
	r := deg % 360
	if r < 0 {
		r += 360
	}
	return r
}

// ClampScale bounds s to [min, max]. NaN collapses to 1 when 1 is in range.
func ClampScale(s, min, max float64) float64 {
	if math.IsNaN(s) {
		s = 1
	}
	return math.Max(min, math.Min(max, s))
}

// ComputeIconBox returns the bounding box of a w×h icon scaled by scale and
// rotated clockwise by rotation degrees about its centre.
func ComputeIconBox(w, h float64, rotation int, scale float64, flipped bool) IconBox {
	rot := NormalizeRotation(rotation)
	sw, sh := w*scale, h*scale

	rad := float64(rot) * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	bw := round6(sw*cos + sh*sin)
	bh := round6(sw*sin + sh*cos)

	sx := scale
	if flipped {
		sx = -scale
	}
	return IconBox{
		Width:    bw,
		Height:   bh,
		AnchorX:  bw / 2,
		AnchorY:  bh / 2,
		ScaleX:   sx,
		ScaleY:   scale,
		Rotation: rot,
	}
}

// Corners returns the four corners of a w×h rectangle centred on c after
// mirroring, scaling and clockwise rotation, in drawing order.
func Corners(c Point, w, h float64, rotation int, scale float64, flipped bool) [4]Point {
	hw, hh := w*scale/2, h*scale/2
	local := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Point
	for i, p := range local {
		out[i] = Apply(c, p, rotation, flipped)
	}
	return out
}

// Apply maps an icon-local offset p to screen space around c.
func Apply(c, p Point, rotation int, flipped bool) Point {
	if flipped {
		p.X = -p.X
	}
	rad := float64(NormalizeRotation(rotation)) * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Point{
		X: c.X + p.X*cos - p.Y*sin,
		Y: c.Y + p.X*sin + p.Y*cos,
	}
}

// round6 strips float noise so identical inputs compare equal after trig.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
