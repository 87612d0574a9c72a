package geometry

import "math"

const (
	TileSize = 256.0
	// MaxLatitude is the Web Mercator cutoff.
	MaxLatitude = 85.05112878
)

// Viewport describes a Web Mercator view: geographic centre, fractional
// zoom and pixel size.
type Viewport struct {
	CenterLat float64
	CenterLng float64
	Zoom      float64
	Width     int
	Height    int
}

// WorldPixel projects a coordinate to global pixel space at zoom.
func WorldPixel(lat, lng, zoom float64) Point {
	lat = math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
	scale := TileSize * math.Pow(2, zoom)
	x := (lng + 180) / 360 * scale
	sinLat := math.Sin(lat * math.Pi / 180)
	y := (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)) * scale
	return Point{X: x, Y: y}
}

// WorldLatLng is the inverse of WorldPixel.
func WorldLatLng(p Point, zoom float64) (lat, lng float64) {
	scale := TileSize * math.Pow(2, zoom)
	lng = p.X/scale*360 - 180
	n := math.Pi - 2*math.Pi*p.Y/scale
	lat = 180 / math.Pi * math.Atan(math.Sinh(n))
	return lat, lng
}

func (v Viewport) origin() Point {
	c := WorldPixel(v.CenterLat, v.CenterLng, v.Zoom)
	return Point{X: c.X - float64(v.Width)/2, Y: c.Y - float64(v.Height)/2}
}

// ToScreen converts a coordinate into viewport pixels.
func (v Viewport) ToScreen(lat, lng float64) Point {
	o := v.origin()
	w := WorldPixel(lat, lng, v.Zoom)
	return Point{X: w.X - o.X, Y: w.Y - o.Y}
}

// ToGeo converts viewport pixels into a coordinate.
func (v Viewport) ToGeo(p Point) (lat, lng float64) {
	o := v.origin()
	return WorldLatLng(Point{X: p.X + o.X, Y: p.Y + o.Y}, v.Zoom)
}

// TileRange lists the integer tile coordinates covering the viewport.
func (v Viewport) TileRange() (z, minX, minY, maxX, maxY int) {
	z = int(math.Floor(v.Zoom))
	o := v.origin()
	f := math.Pow(2, v.Zoom-float64(z))
	minX = int(math.Floor(o.X / f / TileSize))
	minY = int(math.Floor(o.Y / f / TileSize))
	maxX = int(math.Floor((o.X + float64(v.Width)) / f / TileSize))
	maxY = int(math.Floor((o.Y + float64(v.Height)) / f / TileSize))
	return z, minX, minY, maxX, maxY
}

// TileOffset returns the viewport pixel of the top-left corner of tile
// (x, y) at integer zoom z, and the rendered edge length.
func (v Viewport) TileOffset(z, x, y int) (Point, float64) {
	o := v.origin()
	f := math.Pow(2, v.Zoom-float64(z))
	size := TileSize * f
	return Point{X: float64(x)*size - o.X, Y: float64(y)*size - o.Y}, size
}
