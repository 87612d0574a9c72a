package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"
	"roadsketch/internal/symbols"
	"roadsketch/pkg/e"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	maxDimension = 8192
	maxTileZoom  = 30
)

var (
	background = color.RGBA{R: 0xf2, G: 0xef, B: 0xe9, A: 0xff}
	highlight  = color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xc0}
	white      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black      = color.RGBA{A: 0xff}
)

// Renderer draws scenes onto RGBA images. Tiles is optional; without it the
// map area is a flat background.
type Renderer struct {
	tiles  TileSource
	logger *slog.Logger
}

func NewRenderer(tiles TileSource, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{tiles: tiles, logger: logger}
}

// Render draws tiles, then lines, then incidents in insertion order.
func (r *Renderer) Render(ctx context.Context, sc Scene) (*image.RGBA, error) {
	const op = "export.Renderer.Render"

	w, h := sc.View.Width, sc.View.Height
	if w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("%s: bad size %dx%d", op, w, h)
	}
	if sc.Sketch == nil {
		return nil, fmt.Errorf("%s: nil sketch", op)
	}
	if math.IsNaN(sc.View.Zoom) || math.IsInf(sc.View.Zoom, 0) || sc.View.Zoom > maxTileZoom {
		return nil, fmt.Errorf("%s: zoom %v: %w", op, sc.View.Zoom, e.ErrInvalidInput)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if r.tiles != nil {
		if err := r.drawTiles(ctx, img, sc.View); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	p := &painter{img: img, ras: vector.NewRasterizer(w, h)}
	for _, l := range sc.Sketch.DrawnLines {
		p.polyline(project(sc.View, l.Positions), l.Weight, ParseColor(l.Color))
	}
	for _, inc := range sc.Sketch.Incidents {
		text := ""
		if inc.Text != nil {
			text = *inc.Text
		}
		g := symbols.Render(symbols.State{
			Type:     symbols.Type(inc.Type),
			Rotation: inc.Rotation,
			Scale:    inc.Scale,
			Flipped:  inc.Flipped,
			Text:     text,
			Selected: inc.ID == sc.Selected && sc.Selected != "",
		})
		c := sc.View.ToScreen(inc.Position.Lat, inc.Position.Lng)
		p.glyph(c, g)
	}
	return img, nil
}

func (r *Renderer) drawTiles(ctx context.Context, img *image.RGBA, v geometry.Viewport) error {
	z, minX, minY, maxX, maxY := v.TileRange()
	if z < 0 || z > maxTileZoom {
		r.logger.Warn("zoom outside tile range, tiles skipped", slog.Float64("zoom", v.Zoom))
		return nil
	}
	n := 1 << z
	for ty := minY; ty <= maxY; ty++ {
		if ty < 0 || ty >= n {
			continue
		}
		for tx := minX; tx <= maxX; tx++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			wrapped := ((tx % n) + n) % n
			tile, err := r.tiles.Tile(ctx, z, wrapped, ty)
			if err != nil {
				r.logger.Warn("tile fetch failed",
					slog.Int("z", z), slog.Int("x", wrapped), slog.Int("y", ty),
					slog.Any("error", err))
				continue
			}
			off, size := v.TileOffset(z, tx, ty)
			dst := image.Rect(
				int(math.Round(off.X)), int(math.Round(off.Y)),
				int(math.Round(off.X+size)), int(math.Round(off.Y+size)),
			)
			draw.ApproxBiLinear.Scale(img, dst, tile, tile.Bounds(), draw.Over, nil)
		}
	}
	return nil
}

func project(v geometry.Viewport, pts []domain.LatLng) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	for i, p := range pts {
		out[i] = v.ToScreen(p.Lat, p.Lng)
	}
	return out
}

type painter struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// fill rasterizes one closed polygon. Polygons are filled one at a time so
// opposite windings never cancel.
func (p *painter) fill(pts []geometry.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := p.img.Bounds()
	p.ras.Reset(b.Dx(), b.Dy())
	p.ras.DrawOp = draw.Over
	p.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		p.ras.LineTo(float32(q.X), float32(q.Y))
	}
	p.ras.ClosePath()
	p.ras.Draw(p.img, b, image.NewUniform(c), image.Point{})
}

func (p *painter) circle(c geometry.Point, radius float64, col color.Color) {
	const sides = 20
	pts := make([]geometry.Point, sides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / sides
		pts[i] = geometry.Point{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
	}
	p.fill(pts, col)
}

// polyline strokes pts as segment quads with round joins.
func (p *painter) polyline(pts []geometry.Point, weight float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	if weight <= 0 {
		weight = 1
	}
	hw := weight / 2
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		p.fill([]geometry.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}, c)
	}
	if hw >= 1 {
		for _, q := range pts {
			p.circle(q, hw, c)
		}
	}
}

func (p *painter) glyph(c geometry.Point, g symbols.Glyph) {
	scale := g.Box.ScaleY
	flipped := g.Box.ScaleX < 0
	rot := g.Box.Rotation

	if g.Selected {
		p.circle(c, math.Max(g.Box.Width, g.Box.Height)/2+4, highlight)
	}

	col := ParseColor(g.Color)
	switch g.Shape {
	case symbols.ShapeBody:
		corners := geometry.Corners(c, g.Width, g.Height, rot, scale, flipped)
		p.fill(corners[:], col)
		if g.Directional {
			hw, hh := g.Width*scale/2, g.Height*scale/2
			p.fill(local(c, rot, flipped,
				geometry.Point{X: 0, Y: -hh + 2*scale},
				geometry.Point{X: hw * 0.6, Y: -hh + hw},
				geometry.Point{X: -hw * 0.6, Y: -hh + hw},
			), white)
		}
	case symbols.ShapeDot:
		p.circle(c, math.Min(g.Width, g.Height)*scale/2, col)
		if g.Directional {
			r := math.Min(g.Width, g.Height) * scale / 2
			p.fill(local(c, rot, flipped,
				geometry.Point{X: 0, Y: -r - 4*scale},
				geometry.Point{X: r * 0.5, Y: -r + scale},
				geometry.Point{X: -r * 0.5, Y: -r + scale},
			), col)
		}
	case symbols.ShapeSign:
		r := math.Min(g.Width, g.Height) * scale / 2
		oct := make([]geometry.Point, 8)
		for i := range oct {
			a := math.Pi/8 + float64(i)*math.Pi/4
			oct[i] = geometry.Apply(c, geometry.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}, rot, flipped)
		}
		p.fill(oct, col)
		p.circle(c, r*0.55, white)
	case symbols.ShapeArrow:
		hw, hh := g.Width*scale/2, g.Height*scale/2
		neck := -hh / 3
		p.fill(local(c, rot+arrowTurn(g.Type), flipped,
			geometry.Point{X: -hw / 3, Y: hh},
			geometry.Point{X: hw / 3, Y: hh},
			geometry.Point{X: hw / 3, Y: neck},
			geometry.Point{X: hw, Y: neck},
			geometry.Point{X: 0, Y: -hh},
			geometry.Point{X: -hw, Y: neck},
			geometry.Point{X: -hw / 3, Y: neck},
		), col)
	case symbols.ShapeTextBox:
		outer := geometry.Corners(c, g.Width+2, g.Height+2, rot, scale, flipped)
		p.fill(outer[:], black)
		inner := geometry.Corners(c, g.Width, g.Height, rot, scale, flipped)
		p.fill(inner[:], white)
		p.text(c, g.Label, col)
	}
}

func arrowTurn(t symbols.Type) int {
	switch t {
	case symbols.ArrowLeft:
		return -45
	case symbols.ArrowRight:
		return 45
	case symbols.ArrowUTurn:
		return 180
	default:
		return 0
	}
}

func local(c geometry.Point, rot int, flipped bool, pts ...geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	for i, q := range pts {
		out[i] = geometry.Apply(c, q, rot, flipped)
	}
	return out
}

// text draws s centred on c. basicfont only covers ASCII; other runes render
// as the face's fallback box.
func (p *painter) text(c geometry.Point, s string, col color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(math.Round(c.X))-width/2, int(math.Round(c.Y))+face.Ascent/2),
	}
	d.DrawString(s)
}
