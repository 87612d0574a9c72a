package symbols

import (
	"roadsketch/internal/geometry"
)

// Glyph is everything a renderer needs to draw one incident. It is a value:
// the same inputs always produce an equal Glyph.
type Glyph struct {
	Type        Type
	Icon        string
	Fallback    string
	Label       string
	Color       string
	Width       float64
	Height      float64
	Box         geometry.IconBox
	Directional bool
	Selected    bool
	// Shape selects the raster primitive used when no icon image is drawn.
	Shape Shape
}

type Shape int

const (
	ShapeBody Shape = iota
	ShapeDot
	ShapeSign
	ShapeArrow
	ShapeTextBox
)

// State is the subset of an incident that affects its appearance.
type State struct {
	Type     Type
	Rotation int
	Scale    float64
	Flipped  bool
	Text     string
	Selected bool
}

// ShapeFor is the raster primitive of a category. Every category that holds
// symbols has a case here; drawing holds none and reports false, as does
// any value outside Categories.
func ShapeFor(c Category) (Shape, bool) {
	switch c {
	case CategoryVehicles, CategoryEmergency:
		return ShapeBody, true
	case CategoryPeople, CategoryRoad:
		return ShapeDot, true
	case CategorySigns:
		return ShapeSign, true
	case CategoryArrows:
		return ShapeArrow, true
	case CategoryText:
		return ShapeTextBox, true
	case CategoryDrawing:
		return 0, false
	default:
		return 0, false
	}
}

// Render maps an incident state to its glyph. Tags outside the catalog are
// drawn as a grey text box carrying the raw tag.
func Render(s State) Glyph {
	en, ok := Lookup(s.Type)
	if !ok {
		en = Entry{Type: s.Type, Category: CategoryText, Label: string(s.Type), Fallback: "?",
			Width: 16, Height: 16, HitRadius: 10, Color: "#9e9e9e"}
	}
	shape, ok := ShapeFor(en.Category)
	if !ok || shape == ShapeTextBox {
		return renderText(en, s)
	}
	g := base(en, s)
	g.Shape = shape
	return g
}

func renderText(en Entry, s State) Glyph {
	g := base(en, s)
	g.Shape = ShapeTextBox
	label := s.Text
	switch {
	case label != "":
	case en.Type == Text:
		label = DefaultText
	default:
		label = en.Label
	}
	g.Label = label
	// boxes grow with the label, roughly 7px per rune plus padding
	w := float64(len([]rune(label)))*7 + 12
	if w < en.Width {
		w = en.Width
	}
	g.Width = w
	g.Box = geometry.ComputeIconBox(w, en.Height, s.Rotation, scale(s), s.Flipped)
	return g
}

func base(en Entry, s State) Glyph {
	return Glyph{
		Type:        en.Type,
		Icon:        en.Icon,
		Fallback:    en.Fallback,
		Label:       en.Label,
		Color:       en.Color,
		Width:       en.Width,
		Height:      en.Height,
		Box:         geometry.ComputeIconBox(en.Width, en.Height, s.Rotation, scale(s), s.Flipped),
		Directional: en.Directional,
		Selected:    s.Selected,
	}
}

func scale(s State) float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}
