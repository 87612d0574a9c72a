package editor

import (
	"fmt"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"
	"roadsketch/internal/symbols"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

// Patch lists the incident fields an update may change. Nil fields are left
// alone. Type, ID and Timestamp are immutable and have no patch field.
type Patch struct {
	Position *domain.LatLng
	Rotation *int
	Scale    *float64
	Flipped  *bool
	Text     *string
}

// Placement creates, selects and transforms incidents in a Document.
type Placement struct {
	doc   *Document
	now   func() time.Time
	newID func() string
}

func NewPlacement(doc *Document) *Placement {
	return &Placement{
		doc:   doc,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Place appends a new untransformed incident of type t at pos.
func (p *Placement) Place(t symbols.Type, pos domain.LatLng) (domain.Incident, error) {
	const op = "editor.Placement.Place"

	if !symbols.Valid(string(t)) {
		return domain.Incident{}, fmt.Errorf("%s: %q: %w", op, t, e.ErrUnknownType)
	}
	inc := domain.Incident{
		ID:        p.newID(),
		Type:      string(t),
		Position:  pos,
		Rotation:  0,
		Scale:     1,
		Flipped:   false,
		Timestamp: p.now(),
	}
	if t == symbols.Text {
		label := symbols.DefaultText
		inc.Text = &label
	}
	s := p.doc.sketch
	s.Incidents = append(s.Incidents, inc)
	return inc.Clone(), nil
}

// Update merges patch into the incident with id. Rotation is wrapped into
// [0, 360) and scale clamped to [MinScale, MaxScale].
func (p *Placement) Update(id string, patch Patch) (domain.Incident, error) {
	const op = "editor.Placement.Update"

	i := p.doc.indexOf(id)
	if i < 0 {
		return domain.Incident{}, fmt.Errorf("%s: %q: %w", op, id, e.ErrNotFound)
	}
	inc := &p.doc.sketch.Incidents[i]
	if patch.Position != nil {
		inc.Position = *patch.Position
	}
	if patch.Rotation != nil {
		inc.Rotation = geometry.NormalizeRotation(*patch.Rotation)
	}
	if patch.Scale != nil {
		inc.Scale = geometry.ClampScale(*patch.Scale, domain.MinScale, domain.MaxScale)
	}
	if patch.Flipped != nil {
		inc.Flipped = *patch.Flipped
	}
	if patch.Text != nil && inc.Type == string(symbols.Text) {
		text := *patch.Text
		inc.Text = &text
	}
	return inc.Clone(), nil
}

// Delete removes the incident and clears the selection if it pointed at it.
func (p *Placement) Delete(id string) error {
	const op = "editor.Placement.Delete"

	i := p.doc.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %q: %w", op, id, e.ErrNotFound)
	}
	s := p.doc.sketch
	s.Incidents = append(s.Incidents[:i], s.Incidents[i+1:]...)
	if p.doc.selected == id {
		p.doc.selected = ""
	}
	return nil
}

// Select points the selection at id; an empty id clears it.
func (p *Placement) Select(id string) error {
	if id == "" {
		p.doc.selected = ""
		return nil
	}
	if p.doc.indexOf(id) < 0 {
		return fmt.Errorf("editor.Placement.Select: %q: %w", id, e.ErrNotFound)
	}
	p.doc.selected = id
	return nil
}

func (p *Placement) Selected() (string, bool) {
	return p.doc.selected, p.doc.selected != ""
}

func (p *Placement) IsSelected(id string) bool {
	return id != "" && p.doc.selected == id
}

// Glyph renders the incident with id as it currently appears.
func (p *Placement) Glyph(id string) (symbols.Glyph, bool) {
	inc, ok := p.doc.Incident(id)
	if !ok {
		return symbols.Glyph{}, false
	}
	return GlyphFor(inc, p.IsSelected(id)), true
}

// GlyphFor is the pure render mapping for one incident.
func GlyphFor(inc domain.Incident, selected bool) symbols.Glyph {
	text := ""
	if inc.Text != nil {
		text = *inc.Text
	}
	return symbols.Render(symbols.State{
		Type:     symbols.Type(inc.Type),
		Rotation: inc.Rotation,
		Scale:    inc.Scale,
		Flipped:  inc.Flipped,
		Text:     text,
		Selected: selected,
	})
}

// HitTest returns the top-most incident whose hit radius, scaled with the
// incident, contains pt. Ties go to the nearest centre.
func (p *Placement) HitTest(view MapView, pt geometry.Point) (string, bool) {
	best, bestDist := "", 0.0
	incs := p.doc.sketch.Incidents
	for i := len(incs) - 1; i >= 0; i-- {
		inc := incs[i]
		en, ok := symbols.Lookup(symbols.Type(inc.Type))
		if !ok {
			continue
		}
		scale := inc.Scale
		if scale <= 0 {
			scale = 1
		}
		d := view.ToScreen(inc.Position).Dist(pt)
		if d > en.HitRadius*scale {
			continue
		}
		if best == "" || d < bestDist {
			best, bestDist = inc.ID, d
		}
	}
	return best, best != ""
}
