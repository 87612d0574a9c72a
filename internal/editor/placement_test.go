package editor

import (
	"errors"
	"testing"

	"roadsketch/internal/domain"
	"roadsketch/internal/symbols"
	"roadsketch/pkg/e"
)

func newTestPlacement() (*Placement, *Document) {
	doc := NewDocument()
	return NewPlacement(doc), doc
}

func TestPlacement_PlaceDefaults(t *testing.T) {
	t.Parallel()

	p, doc := newTestPlacement()
	inc, err := p.Place(symbols.Car, pt(52.09, 5.12))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if inc.ID == "" || inc.Timestamp.IsZero() {
		t.Fatalf("id or timestamp not set: %+v", inc)
	}
	if inc.Rotation != 0 || inc.Scale != 1 || inc.Flipped || inc.Text != nil {
		t.Fatalf("not untransformed: %+v", inc)
	}
	if len(doc.Sketch().Incidents) != 1 {
		t.Fatalf("incidents = %d", len(doc.Sketch().Incidents))
	}
}

func TestPlacement_PlaceText(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlacement()
	inc, err := p.Place(symbols.Text, pt(52, 5))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if inc.Text == nil || *inc.Text != symbols.DefaultText {
		t.Fatalf("text = %v", inc.Text)
	}
}

func TestPlacement_PlaceUnknownType(t *testing.T) {
	t.Parallel()

	p, doc := newTestPlacement()
	_, err := p.Place(symbols.Type("spaceship"), pt(52, 5))
	if !errors.Is(err, e.ErrUnknownType) {
		t.Fatalf("err = %v", err)
	}
	if len(doc.Sketch().Incidents) != 0 {
		t.Fatalf("incident added for unknown type")
	}
}

func TestPlacement_UpdateNormalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		patch     Patch
		wantRot   int
		wantScale float64
	}{
		{name: "rotation wraps", patch: Patch{Rotation: intPtr(370)}, wantRot: 10, wantScale: 1},
		{name: "negative rotation", patch: Patch{Rotation: intPtr(-90)}, wantRot: 270, wantScale: 1},
		{name: "full turn", patch: Patch{Rotation: intPtr(720)}, wantRot: 0, wantScale: 1},
		{name: "scale clamped high", patch: Patch{Scale: f64Ptr(5)}, wantRot: 0, wantScale: domain.MaxScale},
		{name: "scale clamped low", patch: Patch{Scale: f64Ptr(0.1)}, wantRot: 0, wantScale: domain.MinScale},
		{name: "scale in range", patch: Patch{Scale: f64Ptr(1.5)}, wantRot: 0, wantScale: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, _ := newTestPlacement()
			inc, _ := p.Place(symbols.Truck, pt(52, 5))
			got, err := p.Update(inc.ID, tt.patch)
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if got.Rotation != tt.wantRot || got.Scale != tt.wantScale {
				t.Fatalf("got rotation %d scale %v, want %d %v", got.Rotation, got.Scale, tt.wantRot, tt.wantScale)
			}
		})
	}
}

func TestPlacement_UpdateLeavesOtherFields(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlacement()
	inc, _ := p.Place(symbols.Van, pt(52, 5))
	got, err := p.Update(inc.ID, Patch{Flipped: boolPtr(true), Text: strPtr("ignored")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.Flipped || got.Text != nil {
		t.Fatalf("got %+v", got)
	}
	if got.Type != inc.Type || got.ID != inc.ID || !got.Timestamp.Equal(inc.Timestamp) || got.Position != inc.Position {
		t.Fatalf("immutable fields changed: %+v vs %+v", got, inc)
	}
}

func TestPlacement_UpdateText(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlacement()
	inc, _ := p.Place(symbols.Text, pt(52, 5))
	got, err := p.Update(inc.ID, Patch{Text: strPtr("Skid marks")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Text == nil || *got.Text != "Skid marks" {
		t.Fatalf("text = %v", got.Text)
	}
}

func TestPlacement_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	p, doc := newTestPlacement()
	inc, _ := p.Place(symbols.Car, pt(52, 5))
	before := doc.Snapshot()

	if _, err := p.Update("nope", Patch{Rotation: intPtr(90)}); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("Update err = %v", err)
	}
	if err := p.Delete("nope"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("Delete err = %v", err)
	}
	if err := p.Select("nope"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("Select err = %v", err)
	}
	after := doc.Snapshot()
	if len(after.Incidents) != 1 || after.Incidents[0].Rotation != before.Incidents[0].Rotation {
		t.Fatalf("state changed")
	}
	if p.IsSelected(inc.ID) {
		t.Fatalf("unexpected selection")
	}
}

func TestPlacement_DeleteClearsSelection(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlacement()
	a, _ := p.Place(symbols.Car, pt(52, 5))
	b, _ := p.Place(symbols.Bus, pt(52.1, 5.1))
	if err := p.Select(a.ID); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := p.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := p.Selected(); ok {
		t.Fatalf("selection survived delete")
	}
	if _, ok := p.Glyph(b.ID); !ok {
		t.Fatalf("other incident lost")
	}
}

func TestPlacement_GlyphReflectsState(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlacement()
	inc, _ := p.Place(symbols.Car, pt(52, 5))
	_, _ = p.Update(inc.ID, Patch{Rotation: intPtr(90), Scale: f64Ptr(2), Flipped: boolPtr(true)})
	_ = p.Select(inc.ID)

	g, ok := p.Glyph(inc.ID)
	if !ok {
		t.Fatalf("glyph missing")
	}
	if !g.Selected || g.Box.Rotation != 90 || g.Box.ScaleX != -2 || g.Box.ScaleY != 2 {
		t.Fatalf("glyph = %+v", g)
	}
}

func TestPlacement_HitTestPrefersTopMost(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlacement()
	view := newFakeView()
	_, _ = p.Place(symbols.Car, pt(52, 5))
	top, _ := p.Place(symbols.Truck, pt(52, 5))

	id, ok := p.HitTest(view, screen(52, 5))
	if !ok || id != top.ID {
		t.Fatalf("hit %q, want %q", id, top.ID)
	}
	if _, ok := p.HitTest(view, screen(52.01, 5.01)); ok {
		t.Fatalf("hit far from any incident")
	}
}
