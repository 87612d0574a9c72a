package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScale = 0.5
	MaxScale = 3.0

	MinLineWeight = 1.0
	MaxLineWeight = 20.0

	// Stored map zoom bounds, the range slippy tile servers serve.
	MinZoom = 0.0
	MaxZoom = 22.0
)

// Incident is a placed symbol. Type holds a symbols.Type tag; it is kept as a
// plain string here so storage and transport do not depend on the catalog.
type Incident struct {
	ID        string    `json:"id" validate:"required,max=64"`
	Type      string    `json:"type" validate:"required,symbol"`
	Position  LatLng    `json:"position" validate:"geo"`
	Rotation  int       `json:"rotation"`
	Scale     float64   `json:"scale" validate:"gt=0"`
	Flipped   bool      `json:"flipped"`
	Text      *string   `json:"text" validate:"omitempty,max=500"`
	Timestamp time.Time `json:"timestamp"`
}

type DrawnLine struct {
	ID        string    `json:"id" validate:"required,max=64"`
	Positions []LatLng  `json:"positions" validate:"min=2,max=10000,dive,geo"`
	Color     string    `json:"color" validate:"required,linecolor"`
	Weight    float64   `json:"weight" validate:"gt=0"`
	Timestamp time.Time `json:"timestamp"`
}

// Metadata carries view state for restoring an editing session. Known keys
// are typed; anything else a client sends survives in Extra.
type Metadata struct {
	MapCenter    *LatLng        `json:"mapCenter,omitempty"`
	Zoom         *float64       `json:"zoom,omitempty" validate:"omitempty,min=0,max=22"`
	CurrentLayer string         `json:"currentLayer,omitempty"`
	Extra        map[string]any `json:"-"`
}

type Sketch struct {
	ID          *uuid.UUID  `json:"id,omitempty"`
	OwnerID     uuid.UUID   `json:"-"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Incidents   []Incident  `json:"incidents"`
	DrawnLines  []DrawnLine `json:"drawn_lines"`
	Metadata    Metadata    `json:"metadata"`
	IsPublic    bool        `json:"is_public"`
	CreatedAt   time.Time   `json:"created_at,omitzero"`
	UpdatedAt   time.Time   `json:"updated_at,omitzero"`
}

// SketchSummary is the list projection without incident and line payloads.
type SketchSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy so a snapshot can leave the editing session
// without aliasing its slices.
func (s *Sketch) Clone() *Sketch {
	if s == nil {
		return nil
	}
	out := *s
	if s.ID != nil {
		id := *s.ID
		out.ID = &id
	}
	if s.Description != nil {
		d := *s.Description
		out.Description = &d
	}
	out.Incidents = make([]Incident, len(s.Incidents))
	for i, inc := range s.Incidents {
		out.Incidents[i] = inc.Clone()
	}
	out.DrawnLines = make([]DrawnLine, len(s.DrawnLines))
	for i, l := range s.DrawnLines {
		out.DrawnLines[i] = l.Clone()
	}
	out.Metadata = s.Metadata.Clone()
	return &out
}

func (i Incident) Clone() Incident {
	if i.Text != nil {
		t := *i.Text
		i.Text = &t
	}
	return i
}

func (l DrawnLine) Clone() DrawnLine {
	l.Positions = append([]LatLng(nil), l.Positions...)
	return l
}

func (m Metadata) Clone() Metadata {
	if m.MapCenter != nil {
		c := *m.MapCenter
		m.MapCenter = &c
	}
	if m.Zoom != nil {
		z := *m.Zoom
		m.Zoom = &z
	}
	if m.Extra != nil {
		extra := make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			extra[k] = v
		}
		m.Extra = extra
	}
	return m
}
