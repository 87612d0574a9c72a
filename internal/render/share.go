package render

import (
	"fmt"
	"html/template"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/symbols"
)

const (
	SharePage    = "share.html"
	NotFoundPage = "not_found.html"
)

type ShareIncident struct {
	Label    string
	Position string
	Rotation int
	Scale    float64
	Flipped  bool
	Text     string
}

type ShareLine struct {
	Color  string
	Points int
}

type ShareView struct {
	Title       string
	Description string
	ImageURL    string
	UpdatedAt   time.Time
	Incidents   []ShareIncident
	Lines       []ShareLine
}

// NewShareView flattens a public sketch into what the page shows.
func NewShareView(s *domain.Sketch, imageURL string) ShareView {
	v := ShareView{
		Title:     s.Title,
		ImageURL:  imageURL,
		UpdatedAt: s.UpdatedAt,
		Incidents: make([]ShareIncident, 0, len(s.Incidents)),
		Lines:     make([]ShareLine, 0, len(s.DrawnLines)),
	}
	if s.Description != nil {
		v.Description = *s.Description
	}
	for _, inc := range s.Incidents {
		label := inc.Type
		if en, ok := symbols.Lookup(symbols.Type(inc.Type)); ok {
			label = en.Label
		}
		si := ShareIncident{
			Label:    label,
			Position: inc.Position.String(),
			Rotation: inc.Rotation,
			Scale:    inc.Scale,
			Flipped:  inc.Flipped,
		}
		if inc.Text != nil {
			si.Text = *inc.Text
		}
		v.Incidents = append(v.Incidents, si)
	}
	for _, l := range s.DrawnLines {
		v.Lines = append(v.Lines, ShareLine{Color: l.Color, Points: len(l.Positions)})
	}
	return v
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("2006-01-02 15:04 MST")
	},
	"scale": func(f float64) string { return fmt.Sprintf("%.1f×", f) },
}
