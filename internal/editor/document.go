package editor

import (
	"roadsketch/internal/domain"
)

// Document is the in-memory sketch owned by one editing session plus its
// transient selection. Selection is never persisted.
type Document struct {
	sketch   *domain.Sketch
	selected string
	// generation changes whenever the whole sketch is replaced, so a save
	// that finishes after a load or reset does not stamp the wrong sketch.
	generation uint64
}

func NewDocument() *Document {
	return &Document{sketch: emptySketch()}
}

func emptySketch() *domain.Sketch {
	return &domain.Sketch{
		Incidents:  []domain.Incident{},
		DrawnLines: []domain.DrawnLine{},
	}
}

// Replace swaps in s wholesale. Nothing of the previous sketch survives.
func (d *Document) Replace(s *domain.Sketch) {
	if s == nil {
		s = emptySketch()
	}
	if s.Incidents == nil {
		s.Incidents = []domain.Incident{}
	}
	if s.DrawnLines == nil {
		s.DrawnLines = []domain.DrawnLine{}
	}
	d.sketch = s
	d.selected = ""
	d.generation++
}

func (d *Document) Sketch() *domain.Sketch { return d.sketch }

func (d *Document) Generation() uint64 { return d.generation }

func (d *Document) Snapshot() *domain.Sketch { return d.sketch.Clone() }

func (d *Document) indexOf(id string) int {
	for i := range d.sketch.Incidents {
		if d.sketch.Incidents[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) Incident(id string) (domain.Incident, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return domain.Incident{}, false
	}
	return d.sketch.Incidents[i].Clone(), true
}

func (d *Document) AddLine(l domain.DrawnLine) {
	d.sketch.DrawnLines = append(d.sketch.DrawnLines, l)
}

func (d *Document) RemoveLine(id string) bool {
	for i := range d.sketch.DrawnLines {
		if d.sketch.DrawnLines[i].ID == id {
			d.sketch.DrawnLines = append(d.sketch.DrawnLines[:i], d.sketch.DrawnLines[i+1:]...)
			return true
		}
	}
	return false
}
