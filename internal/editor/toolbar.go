package editor

import (
	"fmt"

	"roadsketch/internal/symbols"
	"roadsketch/pkg/e"
)

// Toolbar is presentation state for the symbol picker: the open category,
// the filter text and at most one armed tool.
type Toolbar struct {
	category symbols.Category
	query    string
	armed    symbols.Type
}

func NewToolbar() *Toolbar {
	return &Toolbar{category: symbols.CategoryVehicles}
}

// SelectCategory opens c. It never arms a tool and reports whether c is the
// drawing category, which the caller turns into a mode change.
func (t *Toolbar) SelectCategory(c symbols.Category) (drawing bool, err error) {
	known := false
	for _, k := range symbols.Categories {
		if k == c {
			known = true
			break
		}
	}
	if !known {
		return false, fmt.Errorf("editor.Toolbar.SelectCategory: %q: %w", c, e.ErrInvalidInput)
	}
	t.category = c
	return c == symbols.CategoryDrawing, nil
}

// SelectTool arms typ, replacing any previously armed tool.
func (t *Toolbar) SelectTool(typ symbols.Type) error {
	en, ok := symbols.Lookup(typ)
	if !ok {
		return fmt.Errorf("editor.Toolbar.SelectTool: %q: %w", typ, e.ErrUnknownType)
	}
	t.category = en.Category
	t.armed = typ
	return nil
}

func (t *Toolbar) Disarm() { t.armed = "" }

func (t *Toolbar) Armed() (symbols.Type, bool) { return t.armed, t.armed != "" }

func (t *Toolbar) Category() symbols.Category { return t.category }

func (t *Toolbar) SetFilter(q string) { t.query = q }

// Entries lists the tools visible in the open category under the current
// filter.
func (t *Toolbar) Entries() []symbols.Entry {
	return symbols.Filter(t.category, t.query)
}
