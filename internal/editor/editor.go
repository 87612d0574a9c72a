// Package editor is the traffic-incident sketch editor: a single explicit
// interaction mode, the placement and line capture engines, the toolbar
// state and the persistence adapter, driven by pointer and keyboard events
// from a host map surface.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"
	"roadsketch/internal/geocode"
	"roadsketch/internal/geometry"
	"roadsketch/internal/symbols"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

const (
	rotateStep = 15
	scaleStep  = 0.1
)

// Editor is one editing session. Event handlers may be called from any
// goroutine; they are serialized internally. Network calls (Save, Load,
// List, DeleteStored) run without holding the session lock so the user can
// keep editing while they are in flight.
type Editor struct {
	mu     sync.Mutex
	saveMu sync.Mutex

	logger    *slog.Logger
	view      MapView
	gestures  *GestureSwitch
	doc       *Document
	placement *Placement
	capture   *LineCapture
	toolbar   *Toolbar
	persist   *Persistence
	searcher  *geocode.Searcher

	mode          Mode
	menu          ContextMenu
	dragging      string
	chromeVisible bool
	onChange      func()
}

type Option func(*Editor)

func WithLogger(l *slog.Logger) Option {
	return func(ed *Editor) { ed.logger = l }
}

// WithOnChange registers a callback run after every state change, outside
// the session lock, so the host can re-render.
func WithOnChange(fn func()) Option {
	return func(ed *Editor) { ed.onChange = fn }
}

func New(view MapView, store Store, owner uuid.UUID, opts ...Option) *Editor {
	doc := NewDocument()
	gestures := NewGestureSwitch(view)
	ed := &Editor{
		logger:        slog.New(slog.DiscardHandler),
		view:          view,
		gestures:      gestures,
		doc:           doc,
		placement:     NewPlacement(doc),
		capture:       NewLineCapture(gestures),
		toolbar:       NewToolbar(),
		persist:       NewPersistence(store, owner),
		mode:          Idle(),
		chromeVisible: true,
	}
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// update runs fn under the session lock and notifies the host afterwards.
func (ed *Editor) update(fn func() error) error {
	ed.mu.Lock()
	err := fn()
	ed.mu.Unlock()
	if ed.onChange != nil {
		ed.onChange()
	}
	return err
}

func (ed *Editor) setMode(m Mode) {
	if ed.mode == m {
		return
	}
	ed.logger.Debug("mode change", slog.String("from", ed.mode.String()), slog.String("to", m.String()))
	ed.mode = m
}

func (ed *Editor) Mode() Mode {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.mode
}

func (ed *Editor) Menu() ContextMenu {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.menu
}

func (ed *Editor) GesturesEnabled() bool {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.gestures.Enabled()
}

// Snapshot returns a deep copy of the in-memory sketch.
func (ed *Editor) Snapshot() *domain.Sketch {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.doc.Snapshot()
}

func (ed *Editor) Incident(id string) (domain.Incident, bool) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.doc.Incident(id)
}

// Glyphs renders every incident in insertion order.
func (ed *Editor) Glyphs() []symbols.Glyph {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	incs := ed.doc.sketch.Incidents
	out := make([]symbols.Glyph, len(incs))
	for i, inc := range incs {
		out[i] = GlyphFor(inc, ed.chromeVisible && ed.placement.IsSelected(inc.ID))
	}
	return out
}

// CapturePreview returns the points of the line being drawn, if any.
func (ed *Editor) CapturePreview() []domain.LatLng {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.capture.Points()
}

func (ed *Editor) Toolbar() (symbols.Category, []symbols.Entry, symbols.Type) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	armed, _ := ed.toolbar.Armed()
	return ed.toolbar.Category(), ed.toolbar.Entries(), armed
}

// --- toolbar ---

// SelectCategory opens a toolbar category. The drawing category switches
// the editor into drawing mode instead.
func (ed *Editor) SelectCategory(c symbols.Category) error {
	return ed.update(func() error {
		drawing, err := ed.toolbar.SelectCategory(c)
		if err != nil {
			return err
		}
		if drawing {
			ed.enterDrawing()
		}
		return nil
	})
}

func (ed *Editor) SetToolFilter(q string) {
	_ = ed.update(func() error {
		ed.toolbar.SetFilter(q)
		return nil
	})
}

// SelectTool arms t for the next placement click.
func (ed *Editor) SelectTool(t symbols.Type) error {
	return ed.update(func() error {
		if err := ed.toolbar.SelectTool(t); err != nil {
			return err
		}
		ed.leaveDrawing()
		ed.endDrag()
		ed.menu = ContextMenu{}
		_ = ed.placement.Select("")
		ed.setMode(ToolArmed(t))
		return nil
	})
}

func (ed *Editor) DisarmTool() {
	_ = ed.update(func() error {
		ed.disarm()
		return nil
	})
}

func (ed *Editor) disarm() {
	ed.toolbar.Disarm()
	if ed.mode.Is(ModeToolArmed) {
		ed.setMode(Idle())
	}
}

// SetDrawing toggles freehand drawing mode.
func (ed *Editor) SetDrawing(on bool) {
	_ = ed.update(func() error {
		if on {
			ed.enterDrawing()
		} else {
			ed.leaveDrawing()
		}
		return nil
	})
}

func (ed *Editor) SetLineStyle(color string, weight float64) error {
	return ed.update(func() error {
		return ed.capture.SetStyle(color, weight)
	})
}

func (ed *Editor) enterDrawing() {
	if ed.mode.Is(ModeDrawing) {
		return
	}
	ed.toolbar.Disarm()
	ed.endDrag()
	ed.menu = ContextMenu{}
	_ = ed.placement.Select("")
	ed.gestures.Suspend(holdDrawing)
	ed.setMode(Drawing())
}

func (ed *Editor) leaveDrawing() {
	if !ed.mode.Is(ModeDrawing) {
		return
	}
	if ed.capture.Capturing() {
		ed.capture.Discard()
	}
	ed.gestures.Resume(holdDrawing)
	ed.setMode(Idle())
}

// --- pointer ---

// Click handles a primary click at a screen point.
func (ed *Editor) Click(pt geometry.Point) error {
	return ed.update(func() error {
		if ed.menu.Open {
			ed.menu = ContextMenu{}
			return nil
		}
		switch ed.mode.Kind {
		case ModeDrawing:
			return nil
		case ModeToolArmed:
			_, err := ed.placeArmed(ed.view.ToGeo(pt))
			return err
		default:
			if id, ok := ed.placement.HitTest(ed.view, pt); ok {
				_ = ed.placement.Select(id)
				ed.setMode(Editing(id))
				return nil
			}
			if ed.mode.Is(ModeEditing) {
				_ = ed.placement.Select("")
				ed.setMode(Idle())
			}
			return nil
		}
	})
}

// placeArmed places the armed tool at pos. Placement is single-shot: the
// tool is disarmed afterwards.
func (ed *Editor) placeArmed(pos domain.LatLng) (domain.Incident, error) {
	t, ok := ed.toolbar.Armed()
	if !ok {
		return domain.Incident{}, fmt.Errorf("editor.Editor.place: %w", e.ErrInvalidInput)
	}
	inc, err := ed.placement.Place(t, pos)
	if err != nil {
		return domain.Incident{}, err
	}
	ed.disarm()
	ed.logger.Debug("incident placed", slog.String("id", inc.ID), slog.String("type", inc.Type))
	return inc, nil
}

// PointerDown starts a line capture in drawing mode, or a move drag when it
// lands on the selected incident.
func (ed *Editor) PointerDown(pt geometry.Point) {
	_ = ed.update(func() error {
		switch ed.mode.Kind {
		case ModeDrawing:
			ed.capture.Begin(ed.view.ToGeo(pt))
		case ModeEditing:
			if id, ok := ed.placement.HitTest(ed.view, pt); ok && id == ed.mode.Selected {
				ed.dragging = id
				ed.gestures.Suspend(holdMove)
			}
		}
		return nil
	})
}

func (ed *Editor) PointerMove(pt geometry.Point) {
	_ = ed.update(func() error {
		switch {
		case ed.mode.Is(ModeDrawing) && ed.capture.Capturing():
			ed.capture.Append(ed.view.ToGeo(pt))
		case ed.dragging != "":
			pos := ed.view.ToGeo(pt)
			if _, err := ed.placement.Update(ed.dragging, Patch{Position: &pos}); err != nil {
				ed.endDrag()
			}
		}
		return nil
	})
}

// PointerUp finishes the current capture or drag. A committed line is
// returned; a capture with fewer than two distinct points yields
// ErrTooFewPoints and no line.
func (ed *Editor) PointerUp(pt geometry.Point) (*domain.DrawnLine, error) {
	var line *domain.DrawnLine
	err := ed.update(func() error {
		if ed.dragging != "" {
			pos := ed.view.ToGeo(pt)
			_, _ = ed.placement.Update(ed.dragging, Patch{Position: &pos})
			ed.endDrag()
			return nil
		}
		if !ed.capture.Capturing() {
			return nil
		}
		ed.capture.Append(ed.view.ToGeo(pt))
		l, err := ed.capture.Commit()
		if err != nil {
			ed.logger.Debug("line discarded", slog.Any("error", err))
			return err
		}
		ed.doc.AddLine(l)
		c := l.Clone()
		line = &c
		return nil
	})
	return line, err
}

func (ed *Editor) endDrag() {
	if ed.dragging == "" {
		return
	}
	ed.dragging = ""
	ed.gestures.Resume(holdMove)
}

// SecondaryClick opens the context menu at pt. Drawing mode ignores it.
func (ed *Editor) SecondaryClick(pt geometry.Point) (ContextMenu, bool) {
	var menu ContextMenu
	_ = ed.update(func() error {
		if ed.mode.Is(ModeDrawing) {
			return nil
		}
		target, _ := ed.placement.HitTest(ed.view, pt)
		_, armed := ed.toolbar.Armed()
		ed.menu = buildMenu(pt, ed.view.ToGeo(pt), target, armed)
		menu = ed.menu
		return nil
	})
	return menu, menu.Open
}

// MenuAction runs an action from the open context menu and closes it.
func (ed *Editor) MenuAction(a MenuAction) error {
	return ed.update(func() error {
		m := ed.menu
		if !m.Open || !m.Has(a) {
			return fmt.Errorf("editor.Editor.MenuAction: %s: %w", a, e.ErrInvalidInput)
		}
		ed.menu = ContextMenu{}
		switch a {
		case ActionPlaceHere:
			_, err := ed.placeArmed(m.Geo)
			return err
		case ActionDelete:
			return ed.deleteIncident(m.Target)
		case ActionRotate:
			return ed.rotateBy(m.Target, 90)
		case ActionFlip:
			return ed.toggleFlip(m.Target)
		case ActionCenterHere:
			st := ed.view.State()
			st.Center = m.Geo
			ed.view.SetState(st)
		}
		return nil
	})
}

// --- keyboard ---

// Key handles a key press named as in the DOM KeyboardEvent.key values.
// Unhandled keys are ignored.
func (ed *Editor) Key(key string) error {
	return ed.update(func() error {
		switch key {
		case "Escape":
			ed.escape()
			return nil
		}
		id := ed.mode.Selected
		if !ed.mode.Is(ModeEditing) || id == "" {
			return nil
		}
		switch key {
		case "Delete", "Backspace":
			return ed.deleteIncident(id)
		case "[":
			return ed.rotateBy(id, -rotateStep)
		case "]":
			return ed.rotateBy(id, rotateStep)
		case "+", "=":
			return ed.scaleBy(id, scaleStep)
		case "-":
			return ed.scaleBy(id, -scaleStep)
		case "f", "F":
			return ed.toggleFlip(id)
		}
		return nil
	})
}

func (ed *Editor) escape() {
	if ed.menu.Open {
		ed.menu = ContextMenu{}
		return
	}
	switch ed.mode.Kind {
	case ModeDrawing:
		ed.leaveDrawing()
	case ModeToolArmed:
		ed.disarm()
	case ModeEditing:
		ed.endDrag()
		_ = ed.placement.Select("")
		ed.setMode(Idle())
	}
}

// --- incident operations ---

func (ed *Editor) Place(t symbols.Type, pos domain.LatLng) (domain.Incident, error) {
	var inc domain.Incident
	err := ed.update(func() error {
		var err error
		inc, err = ed.placement.Place(t, pos)
		return err
	})
	return inc, err
}

func (ed *Editor) Update(id string, p Patch) (domain.Incident, error) {
	var inc domain.Incident
	err := ed.update(func() error {
		var err error
		inc, err = ed.placement.Update(id, p)
		return err
	})
	return inc, err
}

// Delete removes an incident; deleting the selected one returns the editor
// to idle.
func (ed *Editor) Delete(id string) error {
	return ed.update(func() error {
		return ed.deleteIncident(id)
	})
}

// Select selects id, or clears the selection when id is empty.
func (ed *Editor) Select(id string) error {
	return ed.update(func() error {
		if err := ed.placement.Select(id); err != nil {
			return err
		}
		if id == "" {
			if ed.mode.Is(ModeEditing) {
				ed.setMode(Idle())
			}
			return nil
		}
		ed.leaveDrawing()
		ed.toolbar.Disarm()
		ed.setMode(Editing(id))
		return nil
	})
}

// CloseEditPanel is the explicit close of the incident editor panel.
func (ed *Editor) CloseEditPanel() {
	_ = ed.Select("")
}

func (ed *Editor) DeleteLine(id string) error {
	return ed.update(func() error {
		if !ed.doc.RemoveLine(id) {
			return fmt.Errorf("editor.Editor.DeleteLine: %q: %w", id, e.ErrNotFound)
		}
		return nil
	})
}

func (ed *Editor) deleteIncident(id string) error {
	if err := ed.placement.Delete(id); err != nil {
		return err
	}
	if ed.dragging == id {
		ed.endDrag()
	}
	if ed.mode.Is(ModeEditing) && ed.mode.Selected == id {
		ed.setMode(Idle())
	}
	return nil
}

func (ed *Editor) rotateBy(id string, delta int) error {
	inc, ok := ed.doc.Incident(id)
	if !ok {
		return fmt.Errorf("editor.Editor.rotate: %q: %w", id, e.ErrNotFound)
	}
	r := inc.Rotation + delta
	_, err := ed.placement.Update(id, Patch{Rotation: &r})
	return err
}

func (ed *Editor) scaleBy(id string, delta float64) error {
	inc, ok := ed.doc.Incident(id)
	if !ok {
		return fmt.Errorf("editor.Editor.scale: %q: %w", id, e.ErrNotFound)
	}
	s := inc.Scale + delta
	_, err := ed.placement.Update(id, Patch{Scale: &s})
	return err
}

func (ed *Editor) toggleFlip(id string) error {
	inc, ok := ed.doc.Incident(id)
	if !ok {
		return fmt.Errorf("editor.Editor.flip: %q: %w", id, e.ErrNotFound)
	}
	f := !inc.Flipped
	_, err := ed.placement.Update(id, Patch{Flipped: &f})
	return err
}

// --- sketch details and persistence ---

func (ed *Editor) SetDetails(title string, description *string, public bool) {
	_ = ed.update(func() error {
		s := ed.doc.sketch
		s.Title = title
		if description != nil {
			d := *description
			s.Description = &d
		} else {
			s.Description = nil
		}
		s.IsPublic = public
		return nil
	})
}

// Save persists the sketch: the first save creates the record, later saves
// update it in place. Concurrent calls are queued, so the second one sees
// the id assigned by the first. On failure nothing in memory changes.
func (ed *Editor) Save(ctx context.Context) (uuid.UUID, error) {
	ed.saveMu.Lock()
	defer ed.saveMu.Unlock()

	ed.mu.Lock()
	snap := ed.doc.Snapshot()
	snap.Metadata = ed.captureMetadata(snap.Metadata)
	gen := ed.doc.Generation()
	ed.mu.Unlock()

	if err := ValidateForSave(snap); err != nil {
		ed.logger.Debug("save rejected", slog.Any("error", err))
		return uuid.Nil, err
	}

	id, err := ed.persist.Save(ctx, snap)
	if err != nil {
		ed.logger.Warn("save failed", slog.Any("error", err))
		return uuid.Nil, err
	}

	_ = ed.update(func() error {
		if ed.doc.Generation() != gen {
			return nil
		}
		if ed.doc.sketch.ID == nil {
			assigned := id
			ed.doc.sketch.ID = &assigned
		}
		ed.doc.sketch.Metadata = snap.Metadata
		return nil
	})
	return id, nil
}

func (ed *Editor) captureMetadata(m domain.Metadata) domain.Metadata {
	st := ed.view.State()
	center := st.Center
	zoom := st.Zoom
	m.MapCenter = &center
	m.Zoom = &zoom
	m.CurrentLayer = st.Layer
	return m
}

// Load replaces the whole in-memory sketch with the stored one. Any capture,
// selection or armed tool is dropped. On failure nothing changes.
func (ed *Editor) Load(ctx context.Context, id uuid.UUID) error {
	s, err := ed.persist.Load(ctx, id)
	if err != nil {
		ed.logger.Warn("load failed", slog.String("id", id.String()), slog.Any("error", err))
		return err
	}
	return ed.update(func() error {
		ed.resetInteraction()
		ed.doc.Replace(s)
		ed.restoreView(s.Metadata)
		return nil
	})
}

func (ed *Editor) restoreView(m domain.Metadata) {
	if m.MapCenter == nil && m.Zoom == nil && m.CurrentLayer == "" {
		return
	}
	st := ed.view.State()
	if m.MapCenter != nil {
		st.Center = *m.MapCenter
	}
	if m.Zoom != nil {
		st.Zoom = *m.Zoom
	}
	if m.CurrentLayer != "" {
		st.Layer = m.CurrentLayer
	}
	ed.view.SetState(st)
}

func (ed *Editor) List(ctx context.Context, page, limit int) ([]domain.SketchSummary, int64, error) {
	return ed.persist.List(ctx, page, limit)
}

// DeleteStored removes a stored sketch. The in-memory sketch is untouched
// even when it is the one deleted; call Reset to clear it.
func (ed *Editor) DeleteStored(ctx context.Context, id uuid.UUID) error {
	return ed.persist.Delete(ctx, id)
}

// Reset starts a new unsaved sketch.
func (ed *Editor) Reset() {
	_ = ed.update(func() error {
		ed.resetInteraction()
		ed.doc.Replace(nil)
		return nil
	})
}

// Close ends the session's interaction: an open capture or selection is
// discarded, never persisted, and the map gets its gestures back.
func (ed *Editor) Close() {
	_ = ed.update(func() error {
		ed.resetInteraction()
		return nil
	})
	ed.clearSearch()
}

func (ed *Editor) resetInteraction() {
	if ed.capture.Capturing() {
		ed.capture.Discard()
	}
	ed.dragging = ""
	ed.menu = ContextMenu{}
	ed.toolbar.Disarm()
	_ = ed.placement.Select("")
	ed.gestures.ResumeAll()
	ed.setMode(Idle())
}

// --- export ---

// SetChromeVisible implements export.Chrome. Hidden chrome also hides the
// selection highlight and the context menu.
func (ed *Editor) SetChromeVisible(visible bool) {
	_ = ed.update(func() error {
		ed.chromeVisible = visible
		return nil
	})
}

func (ed *Editor) ChromeVisible() bool {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.chromeVisible
}

// Scene is the current picture for rasterizing.
func (ed *Editor) Scene() export.Scene {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	sel := ""
	if ed.chromeVisible {
		sel, _ = ed.placement.Selected()
	}
	return export.Scene{
		Sketch:   ed.doc.Snapshot(),
		View:     ed.view.State().Viewport(),
		Selected: sel,
	}
}

// ExportImage rasterizes the current sketch with r, hiding editor chrome for
// the duration of the capture.
func (ed *Editor) ExportImage(ctx context.Context, r *export.Renderer) (export.File, error) {
	x := export.NewExporter(export.SceneSurface{Renderer: r, Scene: ed.Scene}, ed)
	return x.Export(ctx)
}

// TitleOK reports whether the sketch could be saved as is.
func (ed *Editor) TitleOK() bool {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return strings.TrimSpace(ed.doc.sketch.Title) != ""
}
