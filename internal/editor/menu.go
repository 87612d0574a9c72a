package editor

import (
	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"
)

type MenuAction string

const (
	ActionPlaceHere  MenuAction = "place_here"
	ActionDelete     MenuAction = "delete"
	ActionRotate     MenuAction = "rotate"
	ActionFlip       MenuAction = "flip"
	ActionCenterHere MenuAction = "center_here"
)

// ContextMenu is opened by a secondary click. It is anchored at the click's
// screen point and does not change the editor mode.
type ContextMenu struct {
	Open   bool
	Screen geometry.Point
	Geo    domain.LatLng
	// Target is the incident under the click, if any.
	Target  string
	Actions []MenuAction
}

func buildMenu(pt geometry.Point, geo domain.LatLng, target string, toolArmed bool) ContextMenu {
	m := ContextMenu{Open: true, Screen: pt, Geo: geo, Target: target}
	if toolArmed {
		m.Actions = append(m.Actions, ActionPlaceHere)
	}
	if target != "" {
		m.Actions = append(m.Actions, ActionDelete, ActionRotate, ActionFlip)
	}
	m.Actions = append(m.Actions, ActionCenterHere)
	return m
}

func (m ContextMenu) Has(a MenuAction) bool {
	for _, x := range m.Actions {
		if x == a {
			return true
		}
	}
	return false
}
