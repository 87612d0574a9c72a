package editor

import (
	"fmt"

	"roadsketch/internal/symbols"
)

type ModeKind int

const (
	ModeIdle ModeKind = iota
	ModeToolArmed
	ModeDrawing
	ModeEditing
)

func (k ModeKind) String() string {
	switch k {
	case ModeIdle:
		return "idle"
	case ModeToolArmed:
		return "tool_armed"
	case ModeDrawing:
		return "drawing"
	case ModeEditing:
		return "editing"
	default:
		return fmt.Sprintf("mode(%d)", int(k))
	}
}

// Mode is the single interaction state of the editor. Tool is set only in
// ModeToolArmed and Selected only in ModeEditing.
type Mode struct {
	Kind     ModeKind
	Tool     symbols.Type
	Selected string
}

func Idle() Mode { return Mode{Kind: ModeIdle} }

func ToolArmed(t symbols.Type) Mode { return Mode{Kind: ModeToolArmed, Tool: t} }

func Drawing() Mode { return Mode{Kind: ModeDrawing} }

func Editing(id string) Mode { return Mode{Kind: ModeEditing, Selected: id} }

func (m Mode) Is(k ModeKind) bool { return m.Kind == k }

func (m Mode) String() string {
	switch m.Kind {
	case ModeToolArmed:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Tool)
	case ModeEditing:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Selected)
	default:
		return m.Kind.String()
	}
}
