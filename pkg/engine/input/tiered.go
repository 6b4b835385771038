package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Board
	ActionToggle   // Cycle the cell under the cursor
	ActionToggleAt // Cycle the cell at Intent.Row/Col (mouse click)
	ActionReset    // Generate a new puzzle

	// Meta / UI
	ActionHelp
	ActionDump
	ActionScreenshot
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Row and Col are only meaningful for ActionToggleAt.
type Intent struct {
	Action Action
	Row    int
	Col    int
}

// ToggleAt returns an intent that toggles the given cell
func ToggleAt(row, col int) Intent {
	return Intent{Action: ActionToggleAt, Row: row, Col: col}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed checks and terminal raw mode already deliver one
// event per keypress, so this is a pass-through.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Toggle the cell under the cursor
	"space": ActionToggle,
	"enter": ActionToggle,
	"t":     ActionToggle,

	"r": ActionReset,

	"?": ActionHelp,

	// Write the board to a file
	"d":  ActionDump,
	"f9": ActionDump,

	"p": ActionScreenshot,

	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// CodeToIntent runs a code from the given device through every layer.
func CodeToIntent(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionToggle:
		return "Toggle Cell"
	case ActionToggleAt:
		return "Toggle Cell At"
	case ActionReset:
		return "New Puzzle"
	case ActionHelp:
		return "Help"
	case ActionDump:
		return "Dump Board"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help output doesn't shuffle between calls
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
