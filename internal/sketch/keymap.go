package sketch

import "unicode"

// Action is a session command reachable from a keyboard shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionClear
	ActionEraser
	ActionPen
	ActionSave
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionUndo:   "undo",
	ActionClear:  "clear",
	ActionEraser: "eraser",
	ActionPen:    "pen",
	ActionSave:   "save",
}

func (a Action) String() string { return actionNames[a] }

// Keymap maps single characters to actions, ignoring case.
type Keymap map[rune]Action

// DefaultKeymap is z undo, c clear, e eraser, p pen, s save.
func DefaultKeymap() Keymap {
	return Keymap{
		'z': ActionUndo,
		'c': ActionClear,
		'e': ActionEraser,
		'p': ActionPen,
		's': ActionSave,
	}
}

// Lookup returns the action bound to r, or ActionNone.
func (k Keymap) Lookup(r rune) Action {
	if a, ok := k[unicode.ToLower(r)]; ok {
		return a
	}
	return ActionNone
}
