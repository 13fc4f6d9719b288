package shape

import (
	"maps"

	"golang.org/x/text/cases"
)

// foldKey normalises key names so that "W" (with shift held) and "w"
// refer to the same key. A Caser keeps state, so one is made per call.
func foldKey(name string) string {
	return cases.Fold().String(name)
}

// KeyState records which named keys are held down.
type KeyState map[string]bool

// Set records key as pressed (down) or released. Set must not be called
// on a nil KeyState.
func (k KeyState) Set(key string, down bool) {
	if down {
		k[foldKey(key)] = true
		return
	}
	delete(k, foldKey(key))
}

// Down reports whether key is held. Unknown keys are up.
func (k KeyState) Down(key string) bool {
	return k[foldKey(key)]
}

// Input is a snapshot of the user input for one tick, supplied by the
// host loop. Queries that depend on input take it explicitly.
type Input struct {
	// Pointer is the pointer position in surface coordinates.
	Pointer Point

	// Clicked is set when the primary button was pressed during the tick.
	Clicked bool

	// Keys holds the keys down during the tick.
	Keys KeyState
}

// NewInput creates a snapshot with the pointer at p and no keys held.
func NewInput(p Point) Input {
	return Input{Pointer: p, Keys: KeyState{}}
}

// Pressed reports whether key is held in this snapshot.
func (in Input) Pressed(key string) bool {
	return in.Keys.Down(key)
}

// Clone returns a snapshot that shares no key state with in.
func (in Input) Clone() Input {
	out := in
	out.Keys = maps.Clone(in.Keys)
	if out.Keys == nil {
		out.Keys = KeyState{}
	}
	return out
}
