// Package cursor implements the mutable position abstraction the rest of
// Sawyer parses against: a cursor over an ordered sequence of program
// arguments, with excursion-guarded save/restore for backtracking.
package cursor

import "fmt"

// Location identifies a character position within the input sequence: Idx
// selects one of the input strings, Offset is the byte index within it.
//
// A non-Nowhere Location always points either to a valid byte within some
// input string, or to the one-past-end boundary of that string (Offset ==
// len(string)) — never beyond it. Cursor.Consume keeps to this: a step that
// would pass the end of a string moves on to the start of the next one.
type Location struct {
	Idx    int
	Offset int
}

// Nowhere is the distinguished "no source position" Location. It compares
// unequal to every real Location produced during parsing.
var Nowhere = Location{Idx: -1}

// IsNowhere reports whether l carries no source position.
func (l Location) IsNowhere() bool {
	return l.Idx < 0
}

// String renders the location for diagnostics.
func (l Location) String() string {
	if l.IsNowhere() {
		return "<nowhere>"
	}
	return fmt.Sprintf("%d:%d", l.Idx, l.Offset)
}

// Less reports whether l occurs strictly before other in left-to-right
// command-line order. Nowhere sorts after every real location, as if its
// index were +Inf.
func (l Location) Less(other Location) bool {
	li, oi := l.Idx, other.Idx
	if l.IsNowhere() {
		li = int(^uint(0) >> 1)
	}
	if other.IsNowhere() {
		oi = int(^uint(0) >> 1)
	}
	if li != oi {
		return li < oi
	}
	return l.Offset < other.Offset
}
