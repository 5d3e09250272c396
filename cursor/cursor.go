package cursor

import (
	"errors"
	"strings"
)

// ErrAtEnd is returned by operations that require a current input string
// when the cursor has already consumed every argument.
var ErrAtEnd = errors.New("cursor: at end of arguments")

// Cursor is a mutable position within a sequence of program-argument
// strings. It owns its argument slice exclusively: New copies the caller's
// slice, and Replace swaps in a freshly spliced one, so the caller's slice
// is never modified.
type Cursor struct {
	args []string
	loc  Location
}

// New creates a Cursor over a copy of args, positioned at the first
// argument.
func New(args []string) *Cursor {
	owned := make([]string, len(args))
	copy(owned, args)
	return &Cursor{args: owned, loc: Location{Idx: 0, Offset: 0}}
}

// Args returns the current, possibly-spliced, argument sequence. The
// returned slice must not be mutated by the caller.
func (c *Cursor) Args() []string {
	return c.args
}

// Location returns the cursor's current position.
func (c *Cursor) Location() Location {
	return c.loc
}

// SetLocation forcibly repositions the cursor; used by excursion restore.
func (c *Cursor) SetLocation(loc Location) {
	c.loc = loc
}

// AtEnd reports whether every input string has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.loc.Idx >= len(c.args)
}

// AtArgBegin reports whether the cursor sits at the start of its current
// input string (an "argument boundary").
func (c *Cursor) AtArgBegin() bool {
	return !c.AtEnd() && c.loc.Offset == 0
}

// CurrentArg returns the full string at the cursor's current index.
func (c *Cursor) CurrentArg() (string, error) {
	if c.AtEnd() {
		return "", ErrAtEnd
	}
	return c.args[c.loc.Idx], nil
}

// Remainder returns the suffix of the current argument from the cursor's
// offset to its end.
func (c *Cursor) Remainder() (string, error) {
	if c.AtEnd() {
		return "", ErrAtEnd
	}
	return c.args[c.loc.Idx][c.loc.Offset:], nil
}

// Consume advances the cursor by n characters (bytes), wrapping into
// subsequent input strings whenever the current one is exhausted. The
// Location is renormalized after every step: an exact end-of-string offset
// is a valid boundary and is not itself rolled over.
func (c *Cursor) Consume(n int) error {
	if n < 0 {
		return errors.New("cursor: negative consume")
	}
	remaining := n
	for remaining > 0 {
		if c.loc.Idx >= len(c.args) {
			return ErrAtEnd
		}
		avail := len(c.args[c.loc.Idx]) - c.loc.Offset
		if remaining <= avail {
			c.loc.Offset += remaining
			remaining = 0
		} else {
			remaining -= avail
			c.loc.Idx++
			c.loc.Offset = 0
		}
	}
	return nil
}

// ConsumeArg jumps to the start of the next input string regardless of the
// current offset.
func (c *Cursor) ConsumeArg() {
	c.loc = Location{Idx: c.loc.Idx + 1, Offset: 0}
}

// LinearDistance returns the number of characters from the start of the
// current argument to the cursor's current offset. It is used to propagate
// progress made on a temporary sub-cursor (e.g. during list-member parsing)
// back onto the cursor that spawned it.
func (c *Cursor) LinearDistance() int {
	return c.loc.Offset
}

// Substring concatenates the characters between two Locations (inclusive of
// from, exclusive of to), inserting sep at every input-string boundary
// crossed. from must not be after to.
func (c *Cursor) Substring(from, to Location, sep string) (string, error) {
	if from.IsNowhere() || to.IsNowhere() {
		return "", errors.New("cursor: substring of a Nowhere location")
	}
	if to.Less(from) {
		return "", errors.New("cursor: substring range reversed")
	}
	if from.Idx == to.Idx {
		if from.Idx >= len(c.args) {
			return "", nil
		}
		return c.args[from.Idx][from.Offset:to.Offset], nil
	}

	var sb strings.Builder
	sb.WriteString(c.args[from.Idx][from.Offset:])
	for i := from.Idx + 1; i < to.Idx; i++ {
		sb.WriteString(sep)
		sb.WriteString(c.args[i])
	}
	sb.WriteString(sep)
	if to.Idx < len(c.args) {
		sb.WriteString(c.args[to.Idx][:to.Offset])
	}
	return sb.String(), nil
}

// Replace removes the current input string and splices args in its place.
// The cursor is repositioned to the start of the first spliced string (or,
// if args is empty, to the position immediately following the removed
// string).
func (c *Cursor) Replace(args []string) error {
	if c.AtEnd() {
		return ErrAtEnd
	}
	idx := c.loc.Idx
	next := make([]string, 0, len(c.args)-1+len(args))
	next = append(next, c.args[:idx]...)
	next = append(next, args...)
	next = append(next, c.args[idx+1:]...)
	c.args = next
	c.loc = Location{Idx: idx, Offset: 0}
	return nil
}
