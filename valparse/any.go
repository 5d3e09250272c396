package valparse

import (
	"errors"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/value"
)

// Any matches the entire remainder of the current argument as a string.
// It never fails unless the cursor is already at the end of input.
type Any struct{}

// NewAny constructs an Any parser.
func NewAny() Any { return Any{} }

// Parse implements Parser.
func (Any) Parse(cur *cursor.Cursor) (value.Value, error) {
	rem, err := cur.Remainder()
	if err != nil {
		return value.Value{}, errors.New("valparse: Any: no argument to match")
	}
	if err := cur.Consume(len(rem)); err != nil {
		return value.Value{}, err
	}
	return value.FromString(rem), nil
}
