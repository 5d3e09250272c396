package valparse

import (
	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/value"
)

// Enum is a StringSet whose match is mapped through a user-supplied table
// into an arbitrary tag type, producing a KindUser Value.
type Enum[T any] struct {
	set   *StringSet
	table map[string]T
}

// NewEnum constructs an Enum from a literal->tag table. The candidate set
// presented to StringSet is the table's keys.
func NewEnum[T any](table map[string]T) *Enum[T] {
	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, w)
	}
	return &Enum[T]{set: NewStringSet(words...), table: table}
}

// FoldCase makes matching case-insensitive.
func (p *Enum[T]) FoldCase() *Enum[T] {
	p.set.FoldCase()
	return p
}

// ParseCString implements CStringParser.
func (p *Enum[T]) ParseCString(s string) (value.Value, int, error) {
	v, n, err := p.set.ParseCString(s)
	if err != nil {
		return value.Value{}, 0, err
	}
	matched, _ := v.AsString()
	return value.FromUser(p.table[matched]), n, nil
}

// Parse implements Parser.
func (p *Enum[T]) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(p).Parse(cur)
}
