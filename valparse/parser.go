// Package valparse implements the value-parser family: polymorphic
// matchers that consume text at a Cursor and produce a typed value.Value,
// including the recursive List combinator.
package valparse

import (
	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/value"
)

// Parser consumes a prefix of the cursor's remainder and returns the typed
// value it matched, or fails without advancing the cursor. Implementations
// must not leave the cursor partway advanced on failure; use
// cursor.Excursion to guarantee that.
type Parser interface {
	Parse(cur *cursor.Cursor) (value.Value, error)
}

// CStringParser is the C-string-oriented capability: parsers that are
// naturally expressed over a plain string (regex/strconv work) implement
// this instead of Parser directly. ParseCString returns the value and the
// number of bytes of s it consumed.
type CStringParser interface {
	ParseCString(s string) (v value.Value, consumed int, err error)
}

// Func adapts a plain function to the Parser interface, for any callable
// honoring the contract.
type Func func(cur *cursor.Cursor) (value.Value, error)

// Parse implements Parser.
func (f Func) Parse(cur *cursor.Cursor) (value.Value, error) {
	return f(cur)
}

// bridge adapts a CStringParser to the full Cursor-based Parser contract,
// the default bridge between the two capabilities.
type bridge struct {
	inner CStringParser
}

// AsParser wraps a CStringParser so it can be used wherever a Parser is
// expected.
func AsParser(p CStringParser) Parser {
	return bridge{inner: p}
}

func (b bridge) Parse(cur *cursor.Cursor) (value.Value, error) {
	rem, err := cur.Remainder()
	if err != nil {
		return value.Value{}, err
	}
	v, n, err := b.inner.ParseCString(rem)
	if err != nil {
		return value.Value{}, err
	}
	if err := cur.Consume(n); err != nil {
		return value.Value{}, err
	}
	return v, nil
}

// cstringBridge adapts a full Parser to the CStringParser capability by
// running it over a synthetic single-argument Cursor. Used internally by
// the List combinator, which needs to bound a member parser's scan to a
// pre-computed sub-range regardless of which capability the member parser
// natively implements.
type cstringBridge struct {
	inner Parser
}

// AsCStringParser wraps a Parser so it can be invoked against a plain
// string, as the List combinator needs to do for each member within its
// computed sub-range.
func AsCStringParser(p Parser) CStringParser {
	if cp, ok := p.(CStringParser); ok {
		return cp
	}
	return cstringBridge{inner: p}
}

func (b cstringBridge) ParseCString(s string) (value.Value, int, error) {
	sub := cursor.New([]string{s})
	v, err := b.inner.Parse(sub)
	if err != nil {
		return value.Value{}, 0, err
	}
	return v, sub.LinearDistance(), nil
}
