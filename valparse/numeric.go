package valparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
)

// cIntegerLiteral matches a C-base signed integer literal: optional sign,
// then hex (0x…), binary (0b…), octal (0…), or decimal digits. strconv's
// base-0, strtoll-like parsing accepts exactly this shape.
var cIntegerLiteral = regexp.MustCompile(`^[+-]?(0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+|0[0-7]+|[0-9]+)`)

// cUnsignedLiteral is cIntegerLiteral without a leading sign.
var cUnsignedLiteral = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+|0[0-7]+|[0-9]+)`)

var realLiteral = regexp.MustCompile(`^[+-]?(\d+\.\d*([eE][+-]?\d+)?|\.\d+([eE][+-]?\d+)?|\d+[eE][+-]?\d+|\d+)`)

// Integer matches an optionally-signed integer in any C base and produces a
// signed-64 value.Value. When bound to a saver for a narrower destination
// type (via Bind), it range-checks against that destination's width at
// match time rather than waiting for Apply.
type Integer struct {
	bits   int
	saver  value.Saver
	ranged value.Ranged
}

// NewInteger constructs an Integer parser with a default 64-bit range.
func NewInteger() *Integer {
	return &Integer{bits: 64}
}

// Bind attaches a destination; Integer then range-checks against its
// width. It does not write the destination: Apply writes only through a
// switch's own SaveTo binding.
func (p *Integer) Bind(dest any) *Integer {
	saver := value.MustSaver(dest)
	p.saver = saver
	if r, ok := saver.(value.Ranged); ok {
		p.ranged = r
		p.bits = r.Bits()
	}
	return p
}

// Saver returns the bound destination saver, if any.
func (p *Integer) Saver() value.Saver { return p.saver }

// ParseCString implements CStringParser.
func (p *Integer) ParseCString(s string) (value.Value, int, error) {
	tok := cIntegerLiteral.FindString(s)
	if tok == "" {
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "integer expected")
	}
	bits := p.bits
	if bits == 0 {
		bits = 64
	}
	i, err := strconv.ParseInt(tok, 0, bits)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return value.Value{}, 0, sawyererr.New(sawyererr.KindRange, "%q out of range for a %d-bit signed integer (limit %d)", tok, bits, maxSigned(bits))
		}
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "integer expected")
	}
	return value.FromInt64(i), len(tok), nil
}

// Parse implements Parser.
func (p *Integer) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(p).Parse(cur)
}

// UnsignedInteger matches an unsigned integer in any C base and produces an
// unsigned-64 value.Value, with the same narrow-destination range checking
// as Integer.
type UnsignedInteger struct {
	bits  int
	saver value.Saver
}

// NewUnsignedInteger constructs an UnsignedInteger parser with a default
// 64-bit range.
func NewUnsignedInteger() *UnsignedInteger {
	return &UnsignedInteger{bits: 64}
}

// Bind attaches a destination; see Integer.Bind.
func (p *UnsignedInteger) Bind(dest any) *UnsignedInteger {
	saver := value.MustSaver(dest)
	p.saver = saver
	if r, ok := saver.(value.Ranged); ok {
		p.bits = r.Bits()
	}
	return p
}

// Saver returns the bound destination saver, if any.
func (p *UnsignedInteger) Saver() value.Saver { return p.saver }

// ParseCString implements CStringParser.
func (p *UnsignedInteger) ParseCString(s string) (value.Value, int, error) {
	tok := cUnsignedLiteral.FindString(s)
	if tok == "" {
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "unsigned integer expected")
	}
	bits := p.bits
	if bits == 0 {
		bits = 64
	}
	u, err := strconv.ParseUint(tok, 0, bits)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return value.Value{}, 0, sawyererr.New(sawyererr.KindRange, "%q out of range for a %d-bit unsigned integer (limit %d)", tok, bits, maxUnsigned(bits))
		}
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "unsigned integer expected")
	}
	return value.FromUint64(u), len(tok), nil
}

// Parse implements Parser.
func (p *UnsignedInteger) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(p).Parse(cur)
}

// NonNegativeInteger is Integer restricted to values >= 0. It shares
// Integer's signed-64 payload and range-checking machinery, adding only
// the sign restriction.
type NonNegativeInteger struct {
	inner *Integer
}

// NewNonNegativeInteger constructs a NonNegativeInteger parser.
func NewNonNegativeInteger() *NonNegativeInteger {
	return &NonNegativeInteger{inner: NewInteger()}
}

// Bind attaches a destination; see Integer.Bind.
func (p *NonNegativeInteger) Bind(dest any) *NonNegativeInteger {
	p.inner.Bind(dest)
	return p
}

// Saver returns the bound destination saver, if any.
func (p *NonNegativeInteger) Saver() value.Saver { return p.inner.Saver() }

// ParseCString implements CStringParser.
func (p *NonNegativeInteger) ParseCString(s string) (value.Value, int, error) {
	if strings.HasPrefix(s, "-") {
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "non-negative integer expected")
	}
	return p.inner.ParseCString(s)
}

// Parse implements Parser.
func (p *NonNegativeInteger) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(p).Parse(cur)
}

// RealNumber matches a floating-point literal and produces a KindFloat64
// Value.
type RealNumber struct {
	bits  int
	saver value.Saver
}

// NewRealNumber constructs a RealNumber parser with double precision.
func NewRealNumber() *RealNumber {
	return &RealNumber{bits: 64}
}

// Bind attaches a float32 or float64 destination.
func (p *RealNumber) Bind(dest any) *RealNumber {
	saver := value.MustSaver(dest)
	p.saver = saver
	if r, ok := saver.(value.Ranged); ok && r.Bits() != 0 {
		p.bits = r.Bits()
	}
	return p
}

// Saver returns the bound destination saver, if any.
func (p *RealNumber) Saver() value.Saver { return p.saver }

// ParseCString implements CStringParser.
func (p *RealNumber) ParseCString(s string) (value.Value, int, error) {
	tok := realLiteral.FindString(s)
	if tok == "" {
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "real number expected")
	}
	bits := p.bits
	if bits == 0 {
		bits = 64
	}
	f, err := strconv.ParseFloat(tok, bits)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return value.Value{}, 0, sawyererr.New(sawyererr.KindRange, "%q out of range for a %d-bit real number", tok, bits)
		}
		return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "real number expected")
	}
	return value.FromFloat64(f), len(tok), nil
}

// Parse implements Parser.
func (p *RealNumber) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(p).Parse(cur)
}

func maxSigned(bits int) int64 {
	if bits >= 64 {
		return math.MaxInt64
	}
	return int64(1)<<(uint(bits)-1) - 1
}

func maxUnsigned(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return uint64(1)<<uint(bits) - 1
}
