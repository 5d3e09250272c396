// Package value implements the type-erased Value cell produced by every
// value parser: a discriminated union over the primitive payloads a switch
// argument can carry, plus an opaque slot for user-defined parser results.
package value

import (
	"fmt"
	"strconv"
)

// Kind discriminates the payload carried by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindList
	KindUser
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// Value is the heterogeneous cell produced by a value parser. The zero
// Value is a string holding "".
type Value struct {
	kind Kind
	str  string
	i64  int64
	u64  uint64
	f64  float64
	b    bool
	list []Value
	user any
}

// Kind reports the payload tag.
func (v Value) Kind() Kind { return v.kind }

// FromString builds a string-tagged Value.
func FromString(s string) Value { return Value{kind: KindString, str: s} }

// FromInt64 builds a signed-64 Value.
func FromInt64(i int64) Value { return Value{kind: KindInt64, i64: i} }

// FromUint64 builds an unsigned-64 Value.
func FromUint64(u uint64) Value { return Value{kind: KindUint64, u64: u} }

// FromFloat64 builds a floating-point Value.
func FromFloat64(f float64) Value { return Value{kind: KindFloat64, f64: f} }

// FromBool builds a boolean Value.
func FromBool(b bool) Value { return Value{kind: KindBool, b: b} }

// FromList builds a list Value from already-parsed elements.
func FromList(elems []Value) Value {
	owned := make([]Value, len(elems))
	copy(owned, elems)
	return Value{kind: KindList, list: owned}
}

// FromUser wraps an arbitrary user-defined-parser result.
func FromUser(u any) Value { return Value{kind: KindUser, user: u} }

// AsString performs the documented lossy conversions to string: native for
// KindString, decimal rendering for the numeric kinds, "true"/"false" for
// KindBool. Lists and user values report ok=false.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindInt64:
		return strconv.FormatInt(v.i64, 10), true
	case KindUint64:
		return strconv.FormatUint(v.u64, 10), true
	case KindFloat64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

// AsInt64 returns the signed-64 payload, converting from KindBool (1/0) and
// KindUint64 (direct reinterpretation, per the documented integer<->integer
// conversion) where that makes sense.
func (v Value) AsInt64() (int64, bool) {
	switch v.kind {
	case KindInt64:
		return v.i64, true
	case KindUint64:
		return int64(v.u64), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsUint64 returns the unsigned-64 payload directly when the tag is
// KindUint64, rather than routing through the signed extractor and
// reinterpreting the bit pattern.
func (v Value) AsUint64() (uint64, bool) {
	switch v.kind {
	case KindUint64:
		return v.u64, true
	case KindInt64:
		return uint64(v.i64), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsFloat64 returns the floating-point payload, converting from the integer
// kinds per the documented integer->floating-point conversion.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindFloat64:
		return v.f64, true
	case KindInt64:
		return float64(v.i64), true
	case KindUint64:
		return float64(v.u64), true
	default:
		return 0, false
	}
}

// AsBool returns the boolean payload, converting from the integer kinds
// (nonzero is true) per the documented integer<->boolean conversion.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindInt64:
		return v.i64 != 0, true
	case KindUint64:
		return v.u64 != 0, true
	default:
		return false, false
	}
}

// AsList returns the list payload.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsUser returns the opaque user payload.
func (v Value) AsUser() (any, bool) {
	if v.kind != KindUser {
		return nil, false
	}
	return v.user, true
}

// String renders the Value for diagnostics and documentation generation.
func (v Value) String() string {
	switch v.kind {
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return fmt.Sprintf("%v", parts)
	case KindUser:
		return fmt.Sprintf("%v", v.user)
	default:
		s, _ := v.AsString()
		return s
	}
}
