package value

import (
	"fmt"
	"reflect"
)

// Saver is a deferred callback that writes a parsed Value into caller
// supplied storage. Savers are invoked only during a Parser Result's Apply
// phase, so constructing a result stays side-effect-free.
type Saver interface {
	Save(v Value) error
}

// Ranged is implemented by Savers bound to a fixed-width numeric
// destination. Numeric value parsers consult it during matching (not just
// at apply time) so that range violations surface as a RangeError at
// parse time, before any value is actually written.
type Ranged interface {
	Bits() int
	Signed() bool
}

// reflectSaver writes through a reflect.Value obtained from a pointer
// destination. This mirrors the reflect-based target binding used by the
// args-parsing reference in the corpus (Param.target / reflValue): the
// caller hands over a plain `*T`, and the library inspects its Kind to
// decide both how to store the value and, for integers, what width to
// range-check against.
type reflectSaver struct {
	rv reflect.Value
}

// NewSaver builds a Saver over dest, which must be a non-nil pointer to one
// of: string, bool, any signed or unsigned integer type, float32/float64,
// or []T for one of the preceding element types (vector-append variant).
func NewSaver(dest any) (Saver, error) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, fmt.Errorf("value: destination must be a non-nil pointer, got %T", dest)
	}
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &reflectSaver{rv: elem}, nil
	case reflect.Slice:
		return &appendSaver{rv: elem}, nil
	default:
		return nil, fmt.Errorf("value: unsupported destination kind %s", elem.Kind())
	}
}

// MustSaver is NewSaver for call sites that treat a bad destination type as
// a programmer error (mirrors the panicking Def() in the args reference).
func MustSaver(dest any) Saver {
	s, err := NewSaver(dest)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *reflectSaver) Bits() int {
	switch s.rv.Kind() {
	case reflect.Int, reflect.Uint:
		return 64
	default:
		if isNumericKind(s.rv.Kind()) {
			return s.rv.Type().Bits()
		}
		return 0
	}
}

func (s *reflectSaver) Signed() bool {
	switch s.rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func (s *reflectSaver) Save(v Value) error {
	switch s.rv.Kind() {
	case reflect.String:
		str, ok := v.AsString()
		if !ok {
			return fmt.Errorf("value: cannot save %s as string", v.Kind())
		}
		s.rv.SetString(str)
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return fmt.Errorf("value: cannot save %s as bool", v.Kind())
		}
		s.rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := v.AsInt64()
		if !ok {
			return fmt.Errorf("value: cannot save %s as integer", v.Kind())
		}
		if s.rv.OverflowInt(i) {
			return fmt.Errorf("value: %d overflows %s", i, s.rv.Type())
		}
		s.rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := v.AsUint64()
		if !ok {
			return fmt.Errorf("value: cannot save %s as unsigned integer", v.Kind())
		}
		if s.rv.OverflowUint(u) {
			return fmt.Errorf("value: %d overflows %s", u, s.rv.Type())
		}
		s.rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, ok := v.AsFloat64()
		if !ok {
			return fmt.Errorf("value: cannot save %s as float", v.Kind())
		}
		s.rv.SetFloat(f)
	default:
		return fmt.Errorf("value: unsupported destination kind %s", s.rv.Kind())
	}
	return nil
}

// appendSaver is the vector-append variant: each Save call appends one
// element to the destination slice rather than overwriting it.
type appendSaver struct {
	rv reflect.Value
}

func (s *appendSaver) Bits() int {
	elem := s.rv.Type().Elem()
	switch elem.Kind() {
	case reflect.Int, reflect.Uint:
		return 64
	default:
		if isNumericKind(elem.Kind()) {
			return elem.Bits()
		}
		return 0
	}
}

func (s *appendSaver) Signed() bool {
	switch s.rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func (s *appendSaver) Save(v Value) error {
	elemKind := s.rv.Type().Elem().Kind()
	elemVal := reflect.New(s.rv.Type().Elem()).Elem()
	single := &reflectSaver{rv: elemVal}
	if elemKind == reflect.Slice {
		return fmt.Errorf("value: nested slice destinations are not supported")
	}
	if err := single.Save(v); err != nil {
		return err
	}
	s.rv.Set(reflect.Append(s.rv, elemVal))
	return nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
