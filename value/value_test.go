package value_test

import (
	"testing"

	"github.com/sawyer-cli/sawyer/value"
)

func TestAsUint64ReturnsUnsignedPayloadDirectly(t *testing.T) {
	v := value.FromUint64(18446744073709551615) // math.MaxUint64
	u, ok := v.AsUint64()
	if !ok || u != 18446744073709551615 {
		t.Fatalf("AsUint64() = (%d, %v), want (18446744073709551615, true)", u, ok)
	}
}

func TestAsUint64FromSignedReinterprets(t *testing.T) {
	v := value.FromInt64(-1)
	u, ok := v.AsUint64()
	if !ok || u != 18446744073709551615 {
		t.Fatalf("AsUint64() of -1 = (%d, %v), want max uint64", u, ok)
	}
}

func TestLossyConversions(t *testing.T) {
	i := value.FromInt64(7)
	if s, ok := i.AsString(); !ok || s != "7" {
		t.Fatalf("int->string = (%q, %v)", s, ok)
	}
	if b, ok := i.AsBool(); !ok || !b {
		t.Fatalf("nonzero int->bool = (%v, %v), want true", b, ok)
	}
	if f, ok := i.AsFloat64(); !ok || f != 7.0 {
		t.Fatalf("int->float64 = (%v, %v)", f, ok)
	}

	zero := value.FromInt64(0)
	if b, ok := zero.AsBool(); !ok || b {
		t.Fatalf("zero int->bool = (%v, %v), want false", b, ok)
	}
}

func TestSaverRangeCheckOverflow(t *testing.T) {
	var dest int8
	saver := value.MustSaver(&dest)
	ranged, ok := saver.(value.Ranged)
	if !ok || ranged.Bits() != 8 || !ranged.Signed() {
		t.Fatalf("expected Ranged{8,true}, got %#v", ranged)
	}
	if err := saver.Save(value.FromInt64(200)); err == nil {
		t.Fatalf("expected overflow error saving 200 into int8")
	}
	if err := saver.Save(value.FromInt64(100)); err != nil {
		t.Fatalf("Save(100) into int8: %v", err)
	}
	if dest != 100 {
		t.Fatalf("dest = %d, want 100", dest)
	}
}

func TestAppendSaverAccumulates(t *testing.T) {
	var dest []string
	saver := value.MustSaver(&dest)
	for _, s := range []string{"a", "b", "c"} {
		if err := saver.Save(value.FromString(s)); err != nil {
			t.Fatalf("Save(%q): %v", s, err)
		}
	}
	if len(dest) != 3 || dest[0] != "a" || dest[2] != "c" {
		t.Fatalf("dest = %v", dest)
	}
}
