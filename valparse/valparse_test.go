package valparse_test

import (
	"regexp"
	"testing"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/valparse"
)

func TestAnyMatchesEntireRemainder(t *testing.T) {
	cur := cursor.New([]string{"hello world"})
	v, err := valparse.NewAny().Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s, _ := v.AsString(); s != "hello world" {
		t.Fatalf("got %q", s)
	}
	if !cur.AtEnd() && cur.Location().Offset != len("hello world") {
		t.Fatalf("expected cursor consumed to end, at %v", cur.Location())
	}
}

func TestIntegerParsesCBase(t *testing.T) {
	cases := map[string]int64{"42": 42, "-7": -7, "0x2A": 42, "0b101": 5, "010": 8}
	for lit, want := range cases {
		cur := cursor.New([]string{lit})
		v, err := valparse.NewInteger().Parse(cur)
		if err != nil {
			t.Fatalf("Parse(%q): %v", lit, err)
		}
		if got, _ := v.AsInt64(); got != want {
			t.Fatalf("Parse(%q) = %d, want %d", lit, got, want)
		}
	}
}

func TestIntegerBoundToNarrowDestinationRangeErrors(t *testing.T) {
	var dest uint32
	p := valparse.NewUnsignedInteger().Bind(&dest)
	cur := cursor.New([]string{"5000000000"})
	_, err := p.Parse(cur)
	if err == nil {
		t.Fatalf("expected a RangeError")
	}
	se, ok := err.(*sawyererr.Error)
	if !ok || se.Kind != sawyererr.KindRange {
		t.Fatalf("expected KindRange, got %v", err)
	}
	if got := se.Error(); !contains(got, "4294967295") {
		t.Fatalf("expected message to name the limit 4294967295, got %q", got)
	}
}

func TestNonNegativeIntegerRejectsSign(t *testing.T) {
	cur := cursor.New([]string{"-1"})
	_, err := valparse.NewNonNegativeInteger().Parse(cur)
	if err == nil {
		t.Fatalf("expected failure on negative literal")
	}
}

func TestRealNumberParsesLiteral(t *testing.T) {
	cur := cursor.New([]string{"3.14159"})
	v, err := valparse.NewRealNumber().Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f, _ := v.AsFloat64(); f != 3.14159 {
		t.Fatalf("got %v", f)
	}
}

func TestBooleanLongestMatchFirst(t *testing.T) {
	cur := cursor.New([]string{"true"})
	v, err := valparse.NewBoolean().Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b, _ := v.AsBool(); !b {
		t.Fatalf("expected true")
	}
	if !cur.AtEnd() {
		// remainder must be fully consumed ("true" is 4 chars)
		if rem, _ := cur.Remainder(); rem != "" {
			t.Fatalf("expected full consumption of 'true', remainder %q", rem)
		}
	}
}

func TestBooleanCaseInsensitive(t *testing.T) {
	cur := cursor.New([]string{"YES"})
	v, err := valparse.NewBoolean().Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b, _ := v.AsBool(); !b {
		t.Fatalf("expected true for YES")
	}
}

func TestStringSetRejectsUnknownWord(t *testing.T) {
	cur := cursor.New([]string{"purple"})
	_, err := valparse.NewStringSet("never", "auto", "always").Parse(cur)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	if !contains(err.Error(), "specific word expected") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestEnumMapsToTag(t *testing.T) {
	type When int
	const (
		Never When = iota
		Auto
		Always
	)
	e := valparse.NewEnum(map[string]When{"never": Never, "auto": Auto, "always": Always})
	cur := cursor.New([]string{"always"})
	v, err := e.Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := v.AsUser()
	if !ok || got.(When) != Always {
		t.Fatalf("got %v, ok=%v", got, ok)
	}
}

func TestListParsesCommaSeparated(t *testing.T) {
	comma := regexp.MustCompile(`^,`)
	l := valparse.NewList(valparse.Member{Parser: valparse.NewAny(), Separator: comma})
	cur := cursor.New([]string{"a,b,c"})
	v, err := l.Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elems, ok := v.AsList()
	if !ok || len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %v ok=%v", elems, ok)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got, _ := elems[i].AsString(); got != want {
			t.Fatalf("elems[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestListEnforcesMinMax(t *testing.T) {
	comma := regexp.MustCompile(`^,`)
	l := valparse.NewList(valparse.Member{Parser: valparse.NewAny(), Separator: comma}).MinMax(2, 2)
	cur := cursor.New([]string{"a"})
	if _, err := l.Parse(cur); err == nil {
		t.Fatalf("expected failure: fewer than min elements")
	}
	if cur.Location() != (cursor.Location{Idx: 0, Offset: 0}) {
		t.Fatalf("expected cursor rollback on failed list parse, at %v", cur.Location())
	}
}

func TestListRepeatsLastMemberDescriptor(t *testing.T) {
	comma := regexp.MustCompile(`^,`)
	colon := regexp.MustCompile(`^:`)
	l := valparse.NewList(
		valparse.Member{Parser: valparse.NewAny(), Separator: colon},
		valparse.Member{Parser: valparse.NewAny(), Separator: comma},
	)
	cur := cursor.New([]string{"first:second,third,fourth"})
	v, err := l.Parse(cur)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elems, _ := v.AsList()
	if len(elems) != 4 {
		t.Fatalf("expected 4 elements, got %d (%v)", len(elems), elems)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (func() bool {
		for i := 0; i+len(substr) <= len(s); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	})()
}
