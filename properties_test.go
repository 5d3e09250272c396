package sawyer_test

import (
	"reflect"
	"testing"

	"github.com/sawyer-cli/sawyer"
)

func TestComposeOverInheritsOuterPrefixesFirst(t *testing.T) {
	parser := sawyer.DefaultParsingProperties()
	group := sawyer.ParsingProperties{InheritLong: true, InheritShort: true, InheritSeparators: true}
	group.AddLongPrefix("++")

	eff := group.ComposeOver(parser)
	want := []string{"--", "++"}
	if !reflect.DeepEqual(eff.LongPrefixes, want) {
		t.Fatalf("got %v, want %v", eff.LongPrefixes, want)
	}
}

func TestResetDisablesOnlyItsOwnInheritance(t *testing.T) {
	parser := sawyer.DefaultParsingProperties()
	sw := sawyer.DefaultParsingProperties()
	sw.ResetShortPrefixes()
	sw.AddShortPrefix("/")

	eff := sw.ComposeOver(parser)
	if !reflect.DeepEqual(eff.ShortPrefixes, []string{"/"}) {
		t.Fatalf("short prefixes should be overridden entirely, got %v", eff.ShortPrefixes)
	}
	if !reflect.DeepEqual(eff.LongPrefixes, []string{"--"}) {
		t.Fatalf("long prefixes must still inherit, got %v", eff.LongPrefixes)
	}
	if !sw.InheritLong || !sw.InheritSeparators {
		t.Fatalf("ResetShortPrefixes must not disable sibling inheritance flags")
	}
}
