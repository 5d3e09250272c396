package sawyer

import "slices"

// ParsingProperties is the inheritable triple of string lists that governs
// surface syntax: which prefixes introduce long and short switch names, and
// which strings are accepted as value separators. The Parser, each
// SwitchGroup, and each Switch carry their own ParsingProperties; the
// effective set at a given Switch is computed by composing Parser -> Group
// -> Switch in that order, honoring each scope's inherit flags.
type ParsingProperties struct {
	LongPrefixes      []string
	ShortPrefixes     []string
	ValueSeparators   []string
	InheritLong       bool
	InheritShort      bool
	InheritSeparators bool
}

// DefaultParsingProperties returns the conventional GNU-ish defaults: "--"
// for long switches, "-" for short switches, "=" and " " as separators, all
// inheriting (meaningful only below the Parser scope).
func DefaultParsingProperties() ParsingProperties {
	return ParsingProperties{
		LongPrefixes:      []string{"--"},
		ShortPrefixes:      []string{"-"},
		ValueSeparators:   []string{"=", " "},
		InheritLong:       true,
		InheritShort:      true,
		InheritSeparators: true,
	}
}

// ResetLongPrefixes clears the long-prefix list and disables inheritance
// for it. Every Reset* method independently clears its own list and
// disables its own inheritance flag, never a sibling's.
func (p *ParsingProperties) ResetLongPrefixes() {
	p.LongPrefixes = nil
	p.InheritLong = false
}

// ResetShortPrefixes clears the short-prefix list and disables inheritance.
func (p *ParsingProperties) ResetShortPrefixes() {
	p.ShortPrefixes = nil
	p.InheritShort = false
}

// ResetSeparators clears the separator list and disables inheritance.
func (p *ParsingProperties) ResetSeparators() {
	p.ValueSeparators = nil
	p.InheritSeparators = false
}

// AddLongPrefix appends a long-switch prefix to this scope's own list.
func (p *ParsingProperties) AddLongPrefix(prefix string) *ParsingProperties {
	p.LongPrefixes = append(p.LongPrefixes, prefix)
	return p
}

// AddShortPrefix appends a short-switch prefix to this scope's own list.
func (p *ParsingProperties) AddShortPrefix(prefix string) *ParsingProperties {
	p.ShortPrefixes = append(p.ShortPrefixes, prefix)
	return p
}

// AddSeparator appends a value separator to this scope's own list.
func (p *ParsingProperties) AddSeparator(sep string) *ParsingProperties {
	p.ValueSeparators = append(p.ValueSeparators, sep)
	return p
}

// ComposeOver returns the effective ParsingProperties produced by layering
// p (an inner scope, e.g. a Switch) over outer (an enclosing scope, e.g. a
// SwitchGroup already composed over the Parser). When a list inherits, the
// outer scope's entries are tried first, then this scope's own entries that
// the outer list does not already hold.
func (p ParsingProperties) ComposeOver(outer ParsingProperties) ParsingProperties {
	result := p
	if p.InheritLong {
		result.LongPrefixes = combine(outer.LongPrefixes, p.LongPrefixes)
	}
	if p.InheritShort {
		result.ShortPrefixes = combine(outer.ShortPrefixes, p.ShortPrefixes)
	}
	if p.InheritSeparators {
		result.ValueSeparators = combine(outer.ValueSeparators, p.ValueSeparators)
	}
	return result
}

func combine(outer, own []string) []string {
	if len(outer) == 0 {
		return own
	}
	if len(own) == 0 {
		return outer
	}
	combined := make([]string, 0, len(outer)+len(own))
	combined = append(combined, outer...)
	for _, s := range own {
		if !slices.Contains(outer, s) {
			combined = append(combined, s)
		}
	}
	return combined
}
