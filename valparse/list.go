package valparse

import (
	"regexp"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
)

// Member pairs a value parser with the separator regular expression that
// must follow it before the next member is attempted. The last member of a
// List's Members slice repeats indefinitely once the preceding ones are
// exhausted.
type Member struct {
	Parser    Parser
	Separator *regexp.Regexp
}

// List implements a recursive list grammar: a sequence of member values,
// each followed by a member-specific separator, bounded by a declared
// [min,max] element count.
type List struct {
	members []Member
	min     int
	max     int // 0 means unbounded
}

// NewList constructs a List over the given member descriptors. min defaults
// to 1 and max to unbounded (0) when not overridden via MinMax.
func NewList(members ...Member) *List {
	if len(members) == 0 {
		panic("valparse: List requires at least one member descriptor")
	}
	return &List{members: members, min: 1, max: 0}
}

// MinMax overrides the element-count bounds. max == 0 means unbounded.
func (l *List) MinMax(min, max int) *List {
	l.min = min
	l.max = max
	return l
}

// Parse implements Parser. The match is all-or-nothing with respect to
// cursor position: on failure the cursor is restored to where it started.
func (l *List) Parse(cur *cursor.Cursor) (value.Value, error) {
	guard := cur.Excursion()
	defer guard.Restore()

	// maxListElements backstops an unbounded (max == 0) list against a
	// pathological member parser that matches zero-width text forever; a
	// well-behaved grammar never approaches this.
	const maxListElements = 10000

	var elems []value.Value
	for i := 0; (l.max == 0 && i < maxListElements) || (l.max != 0 && i < l.max); i++ {
		if i > 0 {
			rem, err := cur.Remainder()
			if err != nil {
				rem = ""
			}
			sep := l.members[memberIndex(i-1, len(l.members))].Separator
			loc := sep.FindStringIndex(rem)
			if loc == nil || loc[0] != 0 {
				if len(elems) < l.min {
					return value.Value{}, l.countError(len(elems))
				}
				break
			}
			if err := cur.Consume(loc[1]); err != nil {
				return value.Value{}, err
			}
		}

		member := l.members[memberIndex(i, len(l.members))]
		rem, err := cur.Remainder()
		if err != nil {
			if len(elems) < l.min {
				return value.Value{}, l.countError(len(elems))
			}
			break
		}

		// The value ends where the member's separator first matches. The
		// separator is tried at each offset in turn, so an anchored pattern
		// such as `^,` finds the same end as an unanchored `,`.
		end := len(rem)
		if member.Separator != nil {
			for j := 0; j <= len(rem); j++ {
				if loc := member.Separator.FindStringIndex(rem[j:]); loc != nil && loc[0] == 0 {
					end = j
					break
				}
			}
		}

		csp := AsCStringParser(member.Parser)
		v, consumed, err := csp.ParseCString(rem[:end])
		if err != nil {
			if len(elems) < l.min {
				return value.Value{}, err
			}
			break
		}
		if err := cur.Consume(consumed); err != nil {
			return value.Value{}, err
		}
		elems = append(elems, v)
	}

	if len(elems) < l.min || (l.max != 0 && len(elems) > l.max) {
		return value.Value{}, l.countError(len(elems))
	}

	guard.Cancel()
	return value.FromList(elems), nil
}

func memberIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}

// countError synthesizes a count-aware diagnostic: exact count when
// min == max, a pair when max == min+1, else a range.
func (l *List) countError(got int) error {
	switch {
	case l.max != 0 && l.min == l.max:
		return sawyererr.New(sawyererr.KindSyntax, "expected exactly %d list element(s), got %d", l.min, got)
	case l.max != 0 && l.max == l.min+1:
		return sawyererr.New(sawyererr.KindSyntax, "expected %d or %d list elements, got %d", l.min, l.max, got)
	case l.max == 0:
		return sawyererr.New(sawyererr.KindSyntax, "expected at least %d list element(s), got %d", l.min, got)
	default:
		return sawyererr.New(sawyererr.KindSyntax, "expected between %d and %d list elements, got %d", l.min, l.max, got)
	}
}
