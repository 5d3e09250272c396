package valparse

import (
	"sort"
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
)

// StringSet matches an exact literal drawn from a fixed set of candidates;
// the longest matching candidate wins, so a set containing both "a" and
// "auto" never has "auto" incorrectly truncated to "a".
type StringSet struct {
	candidates []string
	foldCase   bool
}

// NewStringSet constructs a StringSet over the given candidates.
func NewStringSet(candidates ...string) *StringSet {
	sorted := append([]string(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return &StringSet{candidates: sorted}
}

// FoldCase makes matching case-insensitive.
func (p *StringSet) FoldCase() *StringSet {
	p.foldCase = true
	return p
}

// ParseCString implements CStringParser.
func (p *StringSet) ParseCString(s string) (value.Value, int, error) {
	hay := s
	if p.foldCase {
		hay = foldCaser.String(s)
	}
	for _, c := range p.candidates {
		needle := c
		if p.foldCase {
			needle = foldCaser.String(c)
		}
		if strings.HasPrefix(hay, needle) {
			return value.FromString(c), len(c), nil
		}
	}
	return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "specific word expected (one of %s)", strings.Join(p.candidates, ", "))
}

// Parse implements Parser.
func (p *StringSet) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(p).Parse(cur)
}
