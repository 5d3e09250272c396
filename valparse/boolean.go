package valparse

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
)

var foldCaser = cases.Fold()

// boolWords pairs each recognized literal with its boolean meaning. Longer
// literals are tried first so that, e.g., "true" is preferred over a
// partial match on "t".
var boolWords = []struct {
	word string
	val  bool
}{
	{"true", true}, {"false", false},
	{"yes", true}, {"no", false},
	{"off", false}, {"on", true},
	{"y", true}, {"n", false},
	{"t", true}, {"f", false},
	{"1", true}, {"0", false},
}

func init() {
	sort.SliceStable(boolWords, func(i, j int) bool {
		return len(boolWords[i].word) > len(boolWords[j].word)
	})
}

// Boolean matches one of {true, t, yes, y, on, 1, false, f, no, n, off, 0},
// case-insensitively, longest candidate first, and produces a KindBool
// Value.
type Boolean struct{}

// NewBoolean constructs a Boolean parser.
func NewBoolean() Boolean { return Boolean{} }

// ParseCString implements CStringParser.
func (Boolean) ParseCString(s string) (value.Value, int, error) {
	folded := foldCaser.String(s)
	for _, w := range boolWords {
		if strings.HasPrefix(folded, w.word) {
			return value.FromBool(w.val), len(w.word), nil
		}
	}
	return value.Value{}, 0, sawyererr.New(sawyererr.KindSyntax, "boolean word expected")
}

// Parse implements Parser.
func (b Boolean) Parse(cur *cursor.Cursor) (value.Value, error) {
	return AsParser(b).Parse(cur)
}
