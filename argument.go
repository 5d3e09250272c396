package sawyer

import (
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
	"github.com/sawyer-cli/sawyer/valparse"
)

// Argument declares one value slot a Switch expects after its name. Required
// arguments without a match abort the parse; optional ones fall back to
// Default, parsed through the same value parser at a Nowhere location.
type Argument struct {
	Name     string
	Parser   valparse.Parser
	Required bool
	Default  string
}

// defaultValue synthesizes a parsed value from the argument's default text.
// A malformed default is a programmer error: the library panics rather than
// surfacing a confusing runtime failure far from the declaration site.
func (a Argument) defaultValue() value.Value {
	dc := cursor.New([]string{a.Default})
	v, err := a.Parser.Parse(dc)
	if err != nil {
		panic("sawyer: default value " + a.Default + " for argument " + a.Name + " does not satisfy its own parser: " + err.Error())
	}
	return v
}

// matchArguments runs sw.Args against cur in declaration order. When
// longForm is true, each matched value must use up the rest of its input
// string (trailing text is a syntax error) and the cursor then moves to the
// next argument boundary, so that a switch's second and later arguments
// must each start at the beginning of a new input string; short form
// allows arguments to be packed into the remainder of the same token.
func matchArguments(cur *cursor.Cursor, eff ParsingProperties, switchToken string, args []Argument, longForm bool) ([]value.Value, error) {
	vals := make([]value.Value, 0, len(args))
	for _, arg := range args {
		atBoundary := cur.AtArgBegin()
		sepOK := atBoundary
		if !sepOK {
			// In short form the value may follow the switch character
			// directly, so a separator there is optional.
			sepOK = tryConsumeSeparator(cur, eff) || !longForm
		}
		if !sepOK {
			if arg.Required {
				return nil, sawyererr.At(sawyererr.KindMissingSeparator, cur.Location(), switchToken,
					"expected separator before %s", strings.ToUpper(arg.Name))
			}
			vals = append(vals, arg.defaultValue())
			continue
		}

		rem, remErr := cur.Remainder()
		if remErr != nil || rem == "" {
			if arg.Required {
				return nil, sawyererr.At(sawyererr.KindMissingArgument, cur.Location(), switchToken,
					"missing required argument %s", arg.Name)
			}
			vals = append(vals, arg.defaultValue())
			continue
		}

		v, err := arg.Parser.Parse(cur)
		if err != nil {
			if arg.Required {
				if se, ok := err.(*sawyererr.Error); ok {
					return nil, se.WithContext(switchToken, cur.Location())
				}
				return nil, sawyererr.At(sawyererr.KindSyntax, cur.Location(), switchToken, "%s", err.Error())
			}
			vals = append(vals, arg.defaultValue())
			continue
		}
		vals = append(vals, v)

		if longForm {
			if rest, _ := cur.Remainder(); rest != "" {
				return nil, sawyererr.At(sawyererr.KindSyntax, cur.Location(), switchToken,
					"unexpected %q after %s", rest, strings.ToUpper(arg.Name))
			}
			cur.ConsumeArg()
		}
	}
	return vals, nil
}

// tryConsumeSeparator attempts every non-space separator in eff, in
// declared order, against the cursor's remainder, consuming the first
// match. It reports whether a separator was consumed.
func tryConsumeSeparator(cur *cursor.Cursor, eff ParsingProperties) bool {
	rem, err := cur.Remainder()
	if err != nil {
		return false
	}
	sep := matchingSeparatorPrefix(rem, eff)
	if sep == "" {
		return false
	}
	_ = cur.Consume(len(sep))
	return true
}

// matchingSeparatorPrefix returns the first of eff's non-space value
// separators that prefixes s, or "" if none does, without consuming
// anything. Used both by tryConsumeSeparator (which then consumes the
// match) and by a long switch's name matcher, which must confirm a
// separator actually follows a candidate name before committing to it over
// a longer sibling name sharing the same prefix.
func matchingSeparatorPrefix(s string, eff ParsingProperties) string {
	for _, sep := range eff.ValueSeparators {
		if sep == " " {
			continue // the space separator is only ever implicit at a boundary
		}
		if strings.HasPrefix(s, sep) {
			return sep
		}
	}
	return ""
}
