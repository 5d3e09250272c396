package sawyer

import (
	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/value"
)

// ParsedValue is one retained occurrence of a Switch: its value, the
// literal token text that matched, where it matched, and the sequence
// numbers used to answer "which switch came first" and "which name did the
// user actually type" queries.
type ParsedValue struct {
	Key      string
	Name     string // the switch's PreferredName(), the name-index key
	Token    string // the literal text the user actually typed, e.g. "-v" or "--verbose"
	Value    value.Value
	Location cursor.Location
	KeySeq   int // ordinal among occurrences sharing Key
	NameSeq  int // ordinal among occurrences sharing Name
}
