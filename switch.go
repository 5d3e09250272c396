package sawyer

import (
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/value"
)

// RetentionPolicy governs how repeated occurrences of the same Switch
// accumulate into a Result.
type RetentionPolicy int

const (
	// SaveNone never stores a value: the switch is pure side effect (its
	// Actions still run), and it may occur any number of times without
	// triggering a RetentionViolation, since nothing is ever compared
	// against a prior occurrence.
	SaveNone RetentionPolicy = iota
	// SaveOne keeps exactly one value; any occurrence beyond the first is a
	// RetentionViolation. Handled as a fully separate case from SaveNone, so
	// a pure side-effect switch can never spuriously raise a retention
	// violation on repetition.
	SaveOne
	// SaveFirst keeps the first occurrence and silently ignores the rest.
	SaveFirst
	// SaveLast keeps only the most recent occurrence, overwriting prior ones.
	SaveLast
	// SaveAll keeps every occurrence, in order.
	SaveAll
	// SaveAugmented runs the Switch's Augmenter over the prior and new
	// occurrences to compute the retained set.
	SaveAugmented
)

func (r RetentionPolicy) String() string {
	switch r {
	case SaveNone:
		return "SAVE_NONE"
	case SaveOne:
		return "SAVE_ONE"
	case SaveFirst:
		return "SAVE_FIRST"
	case SaveLast:
		return "SAVE_LAST"
	case SaveAll:
		return "SAVE_ALL"
	case SaveAugmented:
		return "SAVE_AUGMENTED"
	default:
		return "RetentionPolicy(?)"
	}
}

// Augmenter computes the retained value set for a SaveAugmented switch given
// what was already retained and the values from the new occurrence.
type Augmenter func(prior, next []value.Value) []value.Value

// Action runs once a Switch occurrence has been retained into a Result.
// Shipped actions (ExitProgram, ShowVersion; HelpAction lives in the docgen
// package to avoid an import cycle) live in actions.go.
type Action func(res *Result) error

// Switch describes one declarative command-line option: its names, the
// arguments it expects, its intrinsic (argument-less) value, its retention
// policy, and its documentation.
type Switch struct {
	Key        string
	LongNames  []string
	ShortNames string // a character set, stored as a string: order does not matter
	Args       []Argument

	HasIntrinsic bool
	Intrinsic    value.Value

	Retention RetentionPolicy
	Augmenter Augmenter
	Actions   []Action

	Hidden           bool
	Doc              string
	SynopsisOverride string

	Props ParsingProperties
	// Explode causes a list-valued parse to be split into one independent
	// ParsedValue per element, each going through the switch's retention
	// policy as if it had been its own occurrence. It has no effect on
	// switches whose value is not a list.
	Explode bool

	saver      value.Saver
	lastValues []value.Value
	lastToken  string
}

// SaveTo binds dest as the destination written during the Parser's Apply
// phase whenever this switch's key is retained in a Result.
func (sw *Switch) SaveTo(dest any) *Switch {
	sw.saver = value.MustSaver(dest)
	return sw
}

// NewSwitch constructs a Switch identified by key, the stable name used to
// query a Result regardless of which alias matched. Its own ParsingProperties
// start fully inheriting, so unless the caller calls one of the Reset*
// methods on Switch.Props, a switch transparently uses its group's (and
// ultimately the Parser's) prefixes and separators, matching NewSwitchGroup.
func NewSwitch(key string) *Switch {
	return &Switch{
		Key:       key,
		Retention: SaveLast,
		Props:     ParsingProperties{InheritLong: true, InheritShort: true, InheritSeparators: true},
	}
}

// Long registers one or more long names (without prefix).
func (sw *Switch) Long(names ...string) *Switch {
	sw.LongNames = append(sw.LongNames, names...)
	return sw
}

// Short registers one or more single-character short names.
func (sw *Switch) Short(chars string) *Switch {
	sw.ShortNames += chars
	return sw
}

// Arg appends an argument descriptor.
func (sw *Switch) Arg(a Argument) *Switch {
	sw.Args = append(sw.Args, a)
	return sw
}

// SetIntrinsic gives the switch a fixed value produced when it carries no
// arguments (e.g. --verbose meaning true).
func (sw *Switch) SetIntrinsic(v value.Value) *Switch {
	sw.HasIntrinsic = true
	sw.Intrinsic = v
	return sw
}

// Retain sets the retention policy.
func (sw *Switch) Retain(policy RetentionPolicy) *Switch {
	sw.Retention = policy
	return sw
}

// Augment sets the augmenter used for SaveAugmented.
func (sw *Switch) Augment(fn Augmenter) *Switch {
	sw.Augmenter = fn
	return sw
}

// OnMatch registers actions run after a successful retained occurrence.
func (sw *Switch) OnMatch(actions ...Action) *Switch {
	sw.Actions = append(sw.Actions, actions...)
	return sw
}

// Hide marks the switch as undocumented (excluded from generated help).
func (sw *Switch) Hide() *Switch {
	sw.Hidden = true
	return sw
}

// SetDoc attaches descriptive markup text used by the documentation
// generator.
func (sw *Switch) SetDoc(doc string) *Switch {
	sw.Doc = doc
	return sw
}

// SetSynopsis overrides the auto-generated synopsis fragment.
func (sw *Switch) SetSynopsis(s string) *Switch {
	sw.SynopsisOverride = s
	return sw
}

// SetExplode sets the list-explosion flag: when the switch's matched value
// is a list, each element becomes an independent ParsedValue in the Result
// rather than a single list-valued occurrence.
func (sw *Switch) SetExplode(explode bool) *Switch {
	sw.Explode = explode
	return sw
}

// PreferredName returns the name used to identify this switch in messages
// and documentation: the first long name, or the first short name as a
// one-character string, or the key if the switch has no names at all (the
// parser-internal "always matches" case is not expected to need one).
func (sw *Switch) PreferredName() string {
	if len(sw.LongNames) > 0 {
		return sw.LongNames[0]
	}
	if len(sw.ShortNames) > 0 {
		return string(sw.ShortNames[0])
	}
	return sw.Key
}

// matchLong attempts to match one of sw's long names, with its required
// separator or end-of-argument, at the very start of the cursor's current
// argument. It returns ok=false (no error) when no combination of prefix and
// name applies here, so the driver can go on to try the next switch; once a
// name is matched, argument parsing failures are hard errors.
func (sw *Switch) matchLong(cur *cursor.Cursor, eff ParsingProperties) (ok bool, err error) {
	curArg, caErr := cur.CurrentArg()
	if caErr != nil {
		return false, nil
	}
	for _, prefix := range eff.LongPrefixes {
		for _, name := range sw.LongNames {
			candidate := prefix + name
			if !strings.HasPrefix(curArg, candidate) {
				continue
			}
			after := curArg[len(candidate):]
			if after == "" {
				// The name consumed the whole token: jump to the start of the
				// next input string rather than its one-past-end offset, so a
				// required argument sees AtArgBegin() and takes the implicit
				// space-separator path instead of a spurious MissingSeparator.
				cur.ConsumeArg()
				return true, sw.finishLong(cur, eff, prefix+name)
			}
			if len(sw.Args) == 0 {
				continue // a longer sibling name may still match; keep trying
			}
			// A shorter name that merely prefixes what's actually a longer
			// sibling name (e.g. "out" vs "output") must not be accepted just
			// because something follows it: require an actual separator here,
			// else a longer candidate may still be the real match. Per §8
			// property 6, the longer matching name wins at the same position.
			if matchingSeparatorPrefix(after, eff) == "" {
				continue
			}
			if err := cur.Consume(len(candidate)); err != nil {
				return false, err
			}
			return true, sw.finishLong(cur, eff, prefix+name)
		}
	}
	return false, nil
}

// finishLong parses sw's declared arguments once its name has been
// consumed, building the Switch's value set.
func (sw *Switch) finishLong(cur *cursor.Cursor, eff ParsingProperties, token string) error {
	vals, err := matchArguments(cur, eff, token, sw.Args, true)
	if err != nil {
		return err
	}
	sw.lastValues = vals
	sw.lastToken = token
	return nil
}

// matchShort attempts to match one short name at the cursor's current
// position (which may be mid-argument, after a preceding short switch in
// the same nestled token). prefixConsumed is true for a nestled switch
// after the first one in the current token, whose prefix is already
// consumed; when it is false, one of the short prefixes must still be
// matched and consumed.
func (sw *Switch) matchShort(cur *cursor.Cursor, eff ParsingProperties, prefixConsumed bool) (ok bool, err error) {
	rem, remErr := cur.Remainder()
	if remErr != nil || rem == "" {
		return false, nil
	}
	if !prefixConsumed {
		matchedPrefix := ""
		for _, prefix := range eff.ShortPrefixes {
			if strings.HasPrefix(rem, prefix) {
				matchedPrefix = prefix
				break
			}
		}
		if matchedPrefix == "" {
			return false, nil
		}
		rem = rem[len(matchedPrefix):]
		if rem == "" {
			return false, nil
		}
		if !strings.ContainsRune(sw.ShortNames, rune(rem[0])) {
			return false, nil
		}
		if err := cur.Consume(len(matchedPrefix) + 1); err != nil {
			return false, err
		}
		token := matchedPrefix + rem[:1]
		return true, sw.finishShort(cur, eff, token)
	}

	if !strings.ContainsRune(sw.ShortNames, rune(rem[0])) {
		return false, nil
	}
	if err := cur.Consume(1); err != nil {
		return false, err
	}
	return true, sw.finishShort(cur, eff, rem[:1])
}

func (sw *Switch) finishShort(cur *cursor.Cursor, eff ParsingProperties, token string) error {
	vals, err := matchArguments(cur, eff, token, sw.Args, false)
	if err != nil {
		return err
	}
	sw.lastValues = vals
	sw.lastToken = token
	return nil
}

// lastValues/lastToken stash the most recent successful match's results so
// the driver can retrieve them immediately after matchLong/matchShort
// return ok. They are scratch state, not part of the declarative
// description, and are overwritten on every attempt.
