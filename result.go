package sawyer

import (
	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
)

// Result accumulates the outcome of a Parser's pass over an argument
// sequence: retained switch occurrences indexed by key and by name, plus
// the positional bookkeeping (skipped, unreached, unparsed, parsed) a
// caller can query afterward.
type Result struct {
	byKey   map[string][]ParsedValue
	byName  map[string][]ParsedValue
	ordered []ParsedValue // every retained occurrence, in match order

	skippedArgs    []string
	unreachedArgs  []string
	terminatorArgs []string

	allArgs      []string
	touched      map[int]bool
	touchedOrder []int
}

// NewResult constructs an empty Result.
func NewResult() *Result {
	return &Result{
		byKey:   make(map[string][]ParsedValue),
		byName:  make(map[string][]ParsedValue),
		touched: make(map[int]bool),
	}
}

// attachArgs records the final (possibly file-inclusion-spliced) argument
// sequence the Cursor ended up with, so ParsedArgs can resolve the indices
// markTouched recorded back into literal strings.
func (r *Result) attachArgs(args []string) {
	r.allArgs = append([]string(nil), args...)
}

// markTouched records that args[idx] contributed to some parsed value or
// the termination sentinel.
func (r *Result) markTouched(idx int) {
	if r.touched[idx] {
		return
	}
	r.touched[idx] = true
	r.touchedOrder = append(r.touchedOrder, idx)
}

// recordTerminator notes the literal termination token that was consumed.
func (r *Result) recordTerminator(tok string) {
	r.terminatorArgs = append(r.terminatorArgs, tok)
}

// insertOccurrence applies sw's retention policy to one matched value
// (already exploded into a single element, if applicable — see insert) and
// runs its actions if the occurrence is retained (or, for SaveNone, always,
// since it is a pure side-effect switch with nothing to gate on).
func (r *Result) insertOccurrence(sw *Switch, name, token string, v value.Value, loc cursor.Location) error {
	pv := ParsedValue{
		Key:      sw.Key,
		Name:     name,
		Token:    token,
		Value:    v,
		Location: loc,
		KeySeq:   len(r.byKey[sw.Key]),
		NameSeq:  len(r.byName[name]),
	}

	switch sw.Retention {
	case SaveNone:
		// nothing stored; fall through to actions below
	case SaveOne:
		if _, seen := r.byKey[sw.Key]; seen {
			return sawyererr.At(sawyererr.KindRetentionViolation, loc, name,
				"%s may be given only once", sw.PreferredName())
		}
		r.put(sw.Key, name, pv)
	case SaveFirst:
		if _, seen := r.byKey[sw.Key]; seen {
			return nil // discarded: nothing is retained, so no actions run
		}
		r.put(sw.Key, name, pv)
	case SaveLast:
		r.byKey[sw.Key] = []ParsedValue{pv}
		r.byName[name] = []ParsedValue{pv}
		r.ordered = append(r.withoutKey(sw.Key), pv)
	case SaveAll:
		r.put(sw.Key, name, pv)
	case SaveAugmented:
		prior := r.byKey[sw.Key]
		priorVals := make([]value.Value, len(prior))
		for i, p := range prior {
			priorVals[i] = p.Value
		}
		var augmented []value.Value
		if sw.Augmenter != nil {
			augmented = sw.Augmenter(priorVals, []value.Value{v})
		} else {
			augmented = append(priorVals, v)
		}
		rebuilt := make([]ParsedValue, len(augmented))
		for i, av := range augmented {
			rebuilt[i] = ParsedValue{Key: sw.Key, Name: name, Token: token, Value: av, Location: loc, KeySeq: i}
		}
		r.byKey[sw.Key] = rebuilt
		r.byName[name] = rebuilt
		r.ordered = append(r.withoutKey(sw.Key), rebuilt...)
	}

	for _, action := range sw.Actions {
		if err := action(r); err != nil {
			return err
		}
	}
	return nil
}

// insert records one switch occurrence, exploding it into one
// insertOccurrence call per element when sw.Explode is set and v is a
// list; otherwise v is recorded as a single occurrence.
func (r *Result) insert(sw *Switch, token string, v value.Value, loc cursor.Location) error {
	name := sw.PreferredName()
	if sw.Explode {
		if elems, ok := v.AsList(); ok {
			for _, elem := range elems {
				if err := r.insertOccurrence(sw, name, token, elem, loc); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return r.insertOccurrence(sw, name, token, v, loc)
}

func (r *Result) put(key, name string, pv ParsedValue) {
	r.byKey[key] = append(r.byKey[key], pv)
	r.byName[name] = append(r.byName[name], pv)
	r.ordered = append(r.ordered, pv)
}

// withoutKey returns the ordered occurrences minus those stored under key,
// as a fresh slice so that an earlier Occurrences result is left untouched.
func (r *Result) withoutKey(key string) []ParsedValue {
	kept := make([]ParsedValue, 0, len(r.ordered))
	for _, pv := range r.ordered {
		if pv.Key != key {
			kept = append(kept, pv)
		}
	}
	return kept
}

// Have reports whether any value is retained for key. A SaveNone switch
// never retains one, so Have stays false for it even after it matched.
func (r *Result) Have(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Parsed returns the retained values for key, in retention order.
func (r *Result) Parsed(key string) []ParsedValue {
	return r.byKey[key]
}

// First returns the first retained value for key, if any.
func (r *Result) First(key string) (ParsedValue, bool) {
	vs := r.byKey[key]
	if len(vs) == 0 {
		return ParsedValue{}, false
	}
	return vs[0], true
}

// Occurrences returns every retained occurrence across all switches, in the
// order they were matched on the command line.
func (r *Result) Occurrences() []ParsedValue {
	return r.ordered
}

// ParsedArgs returns the literal input strings that contributed to any
// parsed value or to the termination sentinel, in command-line order.
func (r *Result) ParsedArgs() []string {
	out := make([]string, 0, len(r.touchedOrder))
	for _, idx := range r.touchedOrder {
		if idx >= 0 && idx < len(r.allArgs) {
			out = append(out, r.allArgs[idx])
		}
	}
	return out
}

// SkippedArgs returns the literal tokens skipped because they looked like
// an unknown switch under a skip-unknown parsing policy, or because they
// did not look like a switch under a skip-non-switches policy.
func (r *Result) SkippedArgs() []string {
	return r.skippedArgs
}

// UnreachedArgs returns the literal tokens from the position parsing
// stopped at to the end: every token after the termination sentinel, or,
// when no skip-non-switches policy is set, the first operand and every
// token after it.
func (r *Result) UnreachedArgs() []string {
	return r.unreachedArgs
}

// UnparsedArgs returns the union of SkippedArgs and UnreachedArgs, in
// command-line order. When includeTerminators is true, the termination
// sentinel token itself (e.g. "--") is included at its chronological
// position in that union.
func (r *Result) UnparsedArgs(includeTerminators bool) []string {
	out := make([]string, 0, len(r.skippedArgs)+len(r.unreachedArgs)+len(r.terminatorArgs))
	out = append(out, r.skippedArgs...)
	if includeTerminators {
		out = append(out, r.terminatorArgs...)
	}
	out = append(out, r.unreachedArgs...)
	return out
}

// Apply writes every retained value through its switch's bound Saver, in
// match order. Switches with no bound Saver (e.g. pure actions) are
// skipped. This is the only point at which caller-supplied destinations
// are mutated; building a Result itself never touches them.
func (r *Result) Apply(savers map[string]value.Saver) error {
	for _, pv := range r.ordered {
		saver, ok := savers[pv.Key]
		if !ok {
			continue
		}
		if err := saver.Save(pv.Value); err != nil {
			return err
		}
	}
	return nil
}
