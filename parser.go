// Package sawyer implements a declarative command-line switch parser: a
// Parser holds SwitchGroups of Switches, each describing its names,
// arguments, and retention policy; Parse walks a cursor.Cursor over the
// argument sequence and produces a Result.
package sawyer

import (
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/value"
)

// Parser is the top-level driver: the root ParsingProperties scope, the
// ordered SwitchGroups it searches, and the surface-level policies that
// govern termination, inclusion, and unknown-switch handling.
type Parser struct {
	Name    string
	Version string
	Doc     string

	Props  ParsingProperties
	Groups []*SwitchGroup

	// Terminator, when non-empty, is a literal argument (conventionally
	// "--") after which every remaining argument is treated as unreached
	// by the switch matcher, regardless of its shape.
	Terminator string

	// IncludePrefixes lists the prefixes (e.g. "@") that introduce an
	// included arguments file in place of a single command-line argument.
	IncludePrefixes []string

	// SkipUnknown, when true, routes a token that looks like a switch but
	// matches none of the declared ones into Result.SkippedArgs rather than
	// aborting the parse with an UnknownSwitchError.
	SkipUnknown bool

	// SkipNonSwitches, when true, routes a token that does not look like a
	// switch into Result.SkippedArgs and keeps parsing, instead of stopping
	// at the first operand.
	SkipNonSwitches bool

	// AllowNestling controls whether multiple short switches may be packed
	// under a single prefix in one token (e.g. "-vf" for "-v -f"). This is a
	// Parser-wide policy, independent of any individual Switch's list
	// explosion flag (Switch.Explode).
	AllowNestling bool
}

// NewParser constructs a Parser with the conventional defaults: "--"/"-"
// prefixes, "=" and " " separators, "--" as the end-of-options terminator,
// and short-switch nestling enabled.
func NewParser(name string) *Parser {
	return &Parser{
		Name:            name,
		Props:           DefaultParsingProperties(),
		Terminator:      "--",
		IncludePrefixes: []string{"@"},
		AllowNestling:   true,
	}
}

// AddGroup registers one or more SwitchGroups, searched in the order added.
func (p *Parser) AddGroup(groups ...*SwitchGroup) *Parser {
	p.Groups = append(p.Groups, groups...)
	return p
}

// Add registers switches directly on the parser by placing them in an
// unnamed, always-visible default group. Safe to mix with AddGroup.
func (p *Parser) Add(switches ...*Switch) *Parser {
	if len(p.Groups) == 0 || p.Groups[0].Title != "" {
		p.Groups = append([]*SwitchGroup{NewSwitchGroup("")}, p.Groups...)
	}
	p.Groups[0].Add(switches...)
	return p
}

// SetSkipUnknown toggles SkipUnknown.
func (p *Parser) SetSkipUnknown(skip bool) *Parser {
	p.SkipUnknown = skip
	return p
}

// SetTerminator overrides the end-of-options terminator; "" disables it.
func (p *Parser) SetTerminator(term string) *Parser {
	p.Terminator = term
	return p
}

// AddIncludePrefix registers a prefix that introduces an included
// arguments file.
func (p *Parser) AddIncludePrefix(prefix string) *Parser {
	p.IncludePrefixes = append(p.IncludePrefixes, prefix)
	return p
}

// Parse walks args from the start, matching declared switches and
// collecting operands, without invoking any bound Saver. Call Apply on the
// returned Result afterward to write values into caller destinations.
func (p *Parser) Parse(args []string) (*Result, error) {
	cur := cursor.New(args)
	res := NewResult()
	defer func() { res.attachArgs(cur.Args()) }()
	terminated := false

	for !cur.AtEnd() {
		if !terminated && p.Terminator != "" {
			tok, _ := cur.CurrentArg()
			if tok == p.Terminator {
				res.recordTerminator(tok)
				res.markTouched(cur.Location().Idx)
				cur.ConsumeArg()
				terminated = true
				continue
			}
		}
		if terminated {
			tok, _ := cur.CurrentArg()
			res.unreachedArgs = append(res.unreachedArgs, tok)
			cur.ConsumeArg()
			continue
		}

		included, err := p.tryInclude(cur)
		if err != nil {
			return res, err
		}
		if included {
			continue
		}

		if !p.looksLikeSwitch(cur) {
			tok, _ := cur.CurrentArg()
			if p.SkipNonSwitches {
				res.skippedArgs = append(res.skippedArgs, tok)
				cur.ConsumeArg()
				continue
			}
			terminated = true
			res.unreachedArgs = append(res.unreachedArgs, tok)
			cur.ConsumeArg()
			continue
		}

		matched, err := p.parseOneSwitch(cur, res)
		if err != nil {
			return res, err
		}
		if !matched {
			tok, _ := cur.CurrentArg()
			if p.SkipUnknown {
				res.skippedArgs = append(res.skippedArgs, tok)
				cur.ConsumeArg()
				continue
			}
			return res, sawyererr.At(sawyererr.KindUnknownSwitch, cur.Location(), tok,
				"unrecognized switch %s", tok)
		}
	}
	return res, nil
}

// looksLikeSwitch reports whether the cursor's current argument begins with
// one of the parser's own long or short prefixes. Groups and switches that
// override the prefix set still get a chance to match via parseOneSwitch
// (their own effective prefixes are consulted there); this is only the
// coarse gate that separates "probably a switch" from "certainly an
// operand", evaluated against the root scope.
func (p *Parser) looksLikeSwitch(cur *cursor.Cursor) bool {
	tok, err := cur.CurrentArg()
	if err != nil {
		return false
	}
	for _, prefix := range p.Props.LongPrefixes {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	for _, prefix := range p.Props.ShortPrefixes {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}

// parseOneSwitch tries every switch in every group, in declaration order,
// attempting first a long-name match and then a short-name match (with
// nestling support for subsequent short switches already consumed out of
// the same token).
func (p *Parser) parseOneSwitch(cur *cursor.Cursor, res *Result) (bool, error) {
	for _, g := range p.Groups {
		groupEff := g.Props.ComposeOver(p.Props)
		for _, sw := range g.switches {
			eff := sw.Props.ComposeOver(groupEff)
			start := cur.Location()

			ok, err := sw.matchLong(cur, eff)
			if err != nil {
				return false, err
			}
			if ok {
				if err := res.insert(sw, sw.lastToken, finalValue(sw), start); err != nil {
					return false, err
				}
				markTouchedRange(res, cur, start)
				return true, nil
			}

			ok, err = sw.matchShort(cur, eff, false)
			if err != nil {
				return false, err
			}
			if ok {
				if err := p.drainNestledShort(cur, eff, g, sw, res, start); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// drainNestledShort records sw's own match and then, while the Parser
// allows short-switch nestling and the cursor remains mid-argument, keeps
// trying every short switch in the same group against the rest of the
// token (the "-xvf" nestling case). Nestling is a Parser-wide policy
// (AllowNestling), independent of any individual Switch's list-explosion
// flag (Switch.Explode).
func (p *Parser) drainNestledShort(cur *cursor.Cursor, eff ParsingProperties, g *SwitchGroup, sw *Switch, res *Result, start cursor.Location) error {
	if err := res.insert(sw, sw.lastToken, finalValue(sw), start); err != nil {
		return err
	}
	for p.AllowNestling {
		if cur.AtEnd() || cur.AtArgBegin() {
			break
		}
		matchedAny := false
		for _, next := range g.switches {
			nextEff := next.Props.ComposeOver(eff)
			loc := cur.Location()
			ok, err := next.matchShort(cur, nextEff, true)
			if err != nil {
				return err
			}
			if ok {
				if err := res.insert(next, next.lastToken, finalValue(next), loc); err != nil {
					return err
				}
				matchedAny = true
				break
			}
		}
		if !matchedAny {
			break
		}
	}
	// A run of short switches that used up its whole token leaves the
	// cursor at that token's end offset; move on to the next argument.
	if !cur.AtEnd() && !cur.AtArgBegin() {
		if rem, err := cur.Remainder(); err == nil && rem == "" {
			cur.ConsumeArg()
		}
	}
	markTouchedRange(res, cur, start)
	return nil
}

// markTouchedRange records every argument index spanned between start and
// the cursor's current location as having contributed to a parsed value.
// When the cursor has landed exactly on an argument boundary, that boundary
// argument has not itself been touched yet (it belongs to whatever is
// matched next), so only the indices strictly before it are included.
func markTouchedRange(res *Result, cur *cursor.Cursor, start cursor.Location) {
	end := cur.Location().Idx
	if cur.AtArgBegin() || cur.AtEnd() {
		end--
	}
	for i := start.Idx; i <= end; i++ {
		res.markTouched(i)
	}
}

// finalValue collapses a Switch's matched arguments into the single Value
// retained on a ParsedValue: the declared intrinsic (or a bare true) when
// it took none, the lone value when it took exactly one, and a list when
// it took several.
func finalValue(sw *Switch) value.Value {
	switch len(sw.lastValues) {
	case 0:
		if sw.HasIntrinsic {
			return sw.Intrinsic
		}
		return value.FromBool(true)
	case 1:
		return sw.lastValues[0]
	default:
		return value.FromList(sw.lastValues)
	}
}

// Apply gathers every switch's bound Saver (see Switch.SaveTo) across all
// groups and writes res's retained values through them.
func (p *Parser) Apply(res *Result) error {
	savers := make(map[string]value.Saver)
	for _, g := range p.Groups {
		for _, sw := range g.switches {
			if sw.saver != nil {
				savers[sw.Key] = sw.saver
			}
		}
	}
	return res.Apply(savers)
}
