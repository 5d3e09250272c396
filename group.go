package sawyer

// SwitchGroup is an ordered collection of Switches sharing documentation
// grouping and, optionally, their own ParsingProperties overrides. Groups
// exist so a help page can be organized into sections ("Input options",
// "Output options", ...) independently of declaration order elsewhere.
type SwitchGroup struct {
	Title   string
	Doc     string
	Props   ParsingProperties
	Hidden  bool
	// SortDocs, when true, tells the documentation generator to list this
	// group's switches in natural-sort order by preferred name instead of
	// declaration order (so "-arg2" precedes "-arg10" the way a changelog
	// reads to a human). Declaration order remains the default and governs
	// everything other than doc rendering: Switches/Add order still decides
	// match precedence during Parse (spec.md §5's ordering guarantees).
	SortDocs bool
	switches []*Switch
}

// NewSwitchGroup constructs an empty, titled SwitchGroup. Its own
// ParsingProperties start fully inheriting, so unless the caller calls one
// of the Reset* methods on Group.Props, a group transparently uses the
// Parser's prefixes and separators. Every Reset* method disables
// inheritance uniformly for its own scope; a group's short-prefix reset
// behaves the same way a long-prefix or separator reset does.
func NewSwitchGroup(title string) *SwitchGroup {
	return &SwitchGroup{
		Title: title,
		Props: ParsingProperties{InheritLong: true, InheritShort: true, InheritSeparators: true},
	}
}

// Add appends switches to the group, in declaration order.
func (g *SwitchGroup) Add(switches ...*Switch) *SwitchGroup {
	g.switches = append(g.switches, switches...)
	return g
}

// Switches returns the group's switches in declaration order.
func (g *SwitchGroup) Switches() []*Switch {
	return g.switches
}

// SetDoc attaches a group-level description for the documentation
// generator.
func (g *SwitchGroup) SetDoc(doc string) *SwitchGroup {
	g.Doc = doc
	return g
}

// Hide excludes the entire group from generated help output.
func (g *SwitchGroup) Hide() *SwitchGroup {
	g.Hidden = true
	return g
}

// SetSortDocs sets SortDocs.
func (g *SwitchGroup) SetSortDocs(sort bool) *SwitchGroup {
	g.SortDocs = sort
	return g
}
