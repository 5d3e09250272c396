// Package docgen renders a Parser's declared switches into human-readable
// documentation: a terminal help page and a standalone Markdown reference.
// Switch and group ordering within each rendering follows declaration order
// except where natural sort ordering is explicitly requested for long
// lists of names, using github.com/maruel/natural the way a changelog or
// file-listing tool would.
package docgen

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/sawyer-cli/sawyer"
)

// synopsisFor renders the one-line invocation fragment for a switch, honoring
// SynopsisOverride when present.
func synopsisFor(sw *sawyer.Switch) string {
	if sw.SynopsisOverride != "" {
		return sw.SynopsisOverride
	}
	var names []string
	for _, n := range sw.LongNames {
		names = append(names, "--"+n)
	}
	for _, c := range sw.ShortNames {
		names = append(names, "-"+string(c))
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	frag := strings.Join(names, "|")
	for _, arg := range sw.Args {
		if arg.Required {
			frag += " " + strings.ToUpper(arg.Name)
		} else {
			frag += " [" + strings.ToUpper(arg.Name) + "]"
		}
	}
	return frag
}

// Generate writes a plain-text help page for p to w: a usage line followed
// by each SwitchGroup's title, documentation, and switch synopses, in
// declaration order (a group with SortDocs set lists its switches in
// natural order by preferred name), and a trailing "See Also" section for any @man
// cross-references the Doc strings accumulated. Hidden groups and switches
// are omitted.
func Generate(w io.Writer, p *sawyer.Parser) error {
	r := newRenderer(p, false)
	fmt.Fprintf(w, "usage: %s [options]\n", p.Name)
	if p.Doc != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.render(p.Doc))
	}
	for _, g := range p.Groups {
		if g.Hidden {
			continue
		}
		visible := visibleSwitches(g)
		if len(visible) == 0 {
			continue
		}
		fmt.Fprintln(w)
		if g.Title != "" {
			fmt.Fprintf(w, "%s:\n", g.Title)
		}
		if g.Doc != "" {
			fmt.Fprintln(w, "  "+r.render(g.Doc))
		}
		for _, sw := range visible {
			fmt.Fprintf(w, "  %-28s %s\n", synopsisFor(sw), r.render(sw.Doc))
		}
	}
	if len(r.seeAlso) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "See Also:")
		for _, ref := range r.seeAlso {
			fmt.Fprintf(w, "  %s\n", ref)
		}
	}
	return nil
}

// RenderMarkdown writes a Markdown reference page for p to w, suitable for
// a project's docs/ directory, including a trailing "See Also" section for
// any @man cross-references the Doc strings accumulated.
func RenderMarkdown(w io.Writer, p *sawyer.Parser) error {
	r := newRenderer(p, true)
	fmt.Fprintf(w, "# %s\n\n", p.Name)
	if p.Doc != "" {
		fmt.Fprintln(w, r.render(p.Doc))
		fmt.Fprintln(w)
	}
	for _, g := range p.Groups {
		if g.Hidden {
			continue
		}
		visible := visibleSwitches(g)
		if len(visible) == 0 {
			continue
		}
		if g.Title != "" {
			fmt.Fprintf(w, "## %s\n\n", g.Title)
		}
		if g.Doc != "" {
			fmt.Fprintln(w, r.render(g.Doc))
			fmt.Fprintln(w)
		}
		for _, sw := range visible {
			fmt.Fprintf(w, "- `%s` — %s\n", synopsisFor(sw), r.render(sw.Doc))
		}
		fmt.Fprintln(w)
	}
	if len(r.seeAlso) > 0 {
		fmt.Fprintln(w, "## See Also")
		fmt.Fprintln(w)
		for _, ref := range r.seeAlso {
			fmt.Fprintf(w, "- %s\n", ref)
		}
	}
	return nil
}

// visibleSwitches returns g's non-hidden switches, in declaration order
// unless g.SortDocs requests natural-sort-by-preferred-name instead (so
// "-arg2" precedes "-arg10" the way a changelog reads to a human).
func visibleSwitches(g *sawyer.SwitchGroup) []*sawyer.Switch {
	var out []*sawyer.Switch
	for _, sw := range g.Switches() {
		if !sw.Hidden {
			out = append(out, sw)
		}
	}
	if g.SortDocs {
		sort.Slice(out, func(i, j int) bool {
			return natural.Less(out[i].PreferredName(), out[j].PreferredName())
		})
	}
	return out
}

// HelpAction returns a sawyer.Action that renders p's help page to w and
// terminates the process with status 0. It lives in this package, rather
// than alongside ExitProgram/ShowVersion in the sawyer package itself,
// purely to avoid an import cycle: rendering needs to walk a *sawyer.Parser,
// so docgen must depend on sawyer, not the reverse.
func HelpAction(w io.Writer, p *sawyer.Parser) sawyer.Action {
	return func(res *sawyer.Result) error {
		if err := Generate(w, p); err != nil {
			return err
		}
		sawyer.ExitProgram(0)(res)
		return nil
	}
}
