package docgen

import (
	"fmt"
	"strings"

	"github.com/sawyer-cli/sawyer"
)

// renderer applies a Switch's Doc-string markup against one specific Parser.
// It is constructed fresh for each Generate/RenderMarkdown call so that the
// @man cross-references a document accumulates can be rendered as a
// trailing "See Also" section once every group has been walked.
type renderer struct {
	p        *sawyer.Parser
	markdown bool
	seeAlso  []string
	seenRef  map[string]bool
}

func newRenderer(p *sawyer.Parser, markdown bool) *renderer {
	return &renderer{p: p, markdown: markdown, seenRef: make(map[string]bool)}
}

// knownTags is checked longest-first so "@table" isn't shadowed by a
// shorter tag that happens to share its leading character.
var knownTags = []string{"@table", "@prop", "@man", "@nl", "@em", "@b", "@s", "@v"}

func matchTag(s string) string {
	for _, t := range knownTags {
		if strings.HasPrefix(s, t) {
			return t
		}
	}
	return ""
}

// readBraceGroup reads a single balanced "{...}" group at the start of s,
// returning its inner text and the number of bytes consumed (including the
// braces). Nested groups, such as a tag inside @b{...}, stay in the inner
// text.
func readBraceGroup(s string) (inner string, consumed int, ok bool) {
	if len(s) == 0 || s[0] != '{' {
		return "", 0, false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// render walks s left to right, expanding every recognized tag and passing
// everything else through unchanged.
func (r *renderer) render(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '@' {
			out.WriteByte(s[i])
			i++
			continue
		}
		tag := matchTag(s[i:])
		if tag == "@nl" {
			out.WriteByte('\n')
			i += len(tag)
			continue
		}
		if tag == "" {
			out.WriteByte(s[i])
			i++
			continue
		}

		rest := s[i+len(tag):]
		switch tag {
		case "@b", "@em":
			inner, n, ok := readBraceGroup(rest)
			if !ok {
				out.WriteByte(s[i])
				i++
				continue
			}
			out.WriteString(r.render(inner))
			i += len(tag) + n
		case "@v":
			inner, n, ok := readBraceGroup(rest)
			if !ok {
				out.WriteByte(s[i])
				i++
				continue
			}
			out.WriteString(r.renderValue(inner))
			i += len(tag) + n
		case "@s":
			inner, n, ok := readBraceGroup(rest)
			if !ok {
				out.WriteByte(s[i])
				i++
				continue
			}
			out.WriteString(r.renderSwitchRef(inner))
			i += len(tag) + n
		case "@prop":
			inner, n, ok := readBraceGroup(rest)
			if !ok {
				out.WriteByte(s[i])
				i++
				continue
			}
			out.WriteString(r.renderProp(inner))
			i += len(tag) + n
		case "@man":
			page, n1, ok1 := readBraceGroup(rest)
			if !ok1 {
				out.WriteByte(s[i])
				i++
				continue
			}
			chapter, n2, ok2 := readBraceGroup(rest[n1:])
			if !ok2 {
				out.WriteByte(s[i])
				i++
				continue
			}
			out.WriteString(r.renderManRef(page, chapter))
			i += len(tag) + n1 + n2
		case "@table":
			inner, n, ok := readBraceGroup(rest)
			if !ok {
				out.WriteByte(s[i])
				i++
				continue
			}
			out.WriteString(r.renderTable(inner))
			i += len(tag) + n
		}
	}
	return out.String()
}

// renderValue renders a @v{name} placeholder: the variable name alone in
// plain text (matching the ALL-CAPS convention synopsisFor uses for
// argument names), a code span in Markdown.
func (r *renderer) renderValue(name string) string {
	if r.markdown {
		return "`" + name + "`"
	}
	return strings.ToUpper(name)
}

// renderSwitchRef resolves a @s{name} cross reference to one of the
// Parser's own switches, rendering it with its best (preferentially long)
// prefix. A name that resolves to nothing known passes through bare, the
// way an unresolved man-page reference still prints a readable label.
func (r *renderer) renderSwitchRef(name string) string {
	sw := findSwitch(r.p, name)
	if sw == nil {
		return name
	}
	if len(sw.LongNames) > 0 {
		return "--" + sw.LongNames[0]
	}
	if len(sw.ShortNames) > 0 {
		return "-" + string(sw.ShortNames[0])
	}
	return name
}

// renderProp renders a @prop{key} reference to one of the Parser's own
// surface-level policies, the way a man page might document "see the -F
// option" by pointing at a live configuration value instead of restating it.
func (r *renderer) renderProp(key string) string {
	switch key {
	case "terminator":
		if r.p.Terminator == "" {
			return "(none)"
		}
		return r.p.Terminator
	case "nestling":
		return fmt.Sprintf("%v", r.p.AllowNestling)
	case "skip-unknown":
		return fmt.Sprintf("%v", r.p.SkipUnknown)
	case "skip-non-switches":
		return fmt.Sprintf("%v", r.p.SkipNonSwitches)
	case "include-prefixes":
		return strings.Join(r.p.IncludePrefixes, ", ")
	default:
		return key
	}
}

// renderManRef renders a @man{page}{chapter} cross-reference and records it
// for the trailing "See Also" section, deduplicating repeats.
func (r *renderer) renderManRef(page, chapter string) string {
	ref := fmt.Sprintf("%s(%s)", page, chapter)
	if !r.seenRef[ref] {
		r.seenRef[ref] = true
		r.seeAlso = append(r.seeAlso, ref)
	}
	return ref
}

// renderTable renders a @table{...} block: rows separated by ";;", cells
// within a row separated by "|". Plain text pads columns to the widest
// cell; Markdown emits a pipe table with a header separator.
func (r *renderer) renderTable(body string) string {
	var rows [][]string
	for _, row := range strings.Split(body, ";;") {
		var cells []string
		for _, cell := range strings.Split(row, "|") {
			cells = append(cells, strings.TrimSpace(r.render(cell)))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}
	if r.markdown {
		return renderMarkdownTable(rows)
	}
	return renderPlainTable(rows)
}

func renderPlainTable(rows [][]string) string {
	widths := columnWidths(rows)
	var out strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				out.WriteString("  ")
			}
			fmt.Fprintf(&out, "%-*s", widths[i], cell)
		}
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func renderMarkdownTable(rows [][]string) string {
	var out strings.Builder
	out.WriteString("| " + strings.Join(rows[0], " | ") + " |\n")
	out.WriteString("|" + strings.Repeat(" --- |", len(rows[0])) + "\n")
	for _, row := range rows[1:] {
		out.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// findSwitch looks up one of p's switches by any of its names: long name,
// single-character short name, or key, in that order.
func findSwitch(p *sawyer.Parser, name string) *sawyer.Switch {
	for _, g := range p.Groups {
		for _, sw := range g.Switches() {
			for _, ln := range sw.LongNames {
				if ln == name {
					return sw
				}
			}
			if len(name) == 1 && strings.ContainsRune(sw.ShortNames, rune(name[0])) {
				return sw
			}
			if sw.Key == name {
				return sw
			}
		}
	}
	return nil
}
