package docgen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sawyer-cli/sawyer"
	"github.com/sawyer-cli/sawyer/docgen"
)

func TestGenerateListsVisibleSwitches(t *testing.T) {
	p := sawyer.NewParser("demo")
	p.Doc = "demo tool"
	g := sawyer.NewSwitchGroup("Output options").SetDoc("control what gets printed")
	g.Add(
		sawyer.NewSwitch("verbose").Long("verbose").Short("v").SetDoc("be noisy"),
		sawyer.NewSwitch("secret").Long("secret").Hide(),
	)
	p.AddGroup(g)

	var buf bytes.Buffer
	if err := docgen.Generate(&buf, p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Output options:") {
		t.Fatalf("missing group title, got:\n%s", out)
	}
	if !strings.Contains(out, "--verbose") || !strings.Contains(out, "-v") {
		t.Fatalf("missing verbose synopsis, got:\n%s", out)
	}
	if strings.Contains(out, "--secret") {
		t.Fatalf("hidden switch must not be rendered, got:\n%s", out)
	}
}

func TestGenerateSortDocsUsesNaturalOrder(t *testing.T) {
	p := sawyer.NewParser("demo")
	g := sawyer.NewSwitchGroup("Numbered options").SetSortDocs(true)
	g.Add(
		sawyer.NewSwitch("ten").Long("arg10"),
		sawyer.NewSwitch("two").Long("arg2"),
	)
	p.AddGroup(g)

	var buf bytes.Buffer
	if err := docgen.Generate(&buf, p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "--arg2") > strings.Index(out, "--arg10") {
		t.Fatalf("expected natural sort order (--arg2 before --arg10), got:\n%s", out)
	}
}

func TestRenderMarkdownProducesHeadings(t *testing.T) {
	p := sawyer.NewParser("demo")
	g := sawyer.NewSwitchGroup("Input options")
	g.Add(sawyer.NewSwitch("name").Long("name").SetDoc("set the @b{name}"))
	p.AddGroup(g)

	var buf bytes.Buffer
	if err := docgen.RenderMarkdown(&buf, p); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "## Input options") {
		t.Fatalf("missing markdown heading, got:\n%s", out)
	}
	if !strings.Contains(out, "set the name") {
		t.Fatalf("expected @b{} markup stripped, got:\n%s", out)
	}
}
