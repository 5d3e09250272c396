package sawyer_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/sawyer-cli/sawyer"
	"github.com/sawyer-cli/sawyer/sawyererr"
	"github.com/sawyer-cli/sawyer/valparse"
)

func TestLongSwitchWithInlineValue(t *testing.T) {
	var width int
	sw := sawyer.NewSwitch("width").Long("width").SaveTo(&width).
		Arg(sawyer.Argument{Name: "n", Parser: valparse.NewInteger().Bind(&width), Required: true})
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--width=80"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Have("width") {
		t.Fatalf("expected width to be retained")
	}
	if err := p.Apply(res); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if width != 80 {
		t.Fatalf("got width=%d", width)
	}
}

func TestLongSwitchWithSpaceSeparatedValue(t *testing.T) {
	var name string
	sw := sawyer.NewSwitch("name").Long("name").SaveTo(&name).
		Arg(sawyer.Argument{Name: "s", Parser: valparse.NewAny(), Required: true})
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--name", "sawyer"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := p.Apply(res); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if name != "sawyer" {
		t.Fatalf("got name=%q", name)
	}
}

func TestLongNamePrefixOfAnotherOnSameSwitch(t *testing.T) {
	var out string
	sw := sawyer.NewSwitch("out").Long("out", "output").SaveTo(&out).
		Arg(sawyer.Argument{Name: "file", Parser: valparse.NewAny(), Required: true})
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--output=result.txt"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := p.Apply(res); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out != "result.txt" {
		t.Fatalf("got out=%q, want result.txt (the shorter \"out\" name must not shadow \"output\")", out)
	}
}

func TestLongNamePrefixOfAnotherAcrossSwitches(t *testing.T) {
	var out, output string
	swOut := sawyer.NewSwitch("out").Long("out").SaveTo(&out).
		Arg(sawyer.Argument{Name: "file", Parser: valparse.NewAny(), Required: true})
	swOutput := sawyer.NewSwitch("output").Long("output").SaveTo(&output).
		Arg(sawyer.Argument{Name: "file", Parser: valparse.NewAny(), Required: true})
	p := sawyer.NewParser("tool").Add(swOut, swOutput)

	res, err := p.Parse([]string{"--output=result.txt"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := p.Apply(res); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if output != "result.txt" || out != "" {
		t.Fatalf("got out=%q output=%q, want the longer \"output\" switch to match, not \"out\"", out, output)
	}
}

func TestShortSwitchesNestle(t *testing.T) {
	verbose := sawyer.NewSwitch("verbose").Short("v").Retain(sawyer.SaveOne)
	force := sawyer.NewSwitch("force").Short("f").Retain(sawyer.SaveOne)
	p := sawyer.NewParser("tool").Add(verbose, force)

	res, err := p.Parse([]string{"-vf"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Have("verbose") || !res.Have("force") {
		t.Fatalf("expected both -v and -f retained from nestled token")
	}
}

func TestNestlingDisabledStopsAtFirstShortSwitch(t *testing.T) {
	verbose := sawyer.NewSwitch("verbose").Short("v").Retain(sawyer.SaveOne)
	force := sawyer.NewSwitch("force").Short("f").Retain(sawyer.SaveOne)
	p := sawyer.NewParser("tool").Add(verbose, force)
	p.AllowNestling = false

	_, err := p.Parse([]string{"-vf"})
	if err == nil {
		t.Fatalf("expected an UnknownSwitchError: -vf isn't a declared switch with nestling disabled")
	}
}

func TestListExplosionProducesIndependentOccurrences(t *testing.T) {
	sw := sawyer.NewSwitch("incdir").Long("incdir").Retain(sawyer.SaveAll).SetExplode(true).
		Arg(sawyer.Argument{
			Name: "dirs",
			Parser: valparse.NewList(valparse.Member{
				Parser:    valparse.NewAny(),
				Separator: regexp.MustCompile(`,`),
			}),
			Required: true,
		})
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--incdir", "a,b,c"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vals := res.Parsed("incdir")
	if len(vals) != 3 {
		t.Fatalf("expected 3 exploded occurrences, got %d", len(vals))
	}
	for i, want := range []string{"a", "b", "c"} {
		got, _ := vals[i].Value.AsString()
		if got != want {
			t.Fatalf("element %d: got %q, want %q", i, got, want)
		}
		if vals[i].KeySeq != i {
			t.Fatalf("element %d: got KeySeq %d, want %d", i, vals[i].KeySeq, i)
		}
	}
}

func TestUnknownSwitchAborts(t *testing.T) {
	p := sawyer.NewParser("tool").Add(sawyer.NewSwitch("verbose").Long("verbose"))
	_, err := p.Parse([]string{"--nope"})
	if err == nil {
		t.Fatalf("expected an UnknownSwitchError")
	}
	if kind, ok := sawyererr.KindOf(err); !ok || kind != sawyererr.KindUnknownSwitch {
		t.Fatalf("got %v", err)
	}
}

func TestSkipUnknownRoutesToSkippedArgs(t *testing.T) {
	p := sawyer.NewParser("tool").SetSkipUnknown(true).Add(sawyer.NewSwitch("verbose").Long("verbose"))
	res, err := p.Parse([]string{"--nope", "--verbose"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.SkippedArgs()) != 1 || res.SkippedArgs()[0] != "--nope" {
		t.Fatalf("got skipped=%v", res.SkippedArgs())
	}
	if !res.Have("verbose") {
		t.Fatalf("expected verbose retained")
	}
}

func TestSaveOneRejectsSecondOccurrence(t *testing.T) {
	sw := sawyer.NewSwitch("mode").Long("mode").Retain(sawyer.SaveOne).
		Arg(sawyer.Argument{Name: "m", Parser: valparse.NewAny(), Required: true})
	p := sawyer.NewParser("tool").Add(sw)

	_, err := p.Parse([]string{"--mode=a", "--mode=b"})
	if err == nil {
		t.Fatalf("expected a RetentionViolation")
	}
	if kind, ok := sawyererr.KindOf(err); !ok || kind != sawyererr.KindRetentionViolation {
		t.Fatalf("got %v", err)
	}
}

func TestSaveNoneAllowsRepetitionWithoutViolation(t *testing.T) {
	count := 0
	sw := sawyer.NewSwitch("ping").Long("ping").Retain(sawyer.SaveNone).
		OnMatch(func(res *sawyer.Result) error { count++; return nil })
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--ping", "--ping", "--ping"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Have("ping") {
		t.Fatalf("SAVE_NONE must never retain a value")
	}
	if count != 3 {
		t.Fatalf("expected actions to run on every occurrence, got %d", count)
	}
}

func TestSaveLastOverwritesPriorOccurrence(t *testing.T) {
	sw := sawyer.NewSwitch("mode").Long("mode").Retain(sawyer.SaveLast).
		Arg(sawyer.Argument{Name: "m", Parser: valparse.NewAny(), Required: true})
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--mode=a", "--mode=b"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	parsed := res.Parsed("mode")
	if len(parsed) != 1 {
		t.Fatalf("expected exactly one retained value, got %d", len(parsed))
	}
	if s, _ := parsed[0].Value.AsString(); s != "b" {
		t.Fatalf("got %q, want last occurrence b", s)
	}
}

func TestTerminatorStopsSwitchParsing(t *testing.T) {
	p := sawyer.NewParser("tool").Add(sawyer.NewSwitch("verbose").Long("verbose"))
	res, err := p.Parse([]string{"--", "--verbose"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Have("verbose") {
		t.Fatalf("switch-looking token after terminator must not be parsed")
	}
	if len(res.UnreachedArgs()) != 1 || res.UnreachedArgs()[0] != "--verbose" {
		t.Fatalf("got unreached=%v", res.UnreachedArgs())
	}
}

func TestPositionalOperandStopsParsing(t *testing.T) {
	// A non-switch token with no skip policy stops parsing entirely:
	// everything from that point on, including a later switch-looking
	// token, is unreached rather than parsed.
	p := sawyer.NewParser("tool").Add(sawyer.NewSwitch("verbose").Long("verbose"))
	res, err := p.Parse([]string{"input.txt", "--verbose"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Have("verbose") {
		t.Fatalf("--verbose should not have been reached")
	}
	want := []string{"input.txt", "--verbose"}
	got := res.UnparsedArgs(true)
	if len(got) != len(want) {
		t.Fatalf("got unparsed=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got unparsed=%v, want %v", got, want)
		}
	}
}

func TestSkipNonSwitchesKeepsParsingPastOperands(t *testing.T) {
	p := sawyer.NewParser("tool").Add(sawyer.NewSwitch("verbose").Long("verbose"))
	p.SkipNonSwitches = true
	res, err := p.Parse([]string{"input.txt", "--verbose"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Have("verbose") {
		t.Fatalf("expected --verbose to still be parsed when SkipNonSwitches is set")
	}
	if len(res.SkippedArgs()) != 1 || res.SkippedArgs()[0] != "input.txt" {
		t.Fatalf("got skipped=%v", res.SkippedArgs())
	}
}

func TestTerminatorIncludedInUnparsedArgsWhenRequested(t *testing.T) {
	p := sawyer.NewParser("tool").Add(sawyer.NewSwitch("width").Long("width").
		Arg(sawyer.Argument{Name: "n", Parser: valparse.NewInteger(), Required: true}))

	res, err := p.Parse([]string{"--", "--width", "7"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Have("width") {
		t.Fatalf("width must not be retained: everything follows the terminator")
	}
	want := []string{"--", "--width", "7"}
	got := res.UnparsedArgs(true)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if len(res.UnparsedArgs(false)) != 2 {
		t.Fatalf("without includeTerminators, the sentinel itself should be excluded, got %v", res.UnparsedArgs(false))
	}
}

func TestLongNameWithoutSeparatorFails(t *testing.T) {
	sw := sawyer.NewSwitch("width").Long("width").
		Arg(sawyer.Argument{Name: "n", Parser: valparse.NewInteger(), Required: true})
	p := sawyer.NewParser("tool").Add(sw)

	_, err := p.Parse([]string{"--widthabc"})
	if err == nil {
		t.Fatalf("expected a failure")
	}
}

func TestIncludedArgumentsFileIsSpliced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.txt")
	if err := os.WriteFile(path, []byte("--verbose\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := sawyer.NewParser("tool").AddIncludePrefix("@").
		Add(sawyer.NewSwitch("verbose").Long("verbose"))
	res, err := p.Parse([]string{"@" + path})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Have("verbose") {
		t.Fatalf("expected verbose retained from included file")
	}
}

func TestOptionalArgumentFallsBackToDefault(t *testing.T) {
	sw := sawyer.NewSwitch("level").Long("level").
		Arg(sawyer.Argument{Name: "n", Parser: valparse.NewInteger(), Required: false, Default: "3"})
	p := sawyer.NewParser("tool").Add(sw)

	res, err := p.Parse([]string{"--level"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pv, ok := res.First("level")
	if !ok {
		t.Fatalf("expected level retained")
	}
	if n, _ := pv.Value.AsInt64(); n != 3 {
		t.Fatalf("got %d, want default 3", n)
	}
}
