package sconfig_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sawyer-cli/sawyer/sconfig"
)

func TestLoadParsesYAMLProperties(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sawyer.yaml")
	contents := "longPrefixes: [\"--\", \"++\"]\nshortPrefixes: [\"-\"]\nseparators: [\"=\"]\ninheritShort: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := sconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	props := doc.ToParsingProperties()
	if !reflect.DeepEqual(props.LongPrefixes, []string{"--", "++"}) {
		t.Fatalf("got %v", props.LongPrefixes)
	}
	if props.InheritShort {
		t.Fatalf("expected inheritShort: false to be honored")
	}
	if !props.InheritLong {
		t.Fatalf("expected inheritLong to default true when unset")
	}
}
