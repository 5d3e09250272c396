// Package sconfig loads ParsingProperties overrides from a YAML document,
// letting a deployment restyle a tool's switch syntax (e.g. swap "--"/"-"
// for "/" on Windows builds) without a recompile.
package sconfig

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/sawyer-cli/sawyer"
)

// Document is the YAML shape sconfig understands:
//
//	longPrefixes: ["--", "++"]
//	shortPrefixes: ["-"]
//	separators: ["=", " "]
//	inheritLong: true
//	inheritShort: true
//	inheritSeparators: true
type Document struct {
	LongPrefixes      []string `yaml:"longPrefixes"`
	ShortPrefixes     []string `yaml:"shortPrefixes"`
	Separators        []string `yaml:"separators"`
	InheritLong       *bool    `yaml:"inheritLong"`
	InheritShort      *bool    `yaml:"inheritShort"`
	InheritSeparators *bool    `yaml:"inheritSeparators"`
}

// Load reads and parses a YAML document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sconfig: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sconfig: parsing %s: %w", path, err)
	}
	return &doc, nil
}

// ToParsingProperties converts the document into a sawyer.ParsingProperties,
// defaulting each inherit flag to true when the document left it unset.
func (d *Document) ToParsingProperties() sawyer.ParsingProperties {
	p := sawyer.ParsingProperties{
		LongPrefixes:      d.LongPrefixes,
		ShortPrefixes:     d.ShortPrefixes,
		ValueSeparators:   d.Separators,
		InheritLong:       boolOr(d.InheritLong, true),
		InheritShort:      boolOr(d.InheritShort, true),
		InheritSeparators: boolOr(d.InheritSeparators, true),
	}
	return p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
