package paramgen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTypeRule is returned when a type mapping file contains a rule without a source token.
var ErrInvalidTypeRule = errors.New("invalid type rule")

// TypeRule maps one documentation type token to a Go type.
type TypeRule struct {
	From string `yaml:"from"` // Token as written in the API documentation, e.g. "integer"
	To   string `yaml:"to"`   // Go type to emit, e.g. "int"
}

// TypeMapping is an ordered table of TypeRule entries.
// The zero value is an empty mapping which passes every token through.
type TypeMapping struct {
	rules []TypeRule
}

// typeMappingFile is the on-disk layout of a type mapping document.
type typeMappingFile struct {
	Types []TypeRule `yaml:"types"`
}

// defaultTypeRules is the built-in table. "UNIX Timestamp" has no sensible
// Go counterpart in query parameters yet, so it is left for manual completion.
var defaultTypeRules = []TypeRule{
	{From: "Bool", To: "enum.Bool"},
	{From: "integer", To: "int"},
	{From: "UNIX Timestamp", To: "TODO"},
}

// DefaultTypeMapping returns the built-in type mapping.
func DefaultTypeMapping() TypeMapping {
	return NewTypeMapping(defaultTypeRules...)
}

// NewTypeMapping builds a mapping from the given rules. Later rules win over earlier ones
// with the same source token.
func NewTypeMapping(rules ...TypeRule) TypeMapping {
	return TypeMapping{}.Extend(rules...)
}

// Lookup returns the Go type for token, or token itself if the table has no entry for it.
func (m TypeMapping) Lookup(token string) string {
	for _, rule := range m.rules {
		if rule.From == token {
			return rule.To
		}
	}
	return token
}

// Extend returns a copy of m with rules added. A rule for an existing token
// replaces the earlier target in place, keeping the original order.
func (m TypeMapping) Extend(rules ...TypeRule) TypeMapping {
	merged := make([]TypeRule, len(m.rules), len(m.rules)+len(rules))
	copy(merged, m.rules)

	for _, rule := range rules {
		replaced := false
		for i := range merged {
			if merged[i].From == rule.From {
				merged[i].To = rule.To
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, rule)
		}
	}
	return TypeMapping{rules: merged}
}

// Rules returns a copy of the rules in table order.
func (m TypeMapping) Rules() []TypeRule {
	rules := make([]TypeRule, len(m.rules))
	copy(rules, m.rules)
	return rules
}

// Len returns the number of rules in the table.
func (m TypeMapping) Len() int {
	return len(m.rules)
}

// LoadTypeMapping reads a YAML type mapping file.
//
//	types:
//	  - from: Bool
//	    to: enum.Bool
func LoadTypeMapping(path string) (TypeMapping, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return TypeMapping{}, &FileAccessError{Path: path, Err: err}
	}

	mapping, err := ParseTypeMapping(content)
	if err != nil {
		return TypeMapping{}, fmt.Errorf("failed to parse type mapping %s: %w", path, err)
	}
	return mapping, nil
}

// ParseTypeMapping parses YAML content into a TypeMapping.
func ParseTypeMapping(content []byte) (TypeMapping, error) {
	var file typeMappingFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return TypeMapping{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, rule := range file.Types {
		if rule.From == "" {
			return TypeMapping{}, fmt.Errorf("%w: rule %d has no 'from' token", ErrInvalidTypeRule, i+1)
		}
	}
	return NewTypeMapping(file.Types...), nil
}
