// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown splits recipe notes into YAML frontmatter and body and
// extracts heading-delimited sections from the body.
package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// frontmatterRe matches a leading YAML frontmatter block, tolerating a BOM
// and CRLF line endings.
var frontmatterRe = regexp.MustCompile(`(?s)^\x{FEFF}?\s*---\r?\n(.*?)\r?\n---\r?\n`)

// ErrNoFrontmatter reports a note with no leading frontmatter block.
var ErrNoFrontmatter = errors.New("missing YAML frontmatter")

// Document is a recipe or cookbook note split into frontmatter and body.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

// SplitFrontmatter separates the leading YAML frontmatter from the body.
// Missing, malformed, or non-mapping frontmatter degrades to an empty map;
// callers that need to distinguish those cases use ParseFrontmatter.
func SplitFrontmatter(md string) Document {
	m := frontmatterRe.FindStringSubmatchIndex(md)
	if m == nil {
		return Document{Frontmatter: map[string]any{}, Body: md}
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(md[m[2]:m[3]]), &data); err != nil || data == nil {
		data = map[string]any{}
	}
	return Document{Frontmatter: data, Body: md[m[1]:]}
}

// ParseFrontmatter returns the frontmatter mapping, or an error when the
// block is missing, is invalid YAML, or is not a mapping.
func ParseFrontmatter(md string) (map[string]any, error) {
	m := frontmatterRe.FindStringSubmatch(md)
	if m == nil {
		return nil, ErrNoFrontmatter
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(m[1]), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML frontmatter: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// ExtractSections splits the body into sections keyed by heading text at
// the given heading level. Text before the first heading is discarded;
// section bodies are trimmed.
func ExtractSections(md string, headingLevel int) map[string]string {
	prefix := strings.Repeat("#", headingLevel) + " "
	collected := map[string][]string{}
	current := ""
	seen := false

	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, prefix) {
			current = strings.TrimSpace(line[len(prefix):])
			collected[current] = nil
			seen = true
			continue
		}
		if seen {
			collected[current] = append(collected[current], line)
		}
	}

	sections := make(map[string]string, len(collected))
	for name, lines := range collected {
		sections[name] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return sections
}

// NormalizeTags coerces a frontmatter tags value (scalar or list) into a
// string slice.
func NormalizeTags(tags any) []string {
	switch v := tags.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, tag := range v {
			out = append(out, fmt.Sprint(tag))
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
