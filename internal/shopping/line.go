// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import (
	"regexp"
	"strings"
)

var (
	// bulletRe matches an ingredient bullet and captures its content.
	bulletRe = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)

	// quantityRe captures a leading numeric token run: a mixed number, a
	// bare fraction, or an integer/decimal, followed by the rest of the line.
	quantityRe = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)\b\s*(.*)$`)

	// parensRe matches parenthesized asides, which carry per-component
	// notes ("(80 g pastry, 40 g filling)") and never identify the ingredient.
	parensRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// Item is one parsed ingredient line with provenance. Items are immutable
// once parsed.
type Item struct {
	// Quantity is the exact parsed quantity, or nil when the line has no
	// parseable numeric prefix.
	Quantity *Quantity

	// Unit is the canonical unit, or empty when none was recognized.
	Unit Unit

	// Name is the case-preserving display name.
	Name string

	// Key is the lowercase normalized name used to group identical
	// ingredients across recipes.
	Key string

	// Source and Line locate the original ingredient line for error
	// reporting. Line is 1-based within the Ingredients section.
	Source string
	Line   int
}

// parseLine parses one bullet-stripped ingredient line. A numeric prefix
// that fails to parse, or a unit token with no name after it, degrades
// leniently; only empty content and an empty normalized name are fatal.
func parseLine(content, source string, lineNumber int) (Item, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return Item{}, &ParseError{Kind: KindEmptyIngredientLine, Source: source, Line: lineNumber}
	}

	var qty *Quantity
	var unit Unit
	name := text

	if m := quantityRe.FindStringSubmatch(text); m != nil {
		if q, ok := parseQuantity(m[1]); ok {
			qty = &q
		}
		rest := strings.TrimSpace(m[2])
		if rest != "" {
			token, tail, _ := strings.Cut(rest, " ")
			candidate, ok := normalizeUnit(token)
			if ok && strings.TrimSpace(tail) != "" {
				unit = candidate
				name = strings.TrimSpace(tail)
			} else {
				name = rest
			}
		}
	}

	key := normalizeName(name)
	if key == "" {
		return Item{}, &ParseError{Kind: KindUnparseableIngredientName, Source: source, Line: lineNumber, Detail: text}
	}

	return Item{
		Quantity: qty,
		Unit:     unit,
		Name:     displayName(name),
		Key:      key,
		Source:   source,
		Line:     lineNumber,
	}, nil
}

// normalizeName produces the aggregation key: lowercased, parentheticals
// removed, edge punctuation stripped, internal whitespace collapsed.
func normalizeName(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	lowered = parensRe.ReplaceAllString(lowered, " ")
	lowered = strings.Trim(lowered, " ,.;:")
	return strings.TrimSpace(spaceRe.ReplaceAllString(lowered, " "))
}

// displayName applies the same cleanup as normalizeName but preserves case.
func displayName(text string) string {
	clean := parensRe.ReplaceAllString(text, " ")
	clean = strings.Trim(clean, " ,.;:")
	return strings.TrimSpace(spaceRe.ReplaceAllString(clean, " "))
}
