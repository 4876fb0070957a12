// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shopping turns the ingredient sections of a cookbook's recipes
// into one deduplicated, unit-aware shopping list with exact rational
// quantity arithmetic.
package shopping

import (
	"strings"

	"github.com/pdiddy/vaultchef/internal/markdown"
	"github.com/pdiddy/vaultchef/pkg/types"
)

const ingredientsSection = "Ingredients"

// BuildList aggregates the ingredient lines of every recipe document into
// sorted shopping-list lines. Documents must arrive in cookbook-embedding
// order; the merge is order-sensitive because the first item seen for a
// bucket fixes its display spelling. The first parse failure aborts the
// build; no partial list is returned.
func BuildList(docs []types.RecipeDocument) ([]string, error) {
	var items []Item
	for _, doc := range docs {
		parsed, err := extractItems(doc.Markdown, doc.Source)
		if err != nil {
			return nil, err
		}
		items = append(items, parsed...)
	}

	lines := aggregate(items)
	if err := verifyRepresentation(items, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// extractItems parses the Ingredients section of one recipe note. Blank
// lines between bullets are tolerated spacers; any other non-bullet line
// is fatal.
func extractItems(recipeMD, source string) ([]Item, error) {
	doc := markdown.SplitFrontmatter(recipeMD)
	sections := markdown.ExtractSections(doc.Body, 2)
	ingredients := sections[ingredientsSection]
	if ingredients == "" {
		return nil, nil
	}

	var items []Item
	for idx, line := range strings.Split(ingredients, "\n") {
		lineNumber := idx + 1
		m := bulletRe.FindStringSubmatch(line)
		if m == nil {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return nil, &ParseError{
					Kind:   KindMalformedIngredientLine,
					Source: source,
					Line:   lineNumber,
					Detail: trimmed,
				}
			}
			continue
		}

		item, err := parseLine(m[1], source, lineNumber)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
