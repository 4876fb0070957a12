// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import "strings"

// verifyRepresentation audits the aggregation: every input item's key must
// be re-derivable from some emitted line. A failure means a bucketing bug
// silently dropped an item, and it names the offending source and line.
func verifyRepresentation(items []Item, lines []string) error {
	outputKeys := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		outputKeys[lineKey(line)] = struct{}{}
	}

	for _, item := range items {
		if _, ok := outputKeys[item.Key]; !ok {
			return &ParseError{
				Kind:   KindAggregationConsistencyViolation,
				Source: item.Source,
				Line:   item.Line,
				Detail: item.Name,
			}
		}
	}
	return nil
}

// lineKey re-derives the aggregation key that parsing an emitted
// shopping-list line back would produce.
func lineKey(line string) string {
	text := strings.TrimSpace(line)
	if text == "" {
		return ""
	}

	if m := quantityRe.FindStringSubmatch(text); m != nil {
		rest := strings.TrimSpace(m[2])
		if rest != "" {
			token, tail, _ := strings.Cut(rest, " ")
			if _, ok := normalizeUnit(token); ok && strings.TrimSpace(tail) != "" {
				return normalizeName(strings.TrimSpace(tail))
			}
			return normalizeName(rest)
		}
	}
	return normalizeName(text)
}
