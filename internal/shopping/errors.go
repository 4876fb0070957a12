// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import "fmt"

// Kind discriminates the fatal shopping-list parse failures. Lenient
// quantity/unit misses are not failures and never produce a ParseError.
type Kind int

const (
	// KindMalformedIngredientLine marks a non-blank, non-bullet line in an
	// Ingredients section.
	KindMalformedIngredientLine Kind = iota

	// KindEmptyIngredientLine marks a bullet with no content after the marker.
	KindEmptyIngredientLine

	// KindUnparseableIngredientName marks a line whose normalized name is
	// empty, e.g. a line that was only a parenthetical.
	KindUnparseableIngredientName

	// KindAggregationConsistencyViolation marks an input item that is not
	// represented in the aggregated output. It should never fire in correct
	// code; it converts silent aggregation bugs into loud failures.
	KindAggregationConsistencyViolation
)

func (k Kind) String() string {
	switch k {
	case KindMalformedIngredientLine:
		return "malformed ingredient line"
	case KindEmptyIngredientLine:
		return "empty ingredient line"
	case KindUnparseableIngredientName:
		return "unparseable ingredient name"
	case KindAggregationConsistencyViolation:
		return "aggregation consistency violation"
	}
	return "unknown"
}

// ParseError is a fatal shopping-list parse failure. It carries the source
// identifier and 1-based line number of the offending ingredient line.
// These are deterministic content errors: the first one aborts the build
// and no partial list is returned.
type ParseError struct {
	Kind   Kind
	Source string
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindMalformedIngredientLine:
		return fmt.Sprintf("%s: ingredients line %d is not a bullet: %q", e.Source, e.Line, e.Detail)
	case KindEmptyIngredientLine:
		return fmt.Sprintf("%s: ingredients line %d is empty", e.Source, e.Line)
	case KindUnparseableIngredientName:
		return fmt.Sprintf("%s: ingredients line %d has no parseable ingredient name: %q", e.Source, e.Line, e.Detail)
	case KindAggregationConsistencyViolation:
		return fmt.Sprintf("%s: ingredients line %d not represented in shopping list: %q", e.Source, e.Line, e.Detail)
	}
	return fmt.Sprintf("%s: ingredients line %d: %s", e.Source, e.Line, e.Detail)
}
