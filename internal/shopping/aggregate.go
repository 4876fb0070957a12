// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import (
	"sort"
	"strings"
)

// bucketKey groups items that may merge: same normalized name, same unit
// (or both unitless), same quantity-presence. Items with the same name but
// different recognized units never share a bucket; there is no cross-system
// unit conversion.
type bucketKey struct {
	key   string
	unit  Unit
	noQty bool
}

// aggregate merges items into buckets and renders one line per bucket.
// The first item establishing a bucket fixes its display name and unit;
// later quantified items add exactly, and quantity-less duplicates
// deduplicate without counting. Output is sorted by
// (key, unit, lowercased display name); buckets that tie on the full sort
// key (the quantified and quantity-less buckets of one ingredient) keep
// their first-established order, so identical input always yields
// identical output.
func aggregate(items []Item) []string {
	merged := make(map[bucketKey]*Item, len(items))
	buckets := make([]*Item, 0, len(items))
	for _, item := range items {
		k := bucketKey{key: item.Key, unit: item.Unit, noQty: item.Quantity == nil}

		existing, ok := merged[k]
		if !ok {
			rep := item
			if item.Quantity != nil {
				q := *item.Quantity
				rep.Quantity = &q
			}
			merged[k] = &rep
			buckets = append(buckets, &rep)
			continue
		}

		if existing.Quantity != nil && item.Quantity != nil {
			sum := existing.Quantity.Add(*item.Quantity)
			existing.Quantity = &sum
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	lines := make([]string, 0, len(buckets))
	for _, item := range buckets {
		lines = append(lines, formatItem(*item))
	}
	return lines
}

// formatItem renders one bucket: "name", "qty name", or "qty unit name".
func formatItem(item Item) string {
	if item.Quantity == nil {
		return item.Name
	}
	qty := item.Quantity.String()
	if item.Unit != "" {
		return qty + " " + string(item.Unit) + " " + item.Name
	}
	return qty + " " + item.Name
}
