// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import "strings"

// Unit is a canonical measurement unit. The empty string means the line
// carried no recognized unit.
type Unit string

const (
	UnitTsp    Unit = "tsp"
	UnitTbsp   Unit = "tbsp"
	UnitGram   Unit = "g"
	UnitKilo   Unit = "kg"
	UnitMilli  Unit = "ml"
	UnitLiter  Unit = "l"
	UnitCup    Unit = "cup"
	UnitOunce  Unit = "oz"
	UnitPound  Unit = "lb"
	UnitClove  Unit = "clove"
	UnitCan    Unit = "can"
	UnitPacket Unit = "packet"
)

// unitAliases maps lowercase spellings, abbreviations, and plurals to their
// canonical unit. Built once; read-only afterwards.
var unitAliases = map[string]Unit{
	"tsp":         UnitTsp,
	"teaspoon":    UnitTsp,
	"teaspoons":   UnitTsp,
	"tbsp":        UnitTbsp,
	"tablespoon":  UnitTbsp,
	"tablespoons": UnitTbsp,
	"g":           UnitGram,
	"gram":        UnitGram,
	"grams":       UnitGram,
	"kg":          UnitKilo,
	"kilogram":    UnitKilo,
	"kilograms":   UnitKilo,
	"ml":          UnitMilli,
	"milliliter":  UnitMilli,
	"milliliters": UnitMilli,
	"millilitre":  UnitMilli,
	"millilitres": UnitMilli,
	"l":           UnitLiter,
	"liter":       UnitLiter,
	"liters":      UnitLiter,
	"litre":       UnitLiter,
	"litres":      UnitLiter,
	"cup":         UnitCup,
	"cups":        UnitCup,
	"oz":          UnitOunce,
	"ounce":       UnitOunce,
	"ounces":      UnitOunce,
	"lb":          UnitPound,
	"lbs":         UnitPound,
	"pound":       UnitPound,
	"pounds":      UnitPound,
	"clove":       UnitClove,
	"cloves":      UnitClove,
	"can":         UnitCan,
	"cans":        UnitCan,
	"tin":         UnitCan,
	"tins":        UnitCan,
	"packet":      UnitPacket,
	"packets":     UnitPacket,
}

// normalizeUnit maps a single token to its canonical unit, stripping
// trailing punctuation and case. Unknown tokens report false; that is a
// lenient miss, not an error.
func normalizeUnit(token string) (Unit, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(token))
	cleaned = strings.TrimRight(cleaned, ".,")
	unit, ok := unitAliases[cleaned]
	return unit, ok
}
