// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import (
	"fmt"
	"strconv"
	"strings"
)

// maxQuantityDenominator bounds the denominators produced when a decimal
// quantity does not reduce to a terminating fraction. Sixteenths are the
// finest granularity common cooking measures use.
const maxQuantityDenominator = 16

// Quantity is an exact non-negative rational, kept GCD-reduced. Quantities
// are summed across many recipes, so they are never represented as binary
// floating point.
type Quantity struct {
	Num int64
	Den int64
}

func newQuantity(num, den int64) Quantity {
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}
	return Quantity{Num: num, Den: den}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Add returns the exact sum of two quantities.
func (q Quantity) Add(o Quantity) Quantity {
	return newQuantity(q.Num*o.Den+o.Num*q.Den, q.Den*o.Den)
}

// Equal reports whether two reduced quantities represent the same value.
func (q Quantity) Equal(o Quantity) bool {
	return q.Num == o.Num && q.Den == o.Den
}

// String renders the quantity the way a shopping list reads: whole numbers
// plainly, proper fractions as "n/d", and improper ones as "w n/d".
func (q Quantity) String() string {
	if q.Den == 1 {
		return strconv.FormatInt(q.Num, 10)
	}
	whole := q.Num / q.Den
	if whole == 0 {
		return fmt.Sprintf("%d/%d", q.Num, q.Den)
	}
	return fmt.Sprintf("%d %d/%d", whole, q.Num-whole*q.Den, q.Den)
}

// parseQuantity parses the leading numeric token run of an ingredient line:
// an integer, a decimal, "n/d", or a mixed number "w n/d". It never fails
// hard; anything unparseable (including zero denominators) reports false so
// the whole line degrades to a quantity-less name.
func parseQuantity(text string) (Quantity, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Quantity{}, false
	}

	if strings.Contains(text, " ") && strings.Contains(text, "/") {
		wholeText, fracText, _ := strings.Cut(text, " ")
		whole, ok := parseQuantity(wholeText)
		if !ok {
			return Quantity{}, false
		}
		frac, ok := parseQuantity(fracText)
		if !ok {
			return Quantity{}, false
		}
		return whole.Add(frac), true
	}

	if strings.Contains(text, "/") {
		numText, denText, _ := strings.Cut(text, "/")
		num, err := strconv.ParseInt(numText, 10, 64)
		if err != nil {
			return Quantity{}, false
		}
		den, err := strconv.ParseInt(denText, 10, 64)
		if err != nil || den == 0 {
			return Quantity{}, false
		}
		return newQuantity(num, den), true
	}

	return parseDecimal(text)
}

// parseDecimal converts an integer or decimal literal into an exact
// fraction without going through floating point, then clamps the
// denominator to the cooking-measurement bound.
func parseDecimal(text string) (Quantity, bool) {
	intText, fracText, hasDot := strings.Cut(text, ".")
	whole, err := strconv.ParseInt(intText, 10, 64)
	if err != nil {
		return Quantity{}, false
	}
	if !hasDot {
		return Quantity{Num: whole, Den: 1}, true
	}
	if fracText == "" {
		return Quantity{}, false
	}

	frac, err := strconv.ParseInt(fracText, 10, 64)
	if err != nil {
		return Quantity{}, false
	}
	den := int64(1)
	for i := 0; i < len(fracText); i++ {
		if den > 1<<58 {
			return Quantity{}, false
		}
		den *= 10
	}
	q := newQuantity(whole*den+frac, den)
	return q.limitDenominator(maxQuantityDenominator), true
}

// limitDenominator returns the closest quantity whose denominator does not
// exceed max, via continued-fraction convergents. Ties go to the
// lower-denominator bound, matching how decimal quantities have always
// rounded here.
func (q Quantity) limitDenominator(max int64) Quantity {
	if q.Den <= max {
		return q
	}

	p0, q0, p1, q1 := int64(0), int64(1), int64(1), int64(0)
	n, d := q.Num, q.Den
	for {
		a := n / d
		next := q0 + a*q1
		if next > max {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, next
		n, d = d, n-a*d
	}

	k := (max - q0) / q1
	first := Quantity{Num: p0 + k*p1, Den: q0 + k*q1}
	second := Quantity{Num: p1, Den: q1}
	if distanceCompare(second, first, q) <= 0 {
		return newQuantity(second.Num, second.Den)
	}
	return newQuantity(first.Num, first.Den)
}

// distanceCompare orders candidates a and b by their distance to target:
// negative when a is closer, zero on a tie.
func distanceCompare(a, b, target Quantity) int {
	da := abs64(a.Num*target.Den-target.Num*a.Den) * b.Den
	db := abs64(b.Num*target.Den-target.Num*b.Den) * a.Den
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	}
	return 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
