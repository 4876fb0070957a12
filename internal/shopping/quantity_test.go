// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shopping

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Quantity
		ok   bool
	}{
		{name: "integer", text: "3", want: Quantity{3, 1}, ok: true},
		{name: "decimal half", text: "1.5", want: Quantity{3, 2}, ok: true},
		{name: "decimal eighth", text: "0.125", want: Quantity{1, 8}, ok: true},
		{name: "decimal quarter", text: "2.25", want: Quantity{9, 4}, ok: true},
		{name: "repeating decimal clamps to sixteenth bound", text: "0.333", want: Quantity{1, 3}, ok: true},
		{name: "two thirds approximation", text: "0.666", want: Quantity{2, 3}, ok: true},
		{name: "simple fraction", text: "1/2", want: Quantity{1, 2}, ok: true},
		{name: "unreduced fraction", text: "2/4", want: Quantity{1, 2}, ok: true},
		{name: "sixteenth", text: "7/16", want: Quantity{7, 16}, ok: true},
		{name: "mixed number", text: "2 1/2", want: Quantity{5, 2}, ok: true},
		{name: "mixed number reduces", text: "1 2/4", want: Quantity{3, 2}, ok: true},
		{name: "zero denominator degrades", text: "3/0", ok: false},
		{name: "non-integer fraction operand degrades", text: "a/2", ok: false},
		{name: "empty", text: "", ok: false},
		{name: "plain word", text: "salt", ok: false},
		{name: "surrounding whitespace", text: "  4  ", want: Quantity{4, 1}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseQuantity(tt.text)
			if ok != tt.ok {
				t.Fatalf("parseQuantity(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseQuantity(%q) = %d/%d, want %d/%d", tt.text, got.Num, got.Den, tt.want.Num, tt.want.Den)
			}
		})
	}
}

func TestQuantityAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Quantity
		want Quantity
	}{
		{name: "integers", a: Quantity{1, 1}, b: Quantity{2, 1}, want: Quantity{3, 1}},
		{name: "halves make whole", a: Quantity{1, 2}, b: Quantity{1, 2}, want: Quantity{1, 1}},
		{name: "mixed denominators", a: Quantity{1, 3}, b: Quantity{1, 6}, want: Quantity{1, 2}},
		{name: "result stays reduced", a: Quantity{3, 4}, b: Quantity{3, 4}, want: Quantity{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b)
			if !got.Equal(tt.want) {
				t.Errorf("%d/%d + %d/%d = %d/%d, want %d/%d",
					tt.a.Num, tt.a.Den, tt.b.Num, tt.b.Den, got.Num, got.Den, tt.want.Num, tt.want.Den)
			}
		})
	}
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{name: "whole number", q: Quantity{3, 1}, want: "3"},
		{name: "proper fraction", q: Quantity{1, 2}, want: "1/2"},
		{name: "improper fraction", q: Quantity{3, 2}, want: "1 1/2"},
		{name: "larger mixed", q: Quantity{9, 4}, want: "2 1/4"},
		{name: "zero", q: Quantity{0, 1}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		token string
		want  Unit
		ok    bool
	}{
		{token: "tbsp", want: UnitTbsp, ok: true},
		{token: "Tablespoons", want: UnitTbsp, ok: true},
		{token: "grams", want: UnitGram, ok: true},
		{token: "g.", want: UnitGram, ok: true},
		{token: "cups,", want: UnitCup, ok: true},
		{token: "tins", want: UnitCan, ok: true},
		{token: "litres", want: UnitLiter, ok: true},
		{token: "handful", ok: false},
		{token: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := normalizeUnit(tt.token)
			if ok != tt.ok || got != tt.want {
				t.Errorf("normalizeUnit(%q) = (%q, %v), want (%q, %v)", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}
