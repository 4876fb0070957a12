// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"errors"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		md        string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "frontmatter and body",
			md:        "---\ntitle: Soup\n---\nBody text.",
			wantTitle: "Soup",
			wantBody:  "Body text.",
		},
		{
			name:     "no frontmatter",
			md:       "Just a body.",
			wantBody: "Just a body.",
		},
		{
			name:      "crlf line endings",
			md:        "---\r\ntitle: Soup\r\n---\r\nBody.",
			wantTitle: "Soup",
			wantBody:  "Body.",
		},
		{
			name:      "bom prefix",
			md:        "\uFEFF---\ntitle: Soup\n---\nBody.",
			wantTitle: "Soup",
			wantBody:  "Body.",
		},
		{
			name:     "malformed yaml degrades to empty map",
			md:       "---\n: [unclosed\n---\nBody.",
			wantBody: "Body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := SplitFrontmatter(tt.md)
			if doc.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", doc.Body, tt.wantBody)
			}
			title, _ := doc.Frontmatter["title"].(string)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	if _, err := ParseFrontmatter("no frontmatter here"); !errors.Is(err, ErrNoFrontmatter) {
		t.Errorf("want ErrNoFrontmatter, got %v", err)
	}

	if _, err := ParseFrontmatter("---\n: [unclosed\n---\nBody."); err == nil {
		t.Error("want error for invalid YAML")
	}

	got, err := ParseFrontmatter("---\nrecipe_id: r1\ntitle: Soup\n---\nBody.")
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if got["recipe_id"] != "r1" || got["title"] != "Soup" {
		t.Errorf("frontmatter = %v", got)
	}
}

func TestExtractSections(t *testing.T) {
	md := "Intro text.\n\n## Ingredients\n- 1 tsp salt\n\n## Method\n1. Cook.\n"

	sections := ExtractSections(md, 2)
	if got := sections["Ingredients"]; got != "- 1 tsp salt" {
		t.Errorf("Ingredients = %q", got)
	}
	if got := sections["Method"]; got != "1. Cook." {
		t.Errorf("Method = %q", got)
	}
	if len(sections) != 2 {
		t.Errorf("sections = %v, want 2 entries", sections)
	}
}

func TestExtractSectionsIgnoresDeeperHeadings(t *testing.T) {
	md := "## Notes\ntext\n### Subnote\nmore\n"
	sections := ExtractSections(md, 2)
	if got := sections["Notes"]; got != "text\n### Subnote\nmore" {
		t.Errorf("Notes = %q", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "list", in: []any{"soup", "vegan"}, want: []string{"soup", "vegan"}},
		{name: "scalar", in: "soup", want: []string{"soup"}},
		{name: "numeric entries coerce", in: []any{1, "two"}, want: []string{"1", "two"}},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tag[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
