// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"strings"
	"testing"
)

const validRecipe = `---
recipe_id: soup-01
title: Soup
---

## Ingredients
- 1 tsp salt

## Method
1. Simmer.
`

func TestRecipe(t *testing.T) {
	tests := []struct {
		name   string
		md     string
		errMsg string
	}{
		{name: "valid recipe", md: validRecipe},
		{
			name:   "missing frontmatter",
			md:     "## Ingredients\n- salt\n\n## Method\n1. Cook.\n",
			errMsg: "missing YAML frontmatter",
		},
		{
			name:   "missing required keys",
			md:     "---\ntitle: Soup\n---\n\n## Ingredients\n- salt\n\n## Method\n1. Cook.\n",
			errMsg: "missing required frontmatter keys",
		},
		{
			name:   "missing method section",
			md:     "---\nrecipe_id: r1\ntitle: Soup\n---\n\n## Ingredients\n- salt\n",
			errMsg: "missing required sections",
		},
		{
			name:   "no bullet in ingredients",
			md:     "---\nrecipe_id: r1\ntitle: Soup\n---\n\n## Ingredients\nsalt\n\n## Method\n1. Cook.\n",
			errMsg: "at least one bullet",
		},
		{
			name:   "no numbered step in method",
			md:     "---\nrecipe_id: r1\ntitle: Soup\n---\n\n## Ingredients\n- salt\n\n## Method\nCook it.\n",
			errMsg: "at least one numbered step",
		},
		{
			name:   "invalid yaml frontmatter",
			md:     "---\n: [unclosed\n---\n\n## Ingredients\n- salt\n\n## Method\n1. Cook.\n",
			errMsg: "invalid YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Recipe(tt.md, "Recipes/Soup.md")
			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("Recipe: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Recipe succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
			if !strings.Contains(err.Error(), "Recipes/Soup.md") {
				t.Errorf("error %q does not cite the source path", err)
			}
		})
	}
}
