// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package templates

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/vaultchef/internal/validate"
)

func TestRecipeSkeletonOrdersMetadata(t *testing.T) {
	got := Recipe("soup-01", "Soup", map[string]string{
		"serves": "4",
		"course": "starter",
	})

	if !strings.HasPrefix(got, "---\nrecipe_id: soup-01\ntitle: Soup\ncourse: starter\nserves: 4\n---\n") {
		t.Errorf("frontmatter out of order:\n%s", got)
	}
	for _, section := range []string{"## Ingredients", "## Method", "## Notes"} {
		if !strings.Contains(got, section) {
			t.Errorf("skeleton missing %s", section)
		}
	}
}

func TestRecipeSkeletonOmitsEmptyMetadata(t *testing.T) {
	got := Recipe("soup-01", "Soup", nil)
	if strings.Contains(got, "course:") || strings.Contains(got, "serves:") {
		t.Errorf("empty metadata emitted:\n%s", got)
	}
}

func TestCookbookSkeleton(t *testing.T) {
	got := Cookbook("Winter", "Comfort food", "Ada", "menu-card", []string{"Recipes/Soup", "Recipes/Stew"})

	for _, want := range []string{
		"title: Winter", "subtitle: Comfort food", "author: Ada", "style: menu-card",
		"![[Recipes/Soup]]", "![[Recipes/Stew]]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("skeleton missing %q:\n%s", want, got)
		}
	}

	placeholder := Cookbook("Winter", "", "", "", nil)
	if !strings.Contains(placeholder, "![[Recipes/Example Recipe]]") {
		t.Errorf("placeholder embed missing:\n%s", placeholder)
	}
	if strings.Contains(placeholder, "subtitle:") {
		t.Errorf("empty subtitle emitted:\n%s", placeholder)
	}
}

func TestRecipeSkeletonValidatesOnceFilledIn(t *testing.T) {
	// The empty placeholder bullet does not count as content, so the bare
	// skeleton fails structural validation until it is filled in.
	skeleton := Recipe("soup-01", "Soup", nil)
	if err := validate.Recipe(skeleton, "Recipes/Soup.md"); err == nil {
		t.Error("bare skeleton validated unexpectedly")
	}

	filled := strings.Replace(skeleton, "## Ingredients\n- \n", "## Ingredients\n- 1 tsp salt\n", 1)
	filled = strings.Replace(filled, "## Method\n1. \n", "## Method\n1. Simmer.\n", 1)
	if err := validate.Recipe(filled, "Recipes/Soup.md"); err != nil {
		t.Errorf("filled skeleton does not validate: %v", err)
	}
}

func TestWriteFileRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile("one", "Soup.md", dir, false)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if path != filepath.Join(dir, "Soup.md") {
		t.Errorf("path = %q", path)
	}

	if _, err := WriteFile("two", "Soup.md", dir, false); err == nil {
		t.Fatal("overwrite succeeded without force")
	}
	if _, err := WriteFile("two", "Soup.md", dir, true); err != nil {
		t.Errorf("forced overwrite failed: %v", err)
	}
}
