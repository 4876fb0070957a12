// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package templates renders skeleton notes and project files so new
// recipes, cookbooks, and projects start with the structure the build
// expects.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// recipeMetaKeys is the frontmatter key order for optional recipe metadata.
var recipeMetaKeys = []string{
	"course", "category", "cuisine", "serves", "prep", "cook", "rest", "menu", "source",
}

// Recipe renders a recipe note skeleton. meta supplies optional
// frontmatter fields; empty values are omitted.
func Recipe(recipeID, title string, meta map[string]string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "recipe_id: %s\n", recipeID)
	fmt.Fprintf(&b, "title: %s\n", title)
	for _, key := range recipeMetaKeys {
		if meta[key] != "" {
			fmt.Fprintf(&b, "%s: %s\n", key, meta[key])
		}
	}
	b.WriteString("---\n\n## Ingredients\n- \n\n## Method\n1. \n\n## Notes\n- \n")
	return b.String()
}

// Cookbook renders a cookbook note skeleton embedding the given recipes.
// With no embeds, a placeholder embed is emitted.
func Cookbook(title, subtitle, author, style string, embeds []string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", title)
	if subtitle != "" {
		fmt.Fprintf(&b, "subtitle: %s\n", subtitle)
	}
	if author != "" {
		fmt.Fprintf(&b, "author: %s\n", author)
	}
	if style != "" {
		fmt.Fprintf(&b, "style: %s\n", style)
	}
	b.WriteString("---\n\n# Recipes\n")
	if len(embeds) == 0 {
		b.WriteString("![[Recipes/Example Recipe]]\n")
	}
	for _, embed := range embeds {
		fmt.Fprintf(&b, "![[%s]]\n", embed)
	}
	return b.String()
}

// ProjectConfig renders a starter vaultchef.yaml for a new project.
func ProjectConfig(vaultPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "vault_path: %s\n", vaultPath)
	b.WriteString("recipes_dir: Recipes\n")
	b.WriteString("cookbooks_dir: Cookbooks\n")
	b.WriteString("build_dir: build\n")
	b.WriteString("cache_dir: cache\n")
	b.WriteString("\npandoc:\n")
	b.WriteString("  pdf_engine: lualatex\n")
	b.WriteString("  template: templates/cookbook.tex\n")
	b.WriteString("  lua_filter: filters/recipe.lua\n")
	b.WriteString("  style_dir: templates\n")
	b.WriteString("\nstyle:\n")
	b.WriteString("  theme: menu-card\n")
	return b.String()
}

// WriteFile writes content to dir/filename, refusing to overwrite an
// existing file unless force is set. Returns the written path.
func WriteFile(content, filename, dir string, force bool) (string, error) {
	path := filepath.Join(dir, filename)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("file already exists: %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
