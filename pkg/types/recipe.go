// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures exchanged between the
// vaultchef stages: recipe and cookbook summaries, the documents fed to the
// shopping-list builder, and the resolved configuration.
package types

// RecipeDocument is one recipe note as referenced by a cookbook, in
// embedding order. Source identifies the note in error messages; Markdown
// is the raw note content including frontmatter.
type RecipeDocument struct {
	Source   string
	Markdown string
}

// RecipeSummary is the frontmatter digest of a recipe note, used for
// listings.
type RecipeSummary struct {
	// RecipeID is the stable identifier from frontmatter. Empty when the
	// note omits it.
	RecipeID string `json:"recipe_id" yaml:"recipe_id"`

	// Title is the recipe title from frontmatter.
	Title string `json:"title" yaml:"title"`

	// Path is the note's location on disk.
	Path string `json:"path" yaml:"path"`

	// Category is the frontmatter category, if any.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Tags are the normalized frontmatter tags.
	Tags []string `json:"tags" yaml:"tags"`
}

// CookbookSummary identifies a cookbook note in the vault.
type CookbookSummary struct {
	// Title is the cookbook title from frontmatter.
	Title string `json:"title" yaml:"title"`

	// Stem is the note filename without the .md extension; it names the
	// build outputs.
	Stem string `json:"stem" yaml:"stem"`

	// Path is the note's location on disk.
	Path string `json:"path" yaml:"path"`
}
