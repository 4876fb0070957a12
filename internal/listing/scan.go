// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing enumerates the recipes in a vault, backed by a SQLite
// index so repeated listings skip re-parsing unchanged notes.
package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/vaultchef/internal/markdown"
	"github.com/pdiddy/vaultchef/pkg/types"
)

// Filter narrows a listing by frontmatter fields. Zero values match
// everything.
type Filter struct {
	Tag      string
	Category string
}

func (f Filter) matches(rec types.RecipeSummary) bool {
	if f.Tag != "" {
		found := false
		for _, tag := range rec.Tags {
			if tag == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(rec.Category, f.Category) {
		return false
	}
	return true
}

// Scan walks recipesDir and parses every note's frontmatter into a
// summary, sorted by path. Notes without frontmatter are skipped. A
// missing directory yields an empty listing, not an error.
func Scan(recipesDir string, filter Filter) ([]types.RecipeSummary, error) {
	paths, err := RecipePaths(recipesDir)
	if err != nil {
		return nil, err
	}

	var recipes []types.RecipeSummary
	for _, path := range paths {
		rec, ok := summarize(path)
		if !ok {
			continue
		}
		if filter.matches(rec) {
			recipes = append(recipes, rec)
		}
	}
	return recipes, nil
}

// RecipePaths returns every markdown file under recipesDir, sorted. A
// missing directory yields an empty slice rather than an error.
func RecipePaths(recipesDir string) ([]string, error) {
	if _, err := os.Stat(recipesDir); err != nil {
		return nil, nil
	}

	var paths []string
	err := filepath.WalkDir(recipesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", recipesDir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Cookbooks enumerates the cookbook notes in the vault, sorted by path.
// Notes without a frontmatter title fall back to their filename stem.
func Cookbooks(cookbooksDir string) ([]types.CookbookSummary, error) {
	paths, err := RecipePaths(cookbooksDir)
	if err != nil {
		return nil, err
	}

	cookbooks := make([]types.CookbookSummary, 0, len(paths))
	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), ".md")

		title := stem
		if raw, err := os.ReadFile(path); err == nil {
			doc := markdown.SplitFrontmatter(string(raw))
			if t := stringField(doc.Frontmatter, "title"); t != "" {
				title = t
			}
		}
		cookbooks = append(cookbooks, types.CookbookSummary{Title: title, Stem: stem, Path: path})
	}
	return cookbooks, nil
}

// summarize reads one note's frontmatter. Unreadable files and notes with
// no frontmatter report false.
func summarize(path string) (types.RecipeSummary, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.RecipeSummary{}, false
	}

	doc := markdown.SplitFrontmatter(string(raw))
	if len(doc.Frontmatter) == 0 {
		return types.RecipeSummary{}, false
	}

	return types.RecipeSummary{
		RecipeID: stringField(doc.Frontmatter, "recipe_id"),
		Title:    stringField(doc.Frontmatter, "title"),
		Path:     path,
		Category: stringField(doc.Frontmatter, "category"),
		Tags:     markdown.NormalizeTags(doc.Frontmatter["tags"]),
	}, true
}

func stringField(front map[string]any, key string) string {
	if front[key] == nil {
		return ""
	}
	return fmt.Sprint(front[key])
}
