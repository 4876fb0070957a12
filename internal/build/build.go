// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build orchestrates a cookbook build: validate the referenced
// recipes, expand embeds into a baked markdown file, and render the PDF.
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/vaultchef/internal/expand"
	"github.com/pdiddy/vaultchef/internal/pandoc"
	"github.com/pdiddy/vaultchef/internal/paths"
	"github.com/pdiddy/vaultchef/internal/validate"
	"github.com/pdiddy/vaultchef/pkg/types"
)

// Result reports where a build wrote its outputs.
type Result struct {
	BakedMD string
	PDF     string
}

// Cookbook builds the named cookbook. With dryRun set, the baked markdown
// is written but pandoc is not invoked.
func Cookbook(name string, cfg types.Config, dryRun, verbose bool) (Result, error) {
	project := paths.Project(cfg)

	cookbookPath := paths.CookbookPath(cfg, name)
	docs, err := RecipeDocuments(name, cfg)
	if err != nil {
		return Result{}, err
	}
	for _, doc := range docs {
		if err := validate.Recipe(doc.Markdown, doc.Source); err != nil {
			return Result{}, err
		}
	}

	baked, err := expand.Cookbook(cookbookPath, cfg.VaultPath)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(project.BuildDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating build directory: %w", err)
	}
	bakedPath := filepath.Join(project.BuildDir, name+".baked.md")
	if err := os.WriteFile(bakedPath, []byte(baked), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing baked markdown: %w", err)
	}

	pdfPath := filepath.Join(project.BuildDir, name+".pdf")
	if !dryRun {
		if err := pandoc.NewRunner().Convert(bakedPath, pdfPath, cfg, verbose); err != nil {
			return Result{}, err
		}
	}

	return Result{BakedMD: bakedPath, PDF: pdfPath}, nil
}

// RecipeDocuments reads the recipes a cookbook embeds, in embedding order.
// This is the input the shopping-list builder aggregates over.
func RecipeDocuments(name string, cfg types.Config) ([]types.RecipeDocument, error) {
	cookbookPath := paths.CookbookPath(cfg, name)
	raw, err := os.ReadFile(cookbookPath)
	if err != nil {
		return nil, fmt.Errorf("cookbook not found: %s: %w", cookbookPath, err)
	}

	var docs []types.RecipeDocument
	for _, embed := range expand.References(string(raw)) {
		recipePath, err := expand.ResolvePath(embed, cfg.VaultPath)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(recipePath)
		if err != nil {
			return nil, fmt.Errorf("reading recipe %s: %w", recipePath, err)
		}
		docs = append(docs, types.RecipeDocument{Source: recipePath, Markdown: string(content)})
	}
	return docs, nil
}
