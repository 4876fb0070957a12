// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks recipe notes for the structure a cookbook build
// expects: identifying frontmatter plus Ingredients and Method sections.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/vaultchef/internal/markdown"
)

var numberedStepRe = regexp.MustCompile(`^\s*\d+\.\s+`)

// Recipe validates one recipe note. Failures carry the source path; they
// are deterministic content errors.
func Recipe(md, sourcePath string) error {
	front, err := markdown.ParseFrontmatter(md)
	if err != nil {
		if errors.Is(err, markdown.ErrNoFrontmatter) {
			return fmt.Errorf("%s: missing YAML frontmatter", sourcePath)
		}
		return fmt.Errorf("%s: %w", sourcePath, err)
	}
	if front["recipe_id"] == nil || front["title"] == nil {
		return fmt.Errorf("%s: missing required frontmatter keys", sourcePath)
	}

	sections := markdown.ExtractSections(md, 2)
	ingredients, hasIngredients := sections["Ingredients"]
	method, hasMethod := sections["Method"]
	if !hasIngredients || !hasMethod {
		return fmt.Errorf("%s: missing required sections", sourcePath)
	}

	if !hasBullet(ingredients) {
		return fmt.Errorf("%s: ingredients must include at least one bullet", sourcePath)
	}
	if !hasNumberedStep(method) {
		return fmt.Errorf("%s: method must include at least one numbered step", sourcePath)
	}
	return nil
}

func hasBullet(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ ") {
			return true
		}
	}
	return false
}

func hasNumberedStep(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if numberedStepRe.MatchString(line) {
			return true
		}
	}
	return false
}
