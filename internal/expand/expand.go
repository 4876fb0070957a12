// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package expand resolves the ![[...]] embeds in a cookbook note,
// splicing each referenced recipe's body in at the embed site.
package expand

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/vaultchef/internal/markdown"
)

// embedRe matches an Obsidian embed link like ![[Recipes/Carbonara]].
var embedRe = regexp.MustCompile(`!\[\[([^\]]+)\]\]`)

const (
	// boundary separates spliced recipes so the Lua filter can restart
	// page layout per recipe.
	boundary = "\n\n<!-- vaultchef:recipe:start -->\n\n"

	// imageMarkerPrefix introduces a resolved recipe image path for the
	// template to pick up.
	imageMarkerPrefix = "<!-- vaultchef:image:"
)

// Cookbook reads the cookbook note at path and replaces every embed with a
// boundary marker followed by the embedded recipe's content.
func Cookbook(path, vaultRoot string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cookbook not found: %s: %w", path, err)
	}
	text := string(raw)

	var out strings.Builder
	last := 0
	for _, m := range embedRe.FindAllStringSubmatchIndex(text, -1) {
		content, err := Embed(text[m[2]:m[3]], vaultRoot)
		if err != nil {
			return "", err
		}
		out.WriteString(text[last:m[0]])
		out.WriteString(boundary)
		out.WriteString(content)
		last = m[1]
	}
	out.WriteString(text[last:])
	return out.String(), nil
}

// Embed resolves one embed reference and returns the recipe content with
// its frontmatter title promoted to a level-two heading.
func Embed(embed, vaultRoot string) (string, error) {
	path, err := ResolvePath(embed, vaultRoot)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("embedded note not found: %s: %w", path, err)
	}

	doc := markdown.SplitFrontmatter(string(raw))
	title, _ := doc.Frontmatter["title"].(string)
	if title == "" {
		return doc.Body, nil
	}

	if marker := imageMarker(doc.Frontmatter, vaultRoot); marker != "" {
		return fmt.Sprintf("## %s\n\n%s\n\n%s", title, marker, doc.Body), nil
	}
	return fmt.Sprintf("## %s\n\n%s", title, doc.Body), nil
}

// imageMarker renders the image marker comment for a recipe whose
// frontmatter declares an image. List values use their first entry;
// relative paths resolve against the vault root.
func imageMarker(frontmatter map[string]any, vaultRoot string) string {
	image := frontmatter["image"]
	if list, ok := image.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		image = list[0]
	}
	if image == nil {
		return ""
	}
	if _, ok := image.(map[string]any); ok {
		return ""
	}

	text := strings.TrimSpace(fmt.Sprint(image))
	if text == "" {
		return ""
	}

	if !filepath.IsAbs(text) {
		text = filepath.Join(vaultRoot, text)
	}
	return fmt.Sprintf("%s%s -->", imageMarkerPrefix, filepath.ToSlash(text))
}

// ResolvePath maps an embed reference to a file under the vault root. An
// "|alias" suffix is ignored; "#section" sub-references are not supported;
// a missing .md extension is appended.
func ResolvePath(embed, vaultRoot string) (string, error) {
	target, _, _ := strings.Cut(embed, "|")
	target = strings.TrimSpace(target)
	if strings.Contains(target, "#") {
		return "", fmt.Errorf("embed references are not supported yet: %s", embed)
	}
	if !strings.HasSuffix(target, ".md") {
		target += ".md"
	}

	path := filepath.Join(vaultRoot, target)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("embedded note not found: %s: %w", path, err)
	}
	return path, nil
}

// References lists the embed targets of a cookbook note in document order.
func References(cookbookText string) []string {
	matches := embedRe.FindAllStringSubmatch(cookbookText, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}
