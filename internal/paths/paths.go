// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paths resolves the vault and project directory layout from the
// effective configuration.
package paths

import (
	"path/filepath"

	"github.com/pdiddy/vaultchef/pkg/types"
)

// VaultPaths locates the content directories inside the vault.
type VaultPaths struct {
	Root         string
	RecipesDir   string
	CookbooksDir string
}

// ProjectPaths locates build inputs and outputs under the project root.
type ProjectPaths struct {
	Root          string
	BuildDir      string
	CacheDir      string
	TemplatePath  string
	LuaFilterPath string
	StyleDir      string
}

// Vault resolves the vault layout.
func Vault(cfg types.Config) VaultPaths {
	return VaultPaths{
		Root:         cfg.VaultPath,
		RecipesDir:   filepath.Join(cfg.VaultPath, cfg.RecipesDir),
		CookbooksDir: filepath.Join(cfg.VaultPath, cfg.CookbooksDir),
	}
}

// Project resolves the project layout. Relative template and filter paths
// resolve against the project root; absolute ones are kept as-is.
func Project(cfg types.Config) ProjectPaths {
	root := cfg.ProjectDir
	if root == "" {
		root = "."
	}
	return ProjectPaths{
		Root:          root,
		BuildDir:      filepath.Join(root, cfg.BuildDir),
		CacheDir:      filepath.Join(root, cfg.CacheDir),
		TemplatePath:  resolve(root, cfg.Pandoc.Template),
		LuaFilterPath: resolve(root, cfg.Pandoc.LuaFilter),
		StyleDir:      resolve(root, cfg.Pandoc.StyleDir),
	}
}

// CookbookPath is the cookbook note path for a cookbook name.
func CookbookPath(cfg types.Config, name string) string {
	return filepath.Join(Vault(cfg).CookbooksDir, name+".md")
}

func resolve(root, rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}
