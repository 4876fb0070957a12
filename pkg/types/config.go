// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PandocConfig holds settings for the pandoc invocation that renders a
// baked cookbook into a PDF.
type PandocConfig struct {
	// PDFEngine is the LaTeX engine pandoc drives (default "lualatex").
	PDFEngine string `json:"pdf_engine" yaml:"pdf_engine"`

	// Template is the pandoc template path, relative to the project root.
	Template string `json:"template" yaml:"template"`

	// LuaFilter is the recipe Lua filter path, relative to the project root.
	LuaFilter string `json:"lua_filter" yaml:"lua_filter"`

	// StyleDir is the directory holding templates and style assets.
	StyleDir string `json:"style_dir" yaml:"style_dir"`

	// PandocPath is the pandoc binary (default "pandoc").
	PandocPath string `json:"pandoc_path" yaml:"pandoc_path"`
}

// StyleConfig selects the visual theme passed to pandoc as metadata.
type StyleConfig struct {
	Theme string `json:"theme" yaml:"theme"`
}

// TexConfig controls the TeX dependency probe.
type TexConfig struct {
	// CheckOnStartup runs the TeX dependency check before the first build.
	CheckOnStartup bool `json:"check_on_startup" yaml:"check_on_startup"`
}

// Config is the effective vaultchef configuration after merging config
// files, environment, and flags.
type Config struct {
	// VaultPath is the Obsidian vault root. Required.
	VaultPath string `json:"vault_path" yaml:"vault_path"`

	// RecipesDir is the recipe directory inside the vault (default "Recipes").
	RecipesDir string `json:"recipes_dir" yaml:"recipes_dir"`

	// CookbooksDir is the cookbook directory inside the vault (default "Cookbooks").
	CookbooksDir string `json:"cookbooks_dir" yaml:"cookbooks_dir"`

	// ProjectDir is the project root holding templates, filters, and build
	// output (default: current directory).
	ProjectDir string `json:"project_dir" yaml:"project_dir"`

	// BuildDir is the build output directory, relative to ProjectDir
	// (default "build").
	BuildDir string `json:"build_dir" yaml:"build_dir"`

	// CacheDir is the cache directory, relative to ProjectDir (default
	// "cache"). Holds the recipe listing index.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	Pandoc PandocConfig `json:"pandoc" yaml:"pandoc"`
	Style  StyleConfig  `json:"style" yaml:"style"`
	Tex    TexConfig    `json:"tex" yaml:"tex"`
}
