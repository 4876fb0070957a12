// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vaultchef CLI, which builds
// cookbooks and shopping lists from an Obsidian vault of recipe notes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vaultchef/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the vaultchef CLI.
var rootCmd = &cobra.Command{
	Use:   "vaultchef",
	Short: "Build cookbooks from an Obsidian vault of recipes",
	Long: `vaultchef turns recipe notes in an Obsidian vault into built cookbooks:
a cookbook note embeds recipes with ![[...]] links, and vaultchef expands
them into a baked markdown file, a PDF via pandoc, and an aggregated
shopping list.

Each operation is a subcommand: build, shopping, list, validate, and watch.
Use new-recipe, new-cookbook, and init to scaffold notes and projects.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./vaultchef.yaml or ~/.config/vaultchef/config.yaml)")
	pf.String("vault", "", "vault root directory")
	pf.String("project", "", "project directory holding templates and build output")
	pf.String("recipes-dir", "", "recipe directory inside the vault")
	pf.String("cookbooks-dir", "", "cookbook directory inside the vault")
	pf.String("build-dir", "", "build output directory")
	pf.String("cache-dir", "", "cache directory")
	pf.String("pandoc", "", "pandoc binary path")
	pf.String("pdf-engine", "", "LaTeX engine for pandoc")
	pf.String("template", "", "pandoc template path")
	pf.String("lua-filter", "", "pandoc Lua filter path")
	pf.String("style-dir", "", "style assets directory")
	pf.String("theme", "", "visual theme")

	viper.BindPFlag("vault_path", pf.Lookup("vault"))
	viper.BindPFlag("project_dir", pf.Lookup("project"))
	viper.BindPFlag("recipes_dir", pf.Lookup("recipes-dir"))
	viper.BindPFlag("cookbooks_dir", pf.Lookup("cookbooks-dir"))
	viper.BindPFlag("build_dir", pf.Lookup("build-dir"))
	viper.BindPFlag("cache_dir", pf.Lookup("cache-dir"))
	viper.BindPFlag("pandoc.pandoc_path", pf.Lookup("pandoc"))
	viper.BindPFlag("pandoc.pdf_engine", pf.Lookup("pdf-engine"))
	viper.BindPFlag("pandoc.template", pf.Lookup("template"))
	viper.BindPFlag("pandoc.lua_filter", pf.Lookup("lua-filter"))
	viper.BindPFlag("pandoc.style_dir", pf.Lookup("style-dir"))
	viper.BindPFlag("style.theme", pf.Lookup("theme"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vaultchef")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vaultchef"))
		}
	}

	viper.SetDefault("recipes_dir", "Recipes")
	viper.SetDefault("cookbooks_dir", "Cookbooks")
	viper.SetDefault("build_dir", "build")
	viper.SetDefault("cache_dir", "cache")
	viper.SetDefault("pandoc.pdf_engine", "lualatex")
	viper.SetDefault("pandoc.template", "templates/cookbook.tex")
	viper.SetDefault("pandoc.lua_filter", "filters/recipe.lua")
	viper.SetDefault("pandoc.style_dir", "templates")
	viper.SetDefault("pandoc.pandoc_path", "pandoc")
	viper.SetDefault("style.theme", "menu-card")
	viper.SetDefault("tex.check_on_startup", true)

	viper.SetEnvPrefix("VAULTCHEF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// effectiveConfig materializes the merged configuration. Commands that
// touch the vault call this and fail early when vault_path is unset.
func effectiveConfig() (types.Config, error) {
	cfg := types.Config{
		VaultPath:    viper.GetString("vault_path"),
		RecipesDir:   viper.GetString("recipes_dir"),
		CookbooksDir: viper.GetString("cookbooks_dir"),
		ProjectDir:   viper.GetString("project_dir"),
		BuildDir:     viper.GetString("build_dir"),
		CacheDir:     viper.GetString("cache_dir"),
		Pandoc: types.PandocConfig{
			PDFEngine:  viper.GetString("pandoc.pdf_engine"),
			Template:   viper.GetString("pandoc.template"),
			LuaFilter:  viper.GetString("pandoc.lua_filter"),
			StyleDir:   viper.GetString("pandoc.style_dir"),
			PandocPath: viper.GetString("pandoc.pandoc_path"),
		},
		Style: types.StyleConfig{Theme: viper.GetString("style.theme")},
		Tex:   types.TexConfig{CheckOnStartup: viper.GetBool("tex.check_on_startup")},
	}

	if cfg.VaultPath == "" {
		return types.Config{}, fmt.Errorf("vault_path is required (set it in vaultchef.yaml or via --vault)")
	}
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = "."
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
