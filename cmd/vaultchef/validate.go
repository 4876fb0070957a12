// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vaultchef/internal/listing"
	"github.com/pdiddy/vaultchef/internal/paths"
	"github.com/pdiddy/vaultchef/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [recipe files...]",
	Short: "Check recipe notes for structural problems",
	Long: `Validate checks recipe notes for the structure a cookbook build needs:
YAML frontmatter with recipe_id and title, an Ingredients section with
bullet items, and a Method section with numbered steps. With no
arguments every recipe in the vault is checked.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files, err = listing.RecipePaths(paths.Vault(cfg).RecipesDir)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		fmt.Println("No recipes to validate.")
		return nil
	}

	failed := 0
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := validate.Recipe(string(raw), path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d recipes failed validation", failed, len(files))
	}
	fmt.Printf("%d recipes OK\n", len(files))
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
