// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vaultchef/internal/build"
	"github.com/pdiddy/vaultchef/internal/shopping"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping [cookbook]",
	Short: "Aggregate a cookbook's ingredients into a shopping list",
	Long: `Shopping reads every recipe a cookbook embeds, parses the Ingredients
sections, and prints one aggregated shopping list: identical ingredients
with compatible units are summed with exact fraction arithmetic, and
quantity-less lines are deduplicated. Use --output to also save the list
as a YAML file.`,
	Args: cobra.ExactArgs(1),
	RunE: runShopping,
}

// shoppingFile is the on-disk representation of a generated shopping list.
type shoppingFile struct {
	Cookbook    string    `yaml:"cookbook"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Items       []string  `yaml:"items"`
}

func runShopping(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	docs, err := build.RecipeDocuments(args[0], cfg)
	if err != nil {
		return err
	}
	lines, err := shopping.BuildList(docs)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println("-", line)
	}

	if output != "" {
		raw, err := yaml.Marshal(shoppingFile{
			Cookbook:    args[0],
			GeneratedAt: time.Now().UTC(),
			Items:       lines,
		})
		if err != nil {
			return fmt.Errorf("encoding shopping list: %w", err)
		}
		if err := os.WriteFile(output, raw, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintln(os.Stderr, "Wrote", output)
	}
	return nil
}

func init() {
	shoppingCmd.Flags().String("output", "", "write the list to a YAML file")

	rootCmd.AddCommand(shoppingCmd)
}
