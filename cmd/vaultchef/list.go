// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vaultchef/internal/listing"
	"github.com/pdiddy/vaultchef/internal/paths"
	"github.com/pdiddy/vaultchef/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recipes in the vault",
	Long: `List enumerates the recipe notes in the vault with their frontmatter
metadata, optionally filtered by tag or category. Summaries are cached in
a SQLite index under the cache directory so unchanged notes are not
re-parsed.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tag, _ := cmd.Flags().GetString("tag")
	category, _ := cmd.Flags().GetString("category")
	asJSON, _ := cmd.Flags().GetBool("json")
	cookbooks, _ := cmd.Flags().GetBool("cookbooks")

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	if cookbooks {
		return listCookbooks(cfg, asJSON)
	}

	store, err := listing.Open(paths.Project(cfg).CacheDir)
	if err != nil {
		return err
	}
	defer store.Close()

	recipes, err := store.List(paths.Vault(cfg).RecipesDir, listing.Filter{Tag: tag, Category: category})
	if err != nil {
		return err
	}

	if asJSON {
		raw, err := json.MarshalIndent(recipes, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Println(string(raw))
		return nil
	}

	for _, rec := range recipes {
		fmt.Printf("%s: %s\n", rec.RecipeID, rec.Title)
	}
	return nil
}

func listCookbooks(cfg types.Config, asJSON bool) error {
	books, err := listing.Cookbooks(paths.Vault(cfg).CookbooksDir)
	if err != nil {
		return err
	}

	if asJSON {
		raw, err := json.MarshalIndent(books, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Println(string(raw))
		return nil
	}

	for _, book := range books {
		fmt.Printf("%s: %s\n", book.Stem, book.Title)
	}
	return nil
}

func init() {
	listCmd.Flags().String("tag", "", "only recipes carrying this tag")
	listCmd.Flags().String("category", "", "only recipes in this category")
	listCmd.Flags().Bool("cookbooks", false, "list cookbooks instead of recipes")
	listCmd.Flags().Bool("json", false, "emit JSON instead of plain text")

	rootCmd.AddCommand(listCmd)
}
