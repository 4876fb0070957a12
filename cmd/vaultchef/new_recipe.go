// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vaultchef/internal/templates"
)

var newRecipeCmd = &cobra.Command{
	Use:   "new-recipe",
	Short: "Create a recipe note from the skeleton",
	Long: `New-recipe writes a recipe markdown skeleton with frontmatter filled in
from the flags. The file is named after the title and written to the
current directory; an existing file is never overwritten unless --force
is given.`,
	RunE: runNewRecipe,
}

func runNewRecipe(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
	force, _ := cmd.Flags().GetBool("force")

	meta := map[string]string{}
	for _, key := range []string{"course", "category", "cuisine", "serves", "prep", "cook", "rest", "menu", "source"} {
		if v, _ := cmd.Flags().GetString(key); v != "" {
			meta[key] = v
		}
	}

	content := templates.Recipe(id, title, meta)
	path, err := templates.WriteFile(content, title+".md", ".", force)
	if err != nil {
		return err
	}
	fmt.Println("Created", path)
	return nil
}

func init() {
	newRecipeCmd.Flags().String("id", "", "recipe identifier for the frontmatter")
	newRecipeCmd.Flags().String("title", "", "recipe title")
	newRecipeCmd.Flags().String("course", "", "course, e.g. main or dessert")
	newRecipeCmd.Flags().String("category", "", "category for listings")
	newRecipeCmd.Flags().String("cuisine", "", "cuisine")
	newRecipeCmd.Flags().String("serves", "", "number of servings")
	newRecipeCmd.Flags().String("prep", "", "preparation time")
	newRecipeCmd.Flags().String("cook", "", "cooking time")
	newRecipeCmd.Flags().String("rest", "", "resting time")
	newRecipeCmd.Flags().String("menu", "", "menu the recipe belongs to")
	newRecipeCmd.Flags().String("source", "", "where the recipe came from")
	newRecipeCmd.Flags().Bool("force", false, "overwrite an existing file")
	_ = newRecipeCmd.MarkFlagRequired("id")
	_ = newRecipeCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(newRecipeCmd)
}
