// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vaultchef/internal/templates"
)

var newCookbookCmd = &cobra.Command{
	Use:   "new-cookbook",
	Short: "Create a cookbook note from the skeleton",
	Long: `New-cookbook writes a cookbook markdown skeleton with a placeholder
recipe embed. The file is named after the title and written to the
current directory.`,
	RunE: runNewCookbook,
}

func runNewCookbook(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	subtitle, _ := cmd.Flags().GetString("subtitle")
	author, _ := cmd.Flags().GetString("author")
	style, _ := cmd.Flags().GetString("style")
	force, _ := cmd.Flags().GetBool("force")

	content := templates.Cookbook(title, subtitle, author, style, nil)
	path, err := templates.WriteFile(content, title+".md", ".", force)
	if err != nil {
		return err
	}
	fmt.Println("Created", path)
	return nil
}

func init() {
	newCookbookCmd.Flags().String("title", "", "cookbook title")
	newCookbookCmd.Flags().String("subtitle", "", "subtitle shown on the cover")
	newCookbookCmd.Flags().String("author", "", "author shown on the cover")
	newCookbookCmd.Flags().String("style", "menu-card", "visual theme for the PDF")
	newCookbookCmd.Flags().Bool("force", false, "overwrite an existing file")
	_ = newCookbookCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(newCookbookCmd)
}
