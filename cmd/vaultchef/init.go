// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vaultchef/internal/templates"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a cookbook project directory",
	Long: `Init creates the project layout a build expects: the build, cache,
templates and filters directories, plus a starter vaultchef.yaml pointing
at the vault. The target directory defaults to the current one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	for _, dir := range []string{"build", "cache", "templates", "filters"} {
		if err := os.MkdirAll(filepath.Join(target, dir), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	vaultPath := viper.GetString("vault_path")
	if vaultPath == "" {
		vaultPath = "~/Vault"
	}
	path, err := templates.WriteFile(templates.ProjectConfig(vaultPath), "vaultchef.yaml", target, force)
	if err != nil {
		return err
	}
	fmt.Println("Initialized project at", target)
	fmt.Println("Edit", path, "to point vault_path at your vault.")
	return nil
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing vaultchef.yaml")

	rootCmd.AddCommand(initCmd)
}
