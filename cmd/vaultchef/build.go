// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vaultchef/internal/build"
	"github.com/pdiddy/vaultchef/internal/pandoc"
)

var buildCmd = &cobra.Command{
	Use:   "build [cookbook]",
	Short: "Build a cookbook into baked markdown and a PDF",
	Long: `Build expands a cookbook note's ![[...]] embeds, validates every
referenced recipe, writes <name>.baked.md into the build directory, and
renders the PDF with pandoc. Use --dry-run to stop after the baked
markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	if cfg.Tex.CheckOnStartup && !dryRun {
		check := pandoc.CheckTexDependencies(cfg.Pandoc.PDFEngine)
		if !check.OK() {
			missing := append(check.MissingBinaries, check.MissingRequired...)
			return fmt.Errorf("TeX toolchain incomplete, missing: %s", strings.Join(missing, ", "))
		}
		if len(check.MissingOptional) > 0 {
			fmt.Fprintln(os.Stderr, "Optional TeX packages missing:", strings.Join(check.MissingOptional, ", "))
		}
	}

	result, err := build.Cookbook(args[0], cfg, dryRun, verbose)
	if err != nil {
		return err
	}

	fmt.Println("Baked markdown:", result.BakedMD)
	if !dryRun {
		fmt.Println("PDF:", result.PDF)
	}
	return nil
}

func init() {
	buildCmd.Flags().Bool("dry-run", false, "write baked markdown but skip pandoc")
	buildCmd.Flags().Bool("verbose", false, "show the pandoc command line and output")

	rootCmd.AddCommand(buildCmd)
}
