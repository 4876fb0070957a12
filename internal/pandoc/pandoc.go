// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc drives the pandoc binary that renders a baked cookbook
// into a PDF, and probes the TeX toolchain it depends on.
package pandoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/vaultchef/internal/paths"
	"github.com/pdiddy/vaultchef/pkg/types"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	Run(name string, args []string, env []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) Run(name string, args []string, env []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Runner invokes pandoc with the project's template, filter, and theme.
type Runner struct {
	exec executor
}

// NewRunner returns a Runner backed by the real pandoc binary.
func NewRunner() *Runner {
	return &Runner{exec: defaultExec}
}

// Convert renders inputMD to outputPDF. With verbose set, the pandoc
// command line and its output go to stderr; otherwise output is captured
// and only surfaced on failure.
func (r *Runner) Convert(inputMD, outputPDF string, cfg types.Config, verbose bool) error {
	project := paths.Project(cfg)
	outputDir := filepath.Dir(outputPDF)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	args := []string{
		inputMD,
		"-o", outputPDF,
		"--pdf-engine", cfg.Pandoc.PDFEngine,
		"--template", project.TemplatePath,
		"--lua-filter", project.LuaFilterPath,
		"--metadata", "theme=" + cfg.Style.Theme,
		"--resource-path", project.StyleDir,
	}

	env := pandocEnv(outputDir, project.StyleDir)

	if verbose {
		fmt.Fprintln(os.Stderr, cfg.Pandoc.PandocPath+" "+strings.Join(args, " "))
		if err := r.exec.Run(cfg.Pandoc.PandocPath, args, env, os.Stderr, os.Stderr); err != nil {
			return convertError(err, nil)
		}
		return nil
	}

	var captured bytes.Buffer
	if err := r.exec.Run(cfg.Pandoc.PandocPath, args, env, &captured, &captured); err != nil {
		return convertError(err, captured.Bytes())
	}
	return nil
}

func convertError(err error, output []byte) error {
	if _, ok := err.(*exec.Error); ok {
		return fmt.Errorf("pandoc not found: %w", err)
	}
	if len(output) > 0 {
		return fmt.Errorf("pandoc failed: %s", strings.TrimSpace(string(output)))
	}
	return fmt.Errorf("pandoc failed: %w", err)
}

// pandocEnv extends the process environment with TeX cache and input
// settings so LuaLaTeX runs relocatable inside the build directory.
func pandocEnv(outputDir, styleDir string) []string {
	env := os.Environ()
	env = setDefault(env, "TEXMFCACHE", outputDir)
	env = setDefault(env, "TEXMFVAR", outputDir)

	sep := string(os.PathListSeparator)
	if existing, ok := lookup(env, "TEXINPUTS"); ok {
		if !contains(strings.Split(existing, sep), styleDir) {
			env = set(env, "TEXINPUTS", styleDir+sep+existing)
		}
	} else {
		// A trailing separator keeps the default TeX search path.
		env = set(env, "TEXINPUTS", styleDir+sep)
	}
	return env
}

func lookup(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}

func set(env []string, key, value string) []string {
	prefix := key + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func setDefault(env []string, key, value string) []string {
	if _, ok := lookup(env, key); ok {
		return env
	}
	return append(env, key+"="+value)
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

// requiredTexPackages must be present for the cookbook template to compile.
var requiredTexPackages = []string{"geometry", "hyperref", "xcolor"}

// optionalTexPackages improve output quality but have fallbacks.
var optionalTexPackages = []string{
	"enumitem", "titlesec", "titling", "microtype", "fontspec", "fancyhdr",
}

// TexCheckResult reports which parts of the TeX toolchain are missing.
type TexCheckResult struct {
	MissingRequired []string
	MissingOptional []string
	MissingBinaries []string
	CheckedPackages bool
}

// OK reports whether a build can be expected to succeed.
func (r TexCheckResult) OK() bool {
	return len(r.MissingRequired) == 0 && len(r.MissingBinaries) == 0
}

// CheckTexDependencies probes for kpsewhich, the PDF engine, and the TeX
// packages the cookbook template uses. Package probing is skipped when
// kpsewhich itself is absent.
func CheckTexDependencies(pdfEngine string) TexCheckResult {
	return checkTexDependencies(pdfEngine, defaultExec)
}

func checkTexDependencies(pdfEngine string, exec executor) TexCheckResult {
	engine := pdfEngine
	if engine == "" {
		engine = "lualatex"
	}

	result := TexCheckResult{CheckedPackages: true}
	if _, err := exec.LookPath("kpsewhich"); err != nil {
		result.MissingBinaries = append(result.MissingBinaries, "kpsewhich")
		result.CheckedPackages = false
	}
	if _, err := exec.LookPath(engine); err != nil {
		result.MissingBinaries = append(result.MissingBinaries, engine)
	}

	if result.CheckedPackages {
		for _, name := range requiredTexPackages {
			if exec.RunSilent("kpsewhich", name+".sty") != nil {
				result.MissingRequired = append(result.MissingRequired, name)
			}
		}
		for _, name := range optionalTexPackages {
			if exec.RunSilent("kpsewhich", name+".sty") != nil {
				result.MissingOptional = append(result.MissingOptional, name)
			}
		}
		sort.Strings(result.MissingRequired)
		sort.Strings(result.MissingOptional)
	}
	return result
}
