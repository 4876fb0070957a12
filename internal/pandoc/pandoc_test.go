// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pdiddy/vaultchef/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	runFunc       func(name string, args []string, env []string, stdout, stderr io.Writer) error
	ranArgs       []string
	ranEnv        []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) Run(name string, args []string, env []string, stdout, stderr io.Writer) error {
	m.ranArgs = append([]string{name}, args...)
	m.ranEnv = env
	if m.runFunc != nil {
		return m.runFunc(name, args, env, stdout, stderr)
	}
	return nil
}

func testConfig(projectDir string) types.Config {
	return types.Config{
		ProjectDir: projectDir,
		BuildDir:   "build",
		CacheDir:   "cache",
		Pandoc: types.PandocConfig{
			PDFEngine:  "lualatex",
			Template:   "templates/cookbook.tex",
			LuaFilter:  "filters/recipe.lua",
			StyleDir:   "templates",
			PandocPath: "pandoc",
		},
		Style: types.StyleConfig{Theme: "menu-card"},
	}
}

func TestConvertBuildsCommandLine(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	mock := &mockExecutor{}
	runner := &Runner{exec: mock}

	input := filepath.Join(dir, "build", "Winter.baked.md")
	output := filepath.Join(dir, "build", "Winter.pdf")
	if err := runner.Convert(input, output, cfg, false); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if mock.ranArgs[0] != "pandoc" {
		t.Errorf("binary = %q, want pandoc", mock.ranArgs[0])
	}
	for _, want := range []string{
		input, output, "lualatex",
		filepath.Join(dir, "templates/cookbook.tex"),
		filepath.Join(dir, "filters/recipe.lua"),
		"theme=menu-card",
	} {
		if !slices.Contains(mock.ranArgs, want) {
			t.Errorf("args %v missing %q", mock.ranArgs, want)
		}
	}

	var texinputs string
	for _, kv := range mock.ranEnv {
		if strings.HasPrefix(kv, "TEXINPUTS=") {
			texinputs = kv
		}
	}
	if !strings.Contains(texinputs, filepath.Join(dir, "templates")) {
		t.Errorf("TEXINPUTS not set: %q", texinputs)
	}
}

func TestConvertSurfacesCapturedOutput(t *testing.T) {
	cfg := testConfig(t.TempDir())
	mock := &mockExecutor{
		runFunc: func(_ string, _ []string, _ []string, stdout, _ io.Writer) error {
			io.WriteString(stdout, "! LaTeX Error: something broke")
			return errors.New("exit status 43")
		},
	}
	runner := &Runner{exec: mock}

	err := runner.Convert("in.md", filepath.Join(t.TempDir(), "out.pdf"), cfg, false)
	if err == nil {
		t.Fatal("Convert succeeded, want error")
	}
	if !strings.Contains(err.Error(), "LaTeX Error") {
		t.Errorf("error %q does not include captured output", err)
	}
}

func TestConvertReportsMissingBinary(t *testing.T) {
	cfg := testConfig(t.TempDir())
	mock := &mockExecutor{
		runFunc: func(_ string, _ []string, _ []string, _, _ io.Writer) error {
			return &exec.Error{Name: "pandoc", Err: exec.ErrNotFound}
		},
	}
	runner := &Runner{exec: mock}

	err := runner.Convert("in.md", filepath.Join(t.TempDir(), "out.pdf"), cfg, false)
	if err == nil || !strings.Contains(err.Error(), "pandoc not found") {
		t.Errorf("err = %v, want pandoc-not-found", err)
	}
}

func TestCheckTexDependencies(t *testing.T) {
	allPackages := map[string]bool{}
	for _, name := range append(append([]string{}, requiredTexPackages...), optionalTexPackages...) {
		allPackages["kpsewhich "+name+".sty"] = true
	}

	tests := []struct {
		name            string
		exec            *mockExecutor
		wantOK          bool
		wantChecked     bool
		wantMissingBins []string
		wantMissingReq  []string
	}{
		{
			name: "everything present",
			exec: &mockExecutor{
				availableBins: map[string]bool{"kpsewhich": true, "lualatex": true},
				runnableCmds:  allPackages,
			},
			wantOK:      true,
			wantChecked: true,
		},
		{
			name: "kpsewhich missing skips package checks",
			exec: &mockExecutor{
				availableBins: map[string]bool{"lualatex": true},
				runnableCmds:  map[string]bool{},
			},
			wantOK:          false,
			wantChecked:     false,
			wantMissingBins: []string{"kpsewhich"},
		},
		{
			name: "required package missing",
			exec: &mockExecutor{
				availableBins: map[string]bool{"kpsewhich": true, "lualatex": true},
				runnableCmds: map[string]bool{
					"kpsewhich hyperref.sty": true,
					"kpsewhich xcolor.sty":   true,
				},
			},
			wantOK:         false,
			wantChecked:    true,
			wantMissingReq: []string{"geometry"},
		},
		{
			name: "engine missing",
			exec: &mockExecutor{
				availableBins: map[string]bool{"kpsewhich": true},
				runnableCmds:  allPackages,
			},
			wantOK:          false,
			wantChecked:     true,
			wantMissingBins: []string{"lualatex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkTexDependencies("lualatex", tt.exec)
			if got.OK() != tt.wantOK {
				t.Errorf("OK() = %v, want %v (%+v)", got.OK(), tt.wantOK, got)
			}
			if got.CheckedPackages != tt.wantChecked {
				t.Errorf("CheckedPackages = %v, want %v", got.CheckedPackages, tt.wantChecked)
			}
			if !slices.Equal(got.MissingBinaries, tt.wantMissingBins) {
				t.Errorf("MissingBinaries = %v, want %v", got.MissingBinaries, tt.wantMissingBins)
			}
			if !slices.Equal(got.MissingRequired, tt.wantMissingReq) {
				t.Errorf("MissingRequired = %v, want %v", got.MissingRequired, tt.wantMissingReq)
			}
		})
	}
}
