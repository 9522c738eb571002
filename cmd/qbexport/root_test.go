package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"questionbank/qbexport/pkg/cli"
	"questionbank/qbexport/pkg/config"
)

func withConfigFile(t *testing.T, path string) {
	t.Helper()
	orig := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = orig })
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qbexport.yaml")
	yaml := `export:
  input: from-file.json
  csv_path: from-file.csv
  xlsx_path: from-file.xlsx
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigFile(t, path)
	t.Setenv("QBEXPORT_OUT_CSV", "from-env.csv")

	cfg, err := loadConfig(func(cfg *config.Config) {
		cfg.Export.XLSXPath = "from-flag.xlsx"
	})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Export.Input != "from-file.json" {
		t.Errorf("Input = %q, want value from file", cfg.Export.Input)
	}
	if cfg.Export.CSVPath != "from-env.csv" {
		t.Errorf("CSVPath = %q, want value from env", cfg.Export.CSVPath)
	}
	if cfg.Export.XLSXPath != "from-flag.xlsx" {
		t.Errorf("XLSXPath = %q, want value from flag", cfg.Export.XLSXPath)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	withConfigFile(t, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := loadConfig(nil)
	var cfgErr *cli.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("loadConfig() error = %v, want *cli.ConfigError", err)
	}
}

func TestLoadConfig_DefaultFileOptional(t *testing.T) {
	withConfigFile(t, "")
	chdir(t, t.TempDir())

	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Export.Input != config.DefaultInput {
		t.Errorf("Input = %q, want default", cfg.Export.Input)
	}
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	withConfigFile(t, "")
	chdir(t, t.TempDir())

	_, err := loadConfig(func(cfg *config.Config) {
		cfg.Watch.Schedule = "whenever"
	})
	var validationErr config.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("loadConfig() error = %v, want config.ValidationError", err)
	}
}

func TestApplyExportFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "export"}
	addExportFlags(cmd)

	if err := cmd.ParseFlags([]string{"--out-csv", "flag.csv", "--schedule", "@hourly", "--pretty-json"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg := config.Default()
	cfg.Export.Input = "kept.json"
	applyExportFlags(cmd, cfg)

	if cfg.Export.CSVPath != "flag.csv" {
		t.Errorf("CSVPath = %q, want flag.csv", cfg.Export.CSVPath)
	}
	if cfg.Watch.Schedule != "@hourly" {
		t.Errorf("Schedule = %q, want @hourly", cfg.Watch.Schedule)
	}
	if !cfg.Export.PrettyJSON {
		t.Error("PrettyJSON should be set")
	}
	if cfg.Export.Input != "kept.json" {
		t.Errorf("Input = %q, unset flags must not override config", cfg.Export.Input)
	}
}

func TestRootCommand_ExportEndToEnd(t *testing.T) {
	withConfigFile(t, "")
	dir := t.TempDir()
	chdir(t, dir)

	input := filepath.Join(dir, "bank.json")
	if err := os.WriteFile(input, []byte(testBank), 0o644); err != nil {
		t.Fatal(err)
	}
	csvPath := filepath.Join(dir, "out.csv")
	xlsxPath := filepath.Join(dir, "out.xlsx")

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"export", "--input", input, "--out-csv", csvPath, "--out-xlsx", xlsxPath})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Export complete: 3 rows, 1 rows in needs_review.") {
		t.Errorf("output = %q", out.String())
	}
	for _, p := range []string{csvPath, xlsxPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected artifact %s: %v", p, err)
		}
	}
}

func TestInspectReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bank.json")
	if err := os.WriteFile(input, []byte(testBank), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := inspectBank(input)
	if err != nil {
		t.Fatalf("inspectBank() error = %v", err)
	}

	want := "Input: " + input + `
Questions: 3 (1 scenarios)
Rows: 3
Needs review: 1
Rows by kind:
  mcq: 2
  scenario: 1`
	if report.String() != want {
		t.Errorf("String() =\n%s\nwant\n%s", report.String(), want)
	}
}

func TestInspectReport_MissingInput(t *testing.T) {
	if _, err := inspectBank(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("inspectBank() should fail for a missing file")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"export": false, "inspect": false, "version": false, "completion": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
	if rootCmd.RunE == nil {
		t.Error("root command should run an export by default")
	}
}

func TestLoadConfig_FlagFixesInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qbexport.yaml")
	yaml := `export:
  csv_path: same.out
  xlsx_path: same.out
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigFile(t, path)

	if _, err := loadConfig(nil); err == nil {
		t.Fatal("loadConfig() without overrides should reject duplicate output paths")
	}

	cfg, err := loadConfig(func(cfg *config.Config) {
		cfg.Export.XLSXPath = "from-flag.xlsx"
	})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Export.CSVPath != "same.out" || cfg.Export.XLSXPath != "from-flag.xlsx" {
		t.Errorf("paths = (%q, %q)", cfg.Export.CSVPath, cfg.Export.XLSXPath)
	}
}
