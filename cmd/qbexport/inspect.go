package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"questionbank/qbexport/pkg/bank"
	"questionbank/qbexport/pkg/cli"
	"questionbank/qbexport/pkg/config"
	"questionbank/qbexport/pkg/flatten"
)

var inspectFlags struct {
	input  string
	format string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show what an export of a question bank would contain",
	Long: `Load and flatten a question bank without writing any artifacts, then print
the number of questions, scenarios, rows, rows flagged for review, and rows
per kind.

Examples:
  # Inspect the default input
  qbexport inspect

  # Inspect another bank as JSON
  qbexport inspect --input bank.json --format json`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.input, "input", "i", config.DefaultInput, "question bank JSON file")
	inspectCmd.Flags().StringVarP(&inspectFlags.format, "format", "f", string(cli.FormatText), "output format (text, json)")
}

// inspectReport is the inspect command's output.
type inspectReport struct {
	Input string `json:"input"`
	flatten.Stats
}

func (r inspectReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Input: %s\n", r.Input)
	fmt.Fprintf(&b, "Questions: %d (%d scenarios)\n", r.Questions, r.Scenarios)
	fmt.Fprintf(&b, "Rows: %d\n", r.Records)
	fmt.Fprintf(&b, "Needs review: %d\n", r.NeedsReview)

	kinds := make([]string, 0, len(r.ByKind))
	for kind := range r.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	b.WriteString("Rows by kind:")
	for _, kind := range kinds {
		fmt.Fprintf(&b, "\n  %s: %d", kind, r.ByKind[kind])
	}
	return b.String()
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(inspectFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(func(cfg *config.Config) {
		if cmd.Flags().Changed("input") {
			cfg.Export.Input = inspectFlags.input
		}
	})
	if err != nil {
		return err
	}
	if _, err := newLogger(cfg); err != nil {
		return err
	}

	report, err := inspectBank(cfg.Export.Input)
	if err != nil {
		return cli.NewCommandError("inspect", err)
	}

	formatter, err := cli.NewFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatTo(cmd.OutOrStdout(), report)
}

func inspectBank(path string) (inspectReport, error) {
	b, err := bank.Load(path)
	if err != nil {
		return inspectReport{}, err
	}
	return inspectReport{Input: path, Stats: flatten.Summarize(b)}, nil
}
