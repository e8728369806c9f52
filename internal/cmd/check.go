package cmd

import (
	"fmt"

	"github.com/dendrascience/katas/internal/casefile"
	"github.com/dendrascience/katas/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCheckCmd creates and returns the check subcommand for the katas CLI.
// It runs a YAML regression case file and reports every failing case.
func NewCheckCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "check CASES.yaml",
		Short: "Run a YAML file of regression cases",
		Long: `Run every case of a YAML case file and compare the result with the
expectation recorded in the file.

Each failing case is printed together with the reason it failed, followed by
a summary. The command exits with an error when any case fails. Use the seed
command to generate a case file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], showAll)
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Print passing cases too")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, showAll bool) error {
	logger := logging.FromContext(cmd.Context())

	f, err := casefile.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("Loaded case file", zap.String("path", path), zap.Int("cases", len(f.Cases)))

	report, err := casefile.Run(cmd.Context(), f, logger)
	if err != nil {
		return err
	}

	results := report.Failures()
	if showAll {
		results = report.Results
	}

	var lines []string
	for _, res := range results {
		if res.Passed {
			lines = append(lines, fmt.Sprintf("ok   %s: %s", caseLabel(res), res.Got))
		} else {
			lines = append(lines, fmt.Sprintf("FAIL %s: %s", caseLabel(res), res.Reason))
		}
	}
	lines = append(lines,
		"",
		"Check complete:",
		fmt.Sprintf("  Run: %s", report.RunID),
		fmt.Sprintf("  Cases checked: %d", report.Total),
		fmt.Sprintf("  Passed: %d", report.Passed),
		fmt.Sprintf("  Failed: %d", report.Failed),
	)
	if err := emit(cmd, report, lines...); err != nil {
		return err
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d cases failed", ErrCheckFailed, report.Failed, report.Total)
	}
	return nil
}

func caseLabel(res casefile.Result) string {
	if res.ID != "" {
		return fmt.Sprintf("#%d %s (%s)", res.Index, res.Kata, res.ID)
	}
	return fmt.Sprintf("#%d %s", res.Index, res.Kata)
}
