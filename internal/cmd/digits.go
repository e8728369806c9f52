package cmd

import (
	"github.com/dendrascience/katas/internal/input"
	"github.com/dendrascience/katas/internal/logging"
	"github.com/dendrascience/katas/kata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type digitsOutput struct {
	Number int `json:"number"`
	kata.Digits
	Decomposition []int `json:"digits,omitempty"`
}

// NewDigitsCmd creates and returns the digits subcommand for the katas CLI.
// It prints the sum and product of the digits of a number and their absolute difference.
func NewDigitsCmd() *cobra.Command {
	var showDigits bool

	cmd := &cobra.Command{
		Use:   "digits [NUMBER]",
		Short: "Sum, product and absolute difference of the digits of a number",
		Long: `Decompose a positive integer into its decimal digits and print
"sum product difference", where difference is |sum - product|.

A zero digit makes the product zero. Zero and negative numbers are rejected.
Without an argument the number is read from the first line of standard input.`,
		Example: `  katas digits 123
  echo 305 | katas digits --digits`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigits(cmd, args, showDigits)
		},
	}

	cmd.Flags().BoolVarP(&showDigits, "digits", "d", false, "Also print the digits, least significant first")

	return cmd
}

func runDigits(cmd *cobra.Command, args []string, showDigits bool) error {
	logger := logging.FromContext(cmd.Context())

	line, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	number, err := input.ParseNumber(line)
	if err != nil {
		return err
	}

	d, err := kata.Analyze(number)
	if err != nil {
		return err
	}
	logger.Debug("Analyzed number", zap.Int("number", number), zap.Stringer("digits", d))

	out := digitsOutput{Number: number, Digits: d}
	lines := []string{d.String()}
	if showDigits {
		out.Decomposition, err = kata.DigitsOf(number)
		if err != nil {
			return err
		}
		lines = append(lines, joinInts(out.Decomposition))
	}

	return emit(cmd, out, lines...)
}
