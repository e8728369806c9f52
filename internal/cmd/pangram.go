package cmd

import (
	"fmt"
	"strconv"

	"github.com/dendrascience/katas/internal/logging"
	"github.com/dendrascience/katas/kata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type pangramOutput struct {
	Text    string `json:"text"`
	Pangram bool   `json:"pangram"`
	Missing string `json:"missing"`
}

// NewPangramCmd creates and returns the pangram subcommand for the katas CLI.
func NewPangramCmd() *cobra.Command {
	var (
		showMissing bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "pangram [TEXT...]",
		Short: "Check whether a text uses every letter of the alphabet",
		Long: `Check whether a text contains every letter from a to z at least once,
ignoring case. Multiple arguments are joined with spaces.

Without arguments the text is read from the first line of standard input.`,
		Example: `  katas pangram thequickbrownfoxjumpsoverthelazydog
  katas pangram --missing "what does the fox say"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPangram(cmd, args, showMissing, strict)
		},
	}

	cmd.Flags().BoolVarP(&showMissing, "missing", "m", false, "Also print the letters the text lacks")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error if the text is not a pangram")

	return cmd
}

func runPangram(cmd *cobra.Command, args []string, showMissing, strict bool) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := pangramOutput{
		Text:    text,
		Pangram: kata.IsPangram(text),
		Missing: string(kata.MissingLetters(text)),
	}
	logging.FromContext(cmd.Context()).Debug("Checked pangram",
		zap.Int("length", len(text)),
		zap.Bool("pangram", out.Pangram))

	lines := []string{strconv.FormatBool(out.Pangram)}
	if showMissing && out.Missing != "" {
		lines = append(lines, "missing: "+out.Missing)
	}
	if err := emit(cmd, out, lines...); err != nil {
		return err
	}

	if strict && !out.Pangram {
		return fmt.Errorf("%w: missing %s", ErrNotPangram, out.Missing)
	}
	return nil
}
