package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dendrascience/katas/internal/input"
	"github.com/spf13/cobra"
)

// readInput joins the positional arguments, or reads one line of standard
// input when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return input.ReadLine(cmd.InOrStdin())
}

// emit writes text lines or v as JSON, depending on the configured format.
func emit(cmd *cobra.Command, v any, lines ...string) error {
	out := cmd.OutOrStdout()
	if configFrom(cmd.Context()).Format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
