package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dendrascience/katas/internal/casefile"
	"github.com/dendrascience/katas/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewSeedCmd creates and returns the seed subcommand for the katas CLI.
// It generates a case file of random inputs with their current results.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		caseCount  int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a YAML file of regression cases",
		Long: `Generate random cases for all three katas and record the result the
current build produces for each of them.

The resulting file can be replayed with the check command to detect
behaviour changes. Pass --seed to make the generated inputs reproducible;
case IDs are always fresh UUIDs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			return runSeed(cmd, outputPath, caseCount, seed)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output case file (required)")
	cmd.Flags().IntVarP(&caseCount, "count", "c", 100, "Number of cases to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for the generated inputs")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(cmd *cobra.Command, outputPath string, caseCount int, seed uint64) error {
	logger := logging.FromContext(cmd.Context())

	if caseCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", caseCount)
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f := casefile.Generate(caseCount, rng)
	if err := casefile.Save(outputPath, f); err != nil {
		return err
	}
	logger.Debug("Generated case file",
		zap.String("path", outputPath),
		zap.Int("cases", caseCount),
		zap.Uint64("seed", seed))

	summary := struct {
		Path  string `json:"path"`
		Cases int    `json:"cases"`
		Seed  uint64 `json:"seed"`
	}{outputPath, caseCount, seed}
	return emit(cmd, summary, fmt.Sprintf("Wrote %d cases to %s (seed %d)", caseCount, outputPath, seed))
}
