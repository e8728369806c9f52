package cmd

import (
	"context"

	"github.com/dendrascience/katas/internal/logging"
	"github.com/dendrascience/katas/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd creates and returns the root cobra command for the katas CLI.
// It sets up all subcommands, command groups, configuration and logging.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "katas",
		Short: "katas - digit, pangram and stone counting exercises",
		Long: `katas runs three small exercises from the command line.

Use subcommands to perform different operations:
  - digits: Sum, product and absolute difference of the digits of a number
  - pangram: Check whether a text uses every letter of the alphabet
  - stones: Count stones no bird ever lands on
  - check: Run a YAML file of regression cases
  - seed: Generate a YAML file of regression cases

Kata commands read their input from the arguments, or from one line of
standard input when no arguments are given.`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Verbose)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = withConfig(ctx, cfg)
			ctx = logging.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.FromContext(cmd.Context()).Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .katas.yaml, can also use KATAS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("format", "f", formatText, "output format (text, json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	_ = v.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	groupKatas := "katas"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupKatas,
		Title: "Katas",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	digitsCmd := NewDigitsCmd()
	pangramCmd := NewPangramCmd()
	stonesCmd := NewStonesCmd()
	checkCmd := NewCheckCmd()
	seedCmd := NewSeedCmd()

	digitsCmd.GroupID = groupKatas
	pangramCmd.GroupID = groupKatas
	stonesCmd.GroupID = groupKatas
	checkCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(digitsCmd)
	rootCmd.AddCommand(pangramCmd)
	rootCmd.AddCommand(stonesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
