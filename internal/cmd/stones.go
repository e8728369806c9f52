package cmd

import (
	"strconv"
	"strings"

	"github.com/dendrascience/katas/internal/input"
	"github.com/dendrascience/katas/internal/logging"
	"github.com/dendrascience/katas/kata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type stonesOutput struct {
	Total     int    `json:"total"`
	Steps     []int  `json:"steps"`
	Unvisited int    `json:"unvisited"`
	Map       string `json:"map,omitempty"`
}

// NewStonesCmd creates and returns the stones subcommand for the katas CLI.
// It counts the stones in 1..TOTAL that no step size ever lands on.
func NewStonesCmd() *cobra.Command {
	var (
		birds   int
		showMap bool
	)

	cmd := &cobra.Command{
		Use:   "stones [TOTAL STEP...]",
		Short: "Count stones no bird ever lands on",
		Long: `Stones are numbered 1 to TOTAL. A bird with step size S lands on
stones S, 2S, 3S and so on. Print how many stones no bird lands on.

Values may be separated by spaces or commas. Without arguments they are read
from the first line of standard input. Step sizes must be positive.`,
		Example: `  katas stones 6 3 2
  echo "10,1,2,3" | katas stones --birds 3
  katas stones --map 10 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			checkBirds := cmd.Flags().Changed("birds")
			return runStones(cmd, args, checkBirds, birds, showMap)
		},
	}

	cmd.Flags().IntVarP(&birds, "birds", "b", 0, "Number of birds; must match the number of step sizes")
	cmd.Flags().BoolVar(&showMap, "map", false, "Also print the stones, x for visited and . for unvisited")

	return cmd
}

func runStones(cmd *cobra.Command, args []string, checkBirds bool, birds int, showMap bool) error {
	line, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	total, steps, err := input.ParseStones(line)
	if err != nil {
		return err
	}

	var unvisited int
	if checkBirds {
		unvisited, err = kata.CountUnvisitedBirds(birds, total, steps)
	} else {
		unvisited, err = kata.CountUnvisited(total, steps)
	}
	if err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("Counted unvisited stones",
		zap.Int("total", total),
		zap.Ints("steps", steps),
		zap.Int("unvisited", unvisited))

	out := stonesOutput{Total: total, Steps: steps, Unvisited: unvisited}
	lines := []string{strconv.Itoa(unvisited)}
	if showMap {
		visited, err := kata.Visited(total, steps)
		if err != nil {
			return err
		}
		out.Map = renderVisited(visited)
		lines = append(lines, out.Map)
	}

	return emit(cmd, out, lines...)
}

// renderVisited draws positions 1..N of the sieve.
func renderVisited(visited []bool) string {
	var b strings.Builder
	for _, v := range visited[1:] {
		if v {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
