package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve 9x9 Sudoku puzzles",
	Long: `sudoku solves 9x9 Sudoku puzzles given as 81-character strings:
digits 1-9 for known cells, '+' (or '.' or '0') for unknown cells.

The default solver combines constraint propagation with a backtracking
search over the remaining ambiguity. A plain brute-force solver is
available as a reference baseline.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
