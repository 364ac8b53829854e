package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cluegrid/sudoku/internal/bruteforce"
	"github.com/cluegrid/sudoku/internal/grid"
	"github.com/cluegrid/sudoku/internal/solver"
)

var (
	puzzleFile string
	timeout    time.Duration
	maxNodes   int
	useBrute   bool
	cpuProfile bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a 9x9 Sudoku puzzle given as an 81-character string.

The puzzle is read from the argument, or with --file from a file that
holds exactly one line of puzzle text. The file takes precedence when
both are given.

Examples:
  sudoku solve 53++7+++++6++195+++++98++++6+8+++6+++3+4++8+3++17+++2+++6+6++++28++++419++5++++8
  sudoku solve --file puzzle.txt
  sudoku solve --brute --file puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&puzzleFile, "file", "f", "", "Read the puzzle from a one-line file")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Solve timeout (0 = no limit)")
	solveCmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Search node budget (0 = no limit)")
	solveCmd.Flags().BoolVar(&useBrute, "brute", false, "Use the brute-force reference solver")
	solveCmd.Flags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, err := resolvePuzzle(args)
	if err != nil {
		return err
	}

	if cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if useBrute {
		return solveBrute(input)
	}

	g, err := grid.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}
	log.WithField("givens", len(g.Clues())).Debug("puzzle parsed")

	s := solver.New(g, &solver.Options{Timeout: timeout, MaxNodes: maxNodes})

	start := time.Now()
	solved, err := s.Solve()
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solve failed after %s: %w", elapsed, err)
	}

	stats := s.Stats()
	log.WithFields(logrus.Fields{
		"nodes": stats.Nodes,
		"depth": stats.MaxDepth,
	}).Debug("search finished")

	fmt.Println(solved.String())
	fmt.Print(solved.Format())
	fmt.Printf("solved in %s\n", elapsed)
	return nil
}

// solveBrute runs the reference baseline instead of the main solver.
func solveBrute(input string) error {
	t, err := bruteforce.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: conflicting givens", solver.ErrUnsolvable)
	}

	start := time.Now()
	if !t.Solve() {
		return fmt.Errorf("solve failed after %s: %w", time.Since(start), solver.ErrUnsolvable)
	}
	elapsed := time.Since(start)

	fmt.Println(t.String())
	fmt.Printf("solved in %s\n", elapsed)
	return nil
}

// resolvePuzzle picks the puzzle source. Exactly one must resolve;
// the file wins over the argument when both are given.
func resolvePuzzle(args []string) (string, error) {
	if puzzleFile != "" {
		return readPuzzleFile(puzzleFile)
	}
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	return "", errors.New("no puzzle given: pass it as an argument or with --file")
}

// readPuzzleFile reads a puzzle file that must hold exactly one
// non-empty line of puzzle text.
func readPuzzleFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read puzzle file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 1 {
		return "", fmt.Errorf("puzzle file %s must hold exactly one line of puzzle text, got %d", path, len(lines))
	}
	return lines[0], nil
}
