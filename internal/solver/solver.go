package solver

import (
	"context"
	"errors"

	"github.com/cluegrid/sudoku/internal/grid"
)

var (
	ErrUnsolvable = errors.New("puzzle has no solution")
	ErrTimeout    = errors.New("solver timeout exceeded")
	ErrBudget     = errors.New("solver node budget exhausted")
	ErrInvariant  = errors.New("completed grid violates Sudoku constraints")
)

// errContradiction marks a search branch whose grid cannot be
// completed: some cell ran out of candidates. It abandons the branch,
// never the whole search.
var errContradiction = errors.New("cell has no remaining candidates")

// Stats holds counters from the last Solve call.
type Stats struct {
	Nodes    int // search nodes visited, root included
	MaxDepth int // deepest branch reached
}

// Solver solves a Sudoku grid with constraint propagation plus
// depth-first search over cloned grids.
type Solver struct {
	Grid    *grid.Grid
	options *Options
	stats   Stats
}

// New creates a solver for the given grid.
// The grid is cloned, so the caller's copy is never mutated.
func New(g *grid.Grid, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		Grid:    g.Clone(),
		options: options,
	}
}

// Solve attempts to solve the puzzle.
// Returns the solved grid, or ErrUnsolvable when every branch dies,
// ErrTimeout/ErrBudget when a resource bound is hit first.
func (s *Solver) Solve() (*grid.Grid, error) {
	ctx, cancel := s.makeContext()
	defer cancel()

	s.stats = Stats{}

	// The givens are the initial clue queue: none of them has been
	// propagated to its peers yet.
	solved, err := s.search(ctx, s.Grid, s.Grid.Clues(), 0)
	if err != nil {
		if errors.Is(err, errContradiction) {
			return nil, ErrUnsolvable
		}
		return nil, err
	}
	return solved, nil
}

// Stats returns counters from the last Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// search runs one node of the depth-first search: drain the clue
// queue, and either accept the completed grid or branch on the most
// constrained open cell. Each branch gets its own clone of g, so a
// failed branch leaves g intact for the next candidate.
func (s *Solver) search(ctx context.Context, g *grid.Grid, queue []grid.Clue, depth int) (*grid.Grid, error) {
	select {
	case <-ctx.Done():
		return nil, ErrTimeout
	default:
	}

	s.stats.Nodes++
	if s.options.MaxNodes > 0 && s.stats.Nodes > s.options.MaxNodes {
		return nil, ErrBudget
	}
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	if err := propagate(g, queue); err != nil {
		return nil, err
	}

	if g.Complete() {
		if !g.IsValid() {
			// Defensive: propagation should make this unreachable.
			return nil, ErrInvariant
		}
		return g, nil
	}

	pos := branchCell(g)
	for _, val := range g.Candidates(pos) {
		branch := g.Clone()
		if err := branch.Fix(pos, val); err != nil {
			return nil, err
		}

		solved, err := s.search(ctx, branch, []grid.Clue{{Pos: pos, Value: val}}, depth+1)
		if err != nil {
			if errors.Is(err, errContradiction) {
				continue // dead branch, try the next candidate
			}
			return nil, err
		}
		return solved, nil
	}

	return nil, errContradiction
}

// branchCell selects the open cell to branch on: fewest remaining
// candidates, ties broken by lowest position (row, then column).
// Minimizing the branching factor is the pruning heuristic that
// separates this search from plain brute force.
func branchCell(g *grid.Grid) int {
	best, bestCount := -1, 10

	for pos := 0; pos < grid.CellCount; pos++ {
		if g.Get(pos) != grid.EmptyCell {
			continue
		}
		if count := g.CandidateCount(pos); count < bestCount {
			best, bestCount = pos, count
			if count == 2 {
				// After propagation no open cell has fewer.
				break
			}
		}
	}

	return best
}

// makeContext derives the search context from the configured timeout.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
