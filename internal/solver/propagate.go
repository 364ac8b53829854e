package solver

import "github.com/cluegrid/sudoku/internal/grid"

// propagate drains a FIFO queue of clues against g. Each dequeued
// clue's value is removed from the candidate sets of the clue cell's
// 20 peers. A peer reduced to a single candidate is fixed and enqueued
// as a new clue, so one clue can chain into many. Propagation stops at
// a fixed point (empty queue) or with errContradiction the moment a
// peer runs out of candidates.
//
// A peer that is already fixed to the clue's value is also a
// contradiction: two equal values in one unit. This is how conflicting
// givens are caught, since they never appear in any candidate set.
//
// propagate mutates g and nothing else, so the caller can discard the
// grid on contradiction and keep its own copy untouched.
func propagate(g *grid.Grid, queue []grid.Clue) error {
	for len(queue) > 0 {
		clue := queue[0]
		queue = queue[1:]

		for _, peer := range grid.PeersOf(clue.Pos) {
			if fixed := g.Get(peer); fixed != grid.EmptyCell {
				if fixed == clue.Value {
					return errContradiction
				}
				continue
			}

			if !g.RemoveCandidate(peer, clue.Value) {
				continue
			}

			switch g.CandidateCount(peer) {
			case 0:
				return errContradiction
			case 1:
				forced := g.SoleCandidate(peer)
				if err := g.Fix(peer, forced); err != nil {
					return err
				}
				queue = append(queue, grid.Clue{Pos: peer, Value: forced})
			}
		}
	}
	return nil
}
