package grid

import (
	"math/bits"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
)

// allNine has bits 0-8 set: every digit 1-9 is still a candidate.
const allNine = 0x1ff

// Clue marks a cell that has just become fixed and whose value still
// has to be eliminated from the candidate sets of its peers.
type Clue struct {
	Pos   int
	Value int
}

// Grid represents a 9x9 Sudoku grid. Each cell is either fixed to a
// value 1-9 or open with a set of remaining candidate digits, stored
// as a 9-bit mask (bit i set means digit i+1 is still possible).
//
// Grid holds all cell state by value, so Clone is a plain copy and
// search branches never share mutable state.
type Grid struct {
	cells [CellCount]int
	cand  [CellCount]uint16

	// emptyCount tracks open cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside Fix.
	emptyCount int
}

// New creates a Grid with every cell open and all nine candidates.
func New() *Grid {
	g := &Grid{emptyCount: CellCount}
	for pos := 0; pos < CellCount; pos++ {
		g.cand[pos] = allNine
	}
	return g
}

// Clone creates an independent deep copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

// Get returns the fixed value at the given position, or EmptyCell if
// the cell is still open. Returns InvalidCell for invalid positions.
func (g *Grid) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return g.cells[pos]
}

// Fix transitions the cell at pos to the fixed value val. Fixing an
// already fixed cell is a no-op when the value matches and an
// ErrInvalidTransition otherwise.
//
// Fix does not touch the cell's peers; eliminating val from them is
// the propagator's job.
func (g *Grid) Fix(pos, val int) error {
	if err := validatePosition(pos); err != nil {
		return err
	}
	if err := validateValue(val); err != nil {
		return err
	}
	if cur := g.cells[pos]; cur != EmptyCell {
		if cur == val {
			return nil
		}
		return invalidTransitionError(pos, cur, val)
	}

	g.cells[pos] = val
	g.cand[pos] = 0
	g.emptyCount--

	return nil
}

// RemoveCandidate removes val from the candidate set of the open cell
// at pos, reporting whether anything changed. Fixed cells and values
// that were already absent report false.
func (g *Grid) RemoveCandidate(pos, val int) bool {
	if !isValidPosition(pos) || !isValidDigit(val) {
		return false
	}
	if g.cells[pos] != EmptyCell {
		return false
	}

	mask := uint16(1 << (val - 1))
	if g.cand[pos]&mask == 0 {
		return false
	}
	g.cand[pos] &^= mask
	return true
}

// CandidateCount returns how many candidates remain at pos.
// Fixed cells and invalid positions report 0.
func (g *Grid) CandidateCount(pos int) int {
	if !isValidPosition(pos) {
		return 0
	}
	return bits.OnesCount16(g.cand[pos])
}

// SoleCandidate returns the single remaining candidate of the open
// cell at pos. It must only be called when CandidateCount(pos) == 1.
func (g *Grid) SoleCandidate(pos int) int {
	return bits.TrailingZeros16(g.cand[pos]) + 1
}

// Candidates returns the remaining candidates at pos in ascending
// order. An empty slice means the cell is fixed or has run dry.
func (g *Grid) Candidates(pos int) []int {
	if !isValidPosition(pos) {
		return nil
	}
	candidates := make([]int, 0, 9)
	for num := 1; num <= 9; num++ {
		if g.cand[pos]&uint16(1<<(num-1)) != 0 {
			candidates = append(candidates, num)
		}
	}
	return candidates
}

// Clues returns every fixed cell as a Clue, in position order. The
// result seeds the initial propagation queue after parsing.
func (g *Grid) Clues() []Clue {
	clues := make([]Clue, 0, CellCount-g.emptyCount)
	for pos := 0; pos < CellCount; pos++ {
		if g.cells[pos] != EmptyCell {
			clues = append(clues, Clue{Pos: pos, Value: g.cells[pos]})
		}
	}
	return clues
}

// Complete reports whether every cell is fixed.
func (g *Grid) Complete() bool {
	return g.emptyCount == 0
}

// EmptyCount returns the number of open cells.
func (g *Grid) EmptyCount() int {
	return g.emptyCount
}

// IsValid reports whether the fixed cells satisfy the Sudoku
// constraints: no row, column, or box holds the same value twice.
// Open cells are ignored.
func (g *Grid) IsValid() bool {
	var rowCheck, colCheck, boxCheck [9]uint

	for pos := 0; pos < CellCount; pos++ {
		val := g.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// String returns the grid as an 81-character string.
// Open cells are represented as '+', fixed cells as '1'-'9'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g.cells {
		if cell == EmptyCell {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with grid lines.
func (g *Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			val := g.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
