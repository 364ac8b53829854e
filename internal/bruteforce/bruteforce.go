// Package bruteforce is an independent reference solver: plain
// cell-by-cell backtracking with no candidate bookkeeping. It shares
// no code with the main solver on purpose, so the two can be used to
// cross-check each other.
package bruteforce

import (
	"fmt"
	"strings"
)

// Table is a 9x9 Sudoku grid. 0 marks an empty cell.
type Table [9][9]int

// Parse creates a Table from an 81-character string, read row-major.
// '1'-'9' are givens; '+', '.' and '0' mark empty cells.
func Parse(s string) (*Table, error) {
	if len(s) != 81 {
		return nil, fmt.Errorf("puzzle must be exactly 81 characters, got %d", len(s))
	}

	var t Table
	for i := 0; i < 81; i++ {
		switch ch := s[i]; {
		case ch == '+' || ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			t[i/9][i%9] = int(ch - '0')
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return &t, nil
}

// Valid reports whether the filled cells satisfy the Sudoku
// constraints. Call it before Solve: Solve trusts its givens.
func (t *Table) Valid() bool {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			v := t[y][x]
			if v == 0 {
				continue
			}
			t[y][x] = 0
			ok := t.legal(x, y, v)
			t[y][x] = v
			if !ok {
				return false
			}
		}
	}
	return true
}

// Solve fills the table in place by trying digits 1-9 in the first
// empty cell and recursing. Returns false when no completion exists;
// the table is then left as it was.
func (t *Table) Solve() bool {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if t[y][x] != 0 {
				continue
			}
			for v := 1; v <= 9; v++ {
				if t.legal(x, y, v) {
					t[y][x] = v
					if t.Solve() {
						return true
					}
					t[y][x] = 0
				}
			}
			return false
		}
	}
	return true
}

// legal reports whether placing v at (x, y) keeps the row, column,
// and 3x3 box free of duplicates.
func (t *Table) legal(x, y, v int) bool {
	for n := 0; n < 9; n++ {
		if t[y][n] == v || t[n][x] == v {
			return false
		}
	}
	bx, by := x/3*3, y/3*3
	for yy := by; yy < by+3; yy++ {
		for xx := bx; xx < bx+3; xx++ {
			if t[yy][xx] == v {
				return false
			}
		}
	}
	return true
}

// String returns the table as an 81-character string, '+' for empty cells.
func (t *Table) String() string {
	var sb strings.Builder
	sb.Grow(81)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if t[y][x] == 0 {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('0' + byte(t[y][x]))
			}
		}
	}
	return sb.String()
}
