package solver

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cluegrid/sudoku/internal/grid"
)

// The classic example puzzle and its unique solution.
const (
	classicPuzzle = "53++7++++6++195++++98++++6+8+++6+++34++8+3++17+++2+++6+6++++28++++419++5++++8++79"
	classicSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return g
}

func TestSolveClassic(t *testing.T) {
	g := mustParse(t, classicPuzzle)

	solved, err := New(g, nil).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got := solved.String(); got != classicSolved {
		t.Errorf("Solve() = %q, want %q", got, classicSolved)
	}
	if !solved.Complete() || !solved.IsValid() {
		t.Error("Solve() returned an incomplete or invalid grid")
	}
}

func TestSolveDeterministic(t *testing.T) {
	g := mustParse(t, classicPuzzle)

	first, err := New(g, nil).Solve()
	if err != nil {
		t.Fatalf("first Solve() error = %v", err)
	}
	second, err := New(g, nil).Solve()
	if err != nil {
		t.Fatalf("second Solve() error = %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("Solve() is not deterministic: %q vs %q", first.String(), second.String())
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	g := mustParse(t, classicPuzzle)
	before := g.String()

	if _, err := New(g, nil).Solve(); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got := g.String(); got != before {
		t.Errorf("Solve() mutated the caller's grid: %q, want %q", got, before)
	}
}

func TestSolveEmptyPuzzleUnits(t *testing.T) {
	g := mustParse(t, strings.Repeat("+", 81))

	solved, err := New(g, nil).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !solved.Complete() {
		t.Fatal("Solve() returned an incomplete grid")
	}

	// Every row, column, and box must hold a permutation of 1..9.
	s := solved.String()
	for u := 0; u < 9; u++ {
		var row, col, box [10]int
		for i := 0; i < 9; i++ {
			row[s[9*u+i]-'0']++
			col[s[9*i+u]-'0']++
			boxBase := (u/3)*27 + (u%3)*3
			box[s[boxBase+9*(i/3)+i%3]-'0']++
		}
		for v := 1; v <= 9; v++ {
			if row[v] != 1 || col[v] != 1 || box[v] != 1 {
				t.Fatalf("unit %d is not a permutation of 1..9 in %q", u, s)
			}
		}
	}
}

func TestSolveUnsolvableConflictingGivens(t *testing.T) {
	// Two 5s among the givens of row 0.
	g := mustParse(t, "5+++5"+strings.Repeat("+", 76))

	solved, err := New(g, nil).Solve()
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Solve() error = %v, want ErrUnsolvable", err)
	}
	if solved != nil {
		t.Error("Solve() returned a grid for an unsolvable puzzle")
	}
}

func TestSolveUnsolvableNoCandidates(t *testing.T) {
	// Row 0 pins digits 1-8; the 9 below the last cell of row 0 leaves
	// that cell with no candidate at all.
	input := "12345678+" + "++++++++9" + strings.Repeat("+", 63)
	g := mustParse(t, input)

	if _, err := New(g, nil).Solve(); !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Solve() error = %v, want ErrUnsolvable", err)
	}
}

func TestSolveNodeBudget(t *testing.T) {
	// An empty puzzle cannot be finished by propagation alone, so a
	// one-node budget must trip before any branch completes.
	g := mustParse(t, strings.Repeat("+", 81))

	_, err := New(g, &Options{MaxNodes: 1}).Solve()
	if !errors.Is(err, ErrBudget) {
		t.Errorf("Solve() error = %v, want ErrBudget", err)
	}
}

func TestSolveTimeout(t *testing.T) {
	g := mustParse(t, strings.Repeat("+", 81))

	_, err := New(g, &Options{Timeout: time.Nanosecond}).Solve()
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Solve() error = %v, want ErrTimeout", err)
	}
}

func TestSolvePropagationOnly(t *testing.T) {
	// Blank three scattered cells of a solved grid: propagation fills
	// them back without any branching.
	b := []byte(classicSolved)
	b[0], b[40], b[80] = '+', '+', '+'

	s := New(mustParse(t, string(b)), nil)
	solved, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got := solved.String(); got != classicSolved {
		t.Errorf("Solve() = %q, want %q", got, classicSolved)
	}
	if stats := s.Stats(); stats.Nodes != 1 {
		t.Errorf("Stats().Nodes = %d, want 1 (no branching expected)", stats.Nodes)
	}
}

func TestSolveFullyGivenPuzzle(t *testing.T) {
	solved, err := New(mustParse(t, classicSolved), nil).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if solved.String() != classicSolved {
		t.Errorf("Solve() altered an already solved grid")
	}
}

func BenchmarkSolveClassic(b *testing.B) {
	g, err := grid.Parse(classicPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(g, nil).Solve(); err != nil {
			b.Fatal(err)
		}
	}
}
