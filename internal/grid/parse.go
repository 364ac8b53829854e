package grid

import "fmt"

// Parse creates a Grid from an 81-character string, read row-major.
// Use '1'-'9' for known cells and '+' (also accepted: '.' or '0') for
// unknown cells; unknown cells start with all nine candidates.
//
// Parse only checks the format. Conflicting givens are not rejected
// here; they surface as a contradiction during initial propagation.
func Parse(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}

	g := New()
	for pos := 0; pos < CellCount; pos++ {
		switch ch := s[pos]; ch {
		case '+', '.', '0':
			// Open cell, already initialized with all candidates.
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if err := g.Fix(pos, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("invalid grid at position %d: %w", pos, err)
			}
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadCharacter, ch, pos)
		}
	}
	return g, nil
}
