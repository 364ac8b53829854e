package grid

import (
	"errors"
	"fmt"
)

var (
	ErrBadLength         = errors.New("puzzle must be exactly 81 characters")
	ErrBadCharacter      = errors.New("puzzle contains an invalid character")
	ErrInvalidPosition   = errors.New("position out of bounds")
	ErrInvalidValue      = errors.New("value must be between 1-9")
	ErrInvalidTransition = errors.New("cell is already fixed to a different value")
)

// isValidPosition reports whether a given position is in bounds of a Sudoku grid.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validatePosition checks if a position is within grid bounds.
func validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// isValidDigit reports whether a given number is a Sudoku digit.
func isValidDigit(num int) bool {
	return num >= 1 && num <= 9
}

// validateValue checks if a value is valid for Sudoku (1-9).
func validateValue(val int) error {
	if !isValidDigit(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}

func invalidTransitionError(pos, cur, val int) error {
	return fmt.Errorf("%w: cell %d holds %d, cannot fix to %d", ErrInvalidTransition, pos, cur, val)
}
