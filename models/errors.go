package models

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardSize is returned by NewBoard when the board has no cells.
	ErrBoardSize = errors.New("board size must be at least 1")
	// ErrMineCount is returned by NewBoard when the mine count is negative
	// or leaves no safe cell on the board.
	ErrMineCount = errors.New("mine count must be in [0, size*size)")
	// ErrInvariant marks a broken internal invariant. It is never caused by
	// gameplay and should be treated as a bug.
	ErrInvariant = errors.New("board invariant violated")
	// ErrPlacementBudget is returned when the diagonal probe walk runs out of
	// steps before every mine is placed.
	ErrPlacementBudget = fmt.Errorf("%w: mine placement exceeded its probe budget", ErrInvariant)
)
