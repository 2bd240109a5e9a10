package models

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Board is a square minefield together with the flag budget and the game
// outcome. All mutation goes through Reveal and ToggleFlag. A Board is not
// safe for concurrent use.
type Board struct {
	cells       [][]Cell
	size        int
	mineTotal   int
	flagsPlaced int
	outcome     Outcome
	log         logrus.FieldLogger
}

type boardOptions struct {
	rand   *rand.Rand
	placer Placer
	log    logrus.FieldLogger
}

// Option configures NewBoard.
type Option func(*boardOptions)

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(o *boardOptions) {
		o.rand = r
	}
}

// WithSeed seeds a fresh random source for mine placement.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithPlacer selects the mine placement strategy. The default is
// ShufflePlacer.
func WithPlacer(p Placer) Option {
	return func(o *boardOptions) {
		o.placer = p
	}
}

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *boardOptions) {
		o.log = log
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ValidateDimensions reports whether a size x size board with mineCount
// mines can be built.
func ValidateDimensions(size, mineCount int) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrBoardSize, size)
	}
	if mineCount < 0 || mineCount >= size*size {
		return fmt.Errorf("%w: got %d mines for a %dx%d board", ErrMineCount, mineCount, size, size)
	}
	return nil
}

// NewBoard builds a size x size board with mineCount mines and computes the
// adjacency count of every cell.
func NewBoard(size, mineCount int, opts ...Option) (*Board, error) {
	if err := ValidateDimensions(size, mineCount); err != nil {
		return nil, err
	}

	o := boardOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.placer == nil {
		o.placer = ShufflePlacer{}
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}

	b := &Board{
		cells:     cells,
		size:      size,
		mineTotal: mineCount,
		outcome:   InProgress,
		log:       o.log,
	}

	mines, err := o.placer.Place(size, mineCount, o.rand)
	if err != nil {
		return nil, err
	}
	if err := checkPlacement(size, mineCount, mines); err != nil {
		return nil, err
	}
	for _, c := range mines {
		b.cells[c.Row][c.Col].IsMine = true
	}
	b.countAdjacentMines()

	b.log.WithFields(logrus.Fields{
		"size":   size,
		"mines":  mineCount,
		"placer": fmt.Sprintf("%T", o.placer),
	}).Debug("board created")

	return b, nil
}

// inBounds reports whether row and col address a cell of the board.
func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// countAdjacentMines stores, for every cell including mines, the number of
// mines among its up to eight in-bounds neighbors.
func (b *Board) countAdjacentMines() {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			var n uint8
			for deltaRow := -1; deltaRow <= 1; deltaRow++ {
				for deltaCol := -1; deltaCol <= 1; deltaCol++ {
					if deltaRow == 0 && deltaCol == 0 {
						continue
					}
					r, c := row+deltaRow, col+deltaCol
					if b.inBounds(r, c) && b.cells[r][c].IsMine {
						n++
					}
				}
			}
			b.cells[row][col].AdjacentMines = n
		}
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// MineTotal returns the number of mines on the board.
func (b *Board) MineTotal() int {
	return b.mineTotal
}

// FlagsPlaced returns the number of flagged cells.
func (b *Board) FlagsPlaced() int {
	return b.flagsPlaced
}

// FlagsRemaining returns how many flags can still be placed. Mine counter
// displays show this value.
func (b *Board) FlagsRemaining() int {
	return b.mineTotal - b.flagsPlaced
}

// Outcome returns the current game outcome.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Finished reports whether the game has been won or lost.
func (b *Board) Finished() bool {
	return b.outcome != InProgress
}

// View returns the presentation view of one cell. ok is false for
// coordinates outside the board.
func (b *Board) View(row, col int) (view CellView, ok bool) {
	if !b.inBounds(row, col) {
		return CellView{}, false
	}
	return b.cells[row][col].view(), true
}

// Views returns a copy of the whole board as presentation views.
func (b *Board) Views() [][]CellView {
	views := make([][]CellView, b.size)
	for row := range views {
		views[row] = make([]CellView, b.size)
		for col := range views[row] {
			views[row][col] = b.cells[row][col].view()
		}
	}
	return views
}

// String dumps the board as the player sees it: '-' hidden, 'F' flagged,
// '*' revealed mine, '.' revealed blank and a digit for revealed counts.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			cell := b.cells[row][col]
			switch {
			case cell.State == Flagged:
				sb.WriteByte('F')
			case cell.State == Hidden:
				sb.WriteByte('-')
			case cell.IsMine:
				sb.WriteByte('*')
			case cell.AdjacentMines == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte('0' + cell.AdjacentMines)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
