package models

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Reveal opens the cell at row, col. Out-of-bounds coordinates, finished
// boards and cells that are already revealed or flagged are left alone and
// yield RevealNone.
//
// Opening a mine loses the game and reveals every mine on the board. Opening
// any other cell flood-reveals from it; the result is RevealWon if that
// completes the board.
func (b *Board) Reveal(row, col int) RevealResult {
	if b.Finished() || !b.inBounds(row, col) {
		return RevealResult{Kind: RevealNone}
	}
	if b.cells[row][col].State != Hidden {
		return RevealResult{Kind: RevealNone}
	}

	if b.cells[row][col].IsMine {
		changed := b.revealMines(Coord{Row: row, Col: col})
		b.setOutcome(Lost, row, col)
		return RevealResult{Kind: RevealLost, Changed: changed}
	}

	changed := b.floodReveal(Coord{Row: row, Col: col})
	if b.won() {
		b.setOutcome(Won, row, col)
		return RevealResult{Kind: RevealWon, Changed: changed}
	}
	return RevealResult{Kind: RevealRevealed, Changed: changed}
}

// ToggleFlag flips a hidden cell to flagged or back. It returns false
// without changing anything when the cell is out of bounds or revealed, the
// game is finished, or every flag is already in use.
func (b *Board) ToggleFlag(row, col int) bool {
	if b.Finished() || !b.inBounds(row, col) {
		return false
	}

	cell := &b.cells[row][col]
	switch cell.State {
	case Revealed:
		return false
	case Flagged:
		cell.State = Hidden
		b.flagsPlaced--
	case Hidden:
		if b.flagsPlaced >= b.mineTotal {
			return false
		}
		cell.State = Flagged
		b.flagsPlaced++
	}

	if b.won() {
		b.setOutcome(Won, row, col)
	}
	return true
}

// floodReveal reveals start and spreads through 4-connected blank cells.
// Cells with a nonzero count are revealed but stop the spread. Flagged cells
// and mines are never touched.
func (b *Board) floodReveal(start Coord) []Coord {
	var changed []Coord
	visited := mapset.New[Coord]()
	visited.Put(start)
	stack := []Coord{start}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &b.cells[c.Row][c.Col]
		cell.State = Revealed
		changed = append(changed, c)

		if cell.AdjacentMines > 0 {
			continue
		}

		for _, next := range [...]Coord{
			{Row: c.Row - 1, Col: c.Col},
			{Row: c.Row + 1, Col: c.Col},
			{Row: c.Row, Col: c.Col - 1},
			{Row: c.Row, Col: c.Col + 1},
		} {
			if !b.inBounds(next.Row, next.Col) || visited.Has(next) {
				continue
			}
			n := b.cells[next.Row][next.Col]
			if n.IsMine || n.State != Hidden {
				continue
			}
			visited.Put(next)
			stack = append(stack, next)
		}
	}
	return changed
}

// revealMines reveals the mine that was hit and every other mine. Flags on
// mines are taken down so that no cell ends up both flagged and revealed.
func (b *Board) revealMines(hit Coord) []Coord {
	changed := []Coord{hit}
	b.cells[hit.Row][hit.Col].State = Revealed

	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			cell := &b.cells[row][col]
			if !cell.IsMine || cell.State == Revealed {
				continue
			}
			if cell.State == Flagged {
				b.flagsPlaced--
			}
			cell.State = Revealed
			changed = append(changed, Coord{Row: row, Col: col})
		}
	}
	return changed
}

// won reports whether every mine is flagged and every other cell is
// revealed.
func (b *Board) won() bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			cell := b.cells[row][col]
			if cell.IsMine && cell.State != Flagged {
				return false
			}
			if !cell.IsMine && cell.State != Revealed {
				return false
			}
		}
	}
	return true
}

func (b *Board) setOutcome(o Outcome, row, col int) {
	b.outcome = o
	b.log.WithFields(logrus.Fields{
		"outcome": o.String(),
		"row":     row,
		"col":     col,
		"flags":   b.flagsPlaced,
	}).Debug("game finished")
}
