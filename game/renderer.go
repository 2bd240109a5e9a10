package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minefield/config"
	"github.com/dimaq12/minefield/models"
)

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	layout     *tview.Flex
}

func NewRenderer() *Renderer {
	table := tview.NewTable()
	status := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(status, 1, 0, false).
		AddItem(table, 0, 1, true)

	return &Renderer{
		boardTable: table,
		status:     status,
		layout:     layout,
	}
}

// DrawBoard repaints every cell. It is used when a new board replaces the
// old one, which may have a different size.
func (r *Renderer) DrawBoard(board *models.Board) {
	r.boardTable.Clear()
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			r.RenderCell(board, row, col)
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.boardTable.SetFixed(board.Size(), board.Size())
	r.boardTable.Select(0, 0)
}

// RenderCells repaints only the given cells.
func (r *Renderer) RenderCells(board *models.Board, coords []models.Coord) {
	for _, c := range coords {
		r.RenderCell(board, c.Row, c.Col)
	}
}

func (r *Renderer) RenderCell(board *models.Board, row, col int) {
	view, ok := board.View(row, col)
	if !ok {
		return
	}
	text, color := cellText(view)
	r.boardTable.SetCell(row, col, tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(color))
}

// RenderStatus shows the level, the flag counter and the outcome.
func (r *Renderer) RenderStatus(board *models.Board, level config.Level) {
	text := fmt.Sprintf("%s %dx%d  flags left: %d", level.Name, board.Size(), board.Size(), board.FlagsRemaining())
	switch board.Outcome() {
	case models.Won:
		text += "  You won! r: restart, q: quit"
	case models.Lost:
		text += "  Game over! You hit a mine. r: restart, q: quit"
	}
	r.status.SetText(text)
}

func cellText(v models.CellView) (string, tcell.Color) {
	switch v.State {
	case models.Flagged:
		return "F", tcell.ColorYellow
	case models.Revealed:
		if v.IsMine {
			return "M", tcell.ColorRed
		}
		return fmt.Sprintf("%d", v.AdjacentMines), countColors[v.AdjacentMines]
	default:
		return ".", tcell.ColorGray
	}
}

var countColors = [...]tcell.Color{
	tcell.ColorDarkGray,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorWhite,
	tcell.ColorSilver,
}
