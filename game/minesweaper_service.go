package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/config"
	"github.com/dimaq12/minefield/models"
)

type GameService interface {
	NewGame(level config.Level) error
	Restart() error
	Run() error
	Stop()
}

// MinesweeperService connects one board to the terminal UI. Every engine
// call runs on the tview event loop, so calls on a board never overlap.
type MinesweeperService struct {
	board     *models.Board
	level     config.Level
	renderer  *Renderer
	app       *tview.Application
	log       logrus.FieldLogger
	boardOpts []models.Option
}

// NewMinesweeperService creates a service. opts are passed to every
// models.NewBoard call, including restarts.
func NewMinesweeperService(renderer *Renderer, log logrus.FieldLogger, opts ...models.Option) *MinesweeperService {
	return &MinesweeperService{
		renderer:  renderer,
		log:       log,
		boardOpts: opts,
	}
}

// NewGame replaces the current board with a fresh one for level.
func (s *MinesweeperService) NewGame(level config.Level) error {
	opts := make([]models.Option, 0, len(s.boardOpts)+1)
	opts = append(opts, models.WithLogger(s.log))
	opts = append(opts, s.boardOpts...)

	board, err := models.NewBoard(level.Size, level.Mines, opts...)
	if err != nil {
		return fmt.Errorf("failed to create board for level %d: %w", level.ID, err)
	}

	s.board = board
	s.level = level
	s.renderer.DrawBoard(board)
	s.renderer.RenderStatus(board, level)

	s.log.WithFields(logrus.Fields{
		"level": level.Name,
		"size":  level.Size,
		"mines": level.Mines,
	}).Info("new game")
	return nil
}

// Restart starts the current level again on a new board.
func (s *MinesweeperService) Restart() error {
	return s.NewGame(s.level)
}

// Board returns the current board.
func (s *MinesweeperService) Board() *models.Board {
	return s.board
}

// Reveal opens a cell and repaints the cells that changed.
func (s *MinesweeperService) Reveal(row, col int) models.RevealResult {
	res := s.board.Reveal(row, col)
	if res.Kind == models.RevealNone {
		return res
	}

	s.renderer.RenderCells(s.board, res.Changed)
	s.renderer.RenderStatus(s.board, s.level)

	s.log.WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"result":  res.Kind.String(),
		"changed": len(res.Changed),
	}).Debug("reveal")
	return res
}

// ToggleFlag flags or unflags a cell and repaints it.
func (s *MinesweeperService) ToggleFlag(row, col int) bool {
	if !s.board.ToggleFlag(row, col) {
		return false
	}

	s.renderer.RenderCell(s.board, row, col)
	s.renderer.RenderStatus(s.board, s.level)

	s.log.WithFields(logrus.Fields{
		"row":       row,
		"col":       col,
		"flagsLeft": s.board.FlagsRemaining(),
		"outcome":   s.board.Outcome().String(),
	}).Debug("flag toggled")
	return true
}

// Run shows the board and blocks until the player quits.
func (s *MinesweeperService) Run() error {
	s.app = tview.NewApplication()
	s.renderer.boardTable.SetInputCapture(s.handleKey)
	s.app.SetRoot(s.renderer.layout, true).SetFocus(s.renderer.boardTable)

	if err := s.app.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// Stop ends Run. It is a no-op when the UI is not running.
func (s *MinesweeperService) Stop() {
	if s.app != nil {
		s.app.Stop()
	}
}

// handleKey maps keys to game actions: Enter reveals, f flags, r restarts,
// q or Esc quits. Other keys (arrows) fall through to the table.
func (s *MinesweeperService) handleKey(event *tcell.EventKey) *tcell.EventKey {
	row, col := s.renderer.boardTable.GetSelection()

	switch event.Key() {
	case tcell.KeyEnter:
		s.Reveal(row, col)
		return nil
	case tcell.KeyEscape:
		s.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f', 'F':
			s.ToggleFlag(row, col)
			return nil
		case 'r', 'R':
			if err := s.Restart(); err != nil {
				s.log.WithError(err).Error("restart failed")
			}
			return nil
		case 'q', 'Q':
			s.Stop()
			return nil
		}
	}
	return event
}
