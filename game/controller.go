package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/config"
)

type GameController struct {
	service GameService
	log     logrus.FieldLogger
}

func NewGameController(service GameService, log logrus.FieldLogger) *GameController {
	return &GameController{service: service, log: log}
}

// StartGame builds the first board for level and runs the UI until the
// player quits.
func (c *GameController) StartGame(level config.Level) error {
	if err := c.service.NewGame(level); err != nil {
		return fmt.Errorf("failed to start level %d: %w", level.ID, err)
	}
	return c.service.Run()
}

func (c *GameController) TerminateGame() {
	c.log.Info("terminating the game")
	c.service.Stop()
}
