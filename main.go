package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/config"
	"github.com/dimaq12/minefield/game"
	"github.com/dimaq12/minefield/models"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (default: built-in levels)")
		levelID    = flag.Int("level", 0, "level id to play; prompts when 0 (empty answer picks the config default)")
		seed       = flag.Int64("seed", 0, "random seed for mine placement; 0 uses the clock")
		placement  = flag.String("placement", "", "override mine placement: shuffle or diagonal")
	)
	flag.Parse()

	if err := run(*configPath, *levelID, *seed, *placement); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string, levelID int, seed int64, placement string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if placement != "" {
		cfg.Placement = placement
	}

	log, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	placer, err := cfg.Placer()
	if err != nil {
		return err
	}

	if levelID == 0 {
		var quit bool
		if levelID, quit = promptLevel(cfg, os.Stdin, os.Stdout); quit {
			fmt.Println("Quitting...")
			return nil
		}
	}
	level, ok := cfg.Level(levelID)
	if !ok {
		return fmt.Errorf("level %d is not defined", levelID)
	}
	fmt.Println("Level:", level.Name)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"level":     level.ID,
		"seed":      seed,
		"placement": cfg.Placement,
	}).Info("starting")

	service := game.NewMinesweeperService(game.NewRenderer(), log,
		models.WithRand(rand.New(rand.NewSource(seed))),
		models.WithPlacer(placer))
	controller := game.NewGameController(service, log)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	stopWatch := watchSignals(sigs, controller.TerminateGame)
	defer stopWatch()

	if err := controller.StartGame(level); err != nil {
		return err
	}

	switch service.Board().Outcome() {
	case models.Won:
		fmt.Println("Congratulations! You won the game!")
	case models.Lost:
		fmt.Println("Game Over! You hit a mine.")
	}
	return nil
}

// watchSignals calls terminate when a signal arrives on sigs. The returned
// func stops watching and waits for the watcher to exit, so terminate never
// runs after it returns.
func watchSignals(sigs <-chan os.Signal, terminate func()) func() {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-sigs:
			terminate()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

// promptLevel asks for a level until it gets a known id or 'q'. An empty
// answer picks the configured default level.
func promptLevel(cfg *config.Config, in io.Reader, out io.Writer) (id int, quit bool) {
	ids := cfg.LevelIDs()
	choices := make([]string, len(ids))
	for i, id := range ids {
		choices[i] = strconv.Itoa(id)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Enter the level (%s, default %d) or 'q' to quit: ",
			strings.Join(choices, ", "), cfg.DefaultLevel)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				fmt.Fprintln(out, "Error reading input:", err)
			}
			return 0, true
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return cfg.DefaultLevel, false
		}
		if strings.ToLower(input) == "q" {
			return 0, true
		}

		id, err := strconv.Atoi(input)
		if err == nil {
			if _, ok := cfg.Level(id); ok {
				return id, false
			}
		}

		fmt.Fprintln(out, "Invalid input. Please enter one of the listed levels or 'q' to quit.")
	}
}
