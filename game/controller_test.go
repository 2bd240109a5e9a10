package game

import (
	"errors"
	"testing"

	"github.com/dimaq12/minefield/config"
)

type fakeService struct {
	newGameErr error
	started    []config.Level
	runs       int
	stops      int
}

func (f *fakeService) NewGame(level config.Level) error {
	if f.newGameErr != nil {
		return f.newGameErr
	}
	f.started = append(f.started, level)
	return nil
}

func (f *fakeService) Restart() error { return nil }

func (f *fakeService) Run() error {
	f.runs++
	return nil
}

func (f *fakeService) Stop() { f.stops++ }

func TestStartGame(t *testing.T) {
	svc := &fakeService{}
	c := NewGameController(svc, testLogger())

	if err := c.StartGame(tinyLevel); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if len(svc.started) != 1 || svc.started[0] != tinyLevel {
		t.Errorf("started levels: got %+v", svc.started)
	}
	if svc.runs != 1 {
		t.Errorf("runs: got %d, want 1", svc.runs)
	}
}

func TestStartGameFailsBeforeRun(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{newGameErr: boom}
	c := NewGameController(svc, testLogger())

	if err := c.StartGame(tinyLevel); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
	if svc.runs != 0 {
		t.Errorf("Run called %d times after a failed start", svc.runs)
	}
}

func TestTerminateGame(t *testing.T) {
	svc := &fakeService{}
	NewGameController(svc, testLogger()).TerminateGame()
	if svc.stops != 1 {
		t.Errorf("stops: got %d, want 1", svc.stops)
	}
}
