package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(cfg.Levels))
	}

	want := map[int][2]int{
		1: {10, 10},
		2: {15, 40},
		3: {20, 80},
		4: {25, 125},
		5: {30, 180},
	}
	for id, dims := range want {
		l, ok := cfg.Level(id)
		if !ok {
			t.Errorf("level %d not found", id)
			continue
		}
		if l.Size != dims[0] || l.Mines != dims[1] {
			t.Errorf("level %d: got %dx%d with %d mines, want size %d with %d mines",
				id, l.Size, l.Size, l.Mines, dims[0], dims[1])
		}
	}

	if cfg.DefaultLevel != 1 {
		t.Errorf("DefaultLevel: got %d, want 1", cfg.DefaultLevel)
	}
	p, err := cfg.Placer()
	if err != nil {
		t.Fatalf("Placer() error: %v", err)
	}
	if _, ok := p.(models.ShufflePlacer); !ok {
		t.Errorf("Placer(): got %T, want models.ShufflePlacer", p)
	}
}

func TestLevelNotFound(t *testing.T) {
	if _, ok := Default().Level(42); ok {
		t.Error("Level(42) found, want missing")
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		content := `
logLevel: debug
placement: diagonal
defaultLevel: 7
levels:
  - id: 7
    name: tiny
    size: 4
    mines: 3
`
		path := filepath.Join(tempDir, "valid.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		l, ok := cfg.Level(7)
		if !ok || l.Name != "tiny" || l.Size != 4 || l.Mines != 3 {
			t.Errorf("Level(7): got %+v, %v", l, ok)
		}
		p, err := cfg.Placer()
		if err != nil {
			t.Fatalf("Placer() error: %v", err)
		}
		if _, ok := p.(models.DiagonalPlacer); !ok {
			t.Errorf("Placer(): got %T, want models.DiagonalPlacer", p)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("levels: [\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error, got nil")
		}
	})
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		errText string
	}{
		{
			name:    "no levels",
			content: "defaultLevel: 1\n",
			errText: "at least one level",
		},
		{
			name: "duplicate id",
			content: `defaultLevel: 1
levels:
  - {id: 1, size: 5, mines: 2}
  - {id: 1, size: 6, mines: 2}
`,
			errText: "duplicate id",
		},
		{
			name: "zero size",
			content: `defaultLevel: 1
levels:
  - {id: 1, size: 0, mines: 0}
`,
			wantErr: models.ErrBoardSize,
		},
		{
			name: "board full of mines",
			content: `defaultLevel: 1
levels:
  - {id: 1, size: 3, mines: 9}
`,
			wantErr: models.ErrMineCount,
		},
		{
			name: "unknown default level",
			content: `defaultLevel: 2
levels:
  - {id: 1, size: 3, mines: 1}
`,
			errText: "default level 2",
		},
		{
			name: "unknown placement",
			content: `defaultLevel: 1
placement: spiral
levels:
  - {id: 1, size: 3, mines: 1}
`,
			errText: "unknown placement",
		},
		{
			name: "bad log level",
			content: `defaultLevel: 1
logLevel: loud
levels:
  - {id: 1, size: 3, mines: 1}
`,
			errText: "logLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q does not mention %q", err, tt.errText)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		log, closeFn, err := NewLogger(&Config{LogLevel: "warn"})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer closeFn()
		if log.GetLevel() != logrus.WarnLevel {
			t.Errorf("level: got %v, want warn", log.GetLevel())
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "minefield.log")
		log, closeFn, err := NewLogger(&Config{LogLevel: "debug", LogFile: path})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		log.WithField("row", 3).Debug("cell revealed")
		if err := closeFn(); err != nil {
			t.Fatalf("close failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read log: %v", err)
		}
		if !strings.Contains(string(data), "cell revealed") || !strings.Contains(string(data), "row=3") {
			t.Errorf("log file content unexpected: %q", data)
		}
	})

	t.Run("bad level", func(t *testing.T) {
		if _, _, err := NewLogger(&Config{LogLevel: "loud"}); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestLevelIDsSortedNumerically(t *testing.T) {
	cfg := &Config{}
	for _, id := range []int{10, 2, 11, 1} {
		cfg.Levels = append(cfg.Levels, Level{ID: id, Size: 4, Mines: 1})
	}

	got := cfg.LevelIDs()
	want := []int{1, 2, 10, 11}
	if len(got) != len(want) {
		t.Fatalf("LevelIDs(): got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LevelIDs(): got %v, want %v", got, want)
		}
	}
}
