package models

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Placer chooses the mine positions for a new board.
type Placer interface {
	Place(size, count int, r *rand.Rand) ([]Coord, error)
}

// Placement names accepted by ParsePlacer.
const (
	PlacementShuffle  = "shuffle"
	PlacementDiagonal = "diagonal"
)

// ParsePlacer maps a placement name from configuration to a Placer.
// An empty name selects the shuffle placer.
func ParsePlacer(name string) (Placer, error) {
	switch name {
	case "", PlacementShuffle:
		return ShufflePlacer{}, nil
	case PlacementDiagonal:
		return DiagonalPlacer{}, nil
	default:
		return nil, fmt.Errorf("unknown placement %q", name)
	}
}

// ShufflePlacer picks count distinct cells uniformly at random.
type ShufflePlacer struct{}

// Place shuffles every coordinate of the board with Fisher-Yates and keeps
// the first count of them.
// https://en.wikipedia.org/wiki/Fisher–Yates_shuffle
func (ShufflePlacer) Place(size, count int, r *rand.Rand) ([]Coord, error) {
	coords := make([]Coord, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			coords[row*size+col] = Coord{Row: row, Col: col}
		}
	}

	for i := len(coords) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}

	if count > len(coords) {
		count = len(coords)
	}
	return coords[:count], nil
}

// DiagonalPlacer samples a random cell per mine and, on collision, walks
// down-right one step at a time. A walk that leaves the grid restarts at
// (1, 0). The walk does not visit every cell, so it can stall on dense
// boards; the total number of probe steps is capped at count*size*size.
type DiagonalPlacer struct{}

// Place walks the diagonal from a random start for each mine. It returns
// ErrPlacementBudget when the walk runs out of probe steps.
func (DiagonalPlacer) Place(size, count int, r *rand.Rand) ([]Coord, error) {
	mined := make([]bool, size*size)
	coords := make([]Coord, 0, count)
	budget := count * size * size
	steps := 0

	for len(coords) < count {
		start := Coord{Row: r.Intn(size), Col: r.Intn(size)}
		c, err := probeDiagonal(mined, size, start, &steps, budget)
		if err != nil {
			return nil, fmt.Errorf("%w: placed %d of %d mines on a %dx%d board",
				err, len(coords), count, size, size)
		}
		mined[c.Row*size+c.Col] = true
		coords = append(coords, c)
	}
	return coords, nil
}

// probeDiagonal returns the first free cell on the diagonal walk from start.
// steps is shared across calls so the budget covers the whole placement.
func probeDiagonal(mined []bool, size int, start Coord, steps *int, budget int) (Coord, error) {
	c := start
	for mined[c.Row*size+c.Col] {
		*steps++
		if *steps > budget {
			return Coord{}, ErrPlacementBudget
		}
		c.Row++
		c.Col++
		if c.Row >= size || c.Col >= size {
			c = Coord{Row: 1, Col: 0}
		}
	}
	return c, nil
}

// FixedPlacer places mines at exactly the listed coordinates.
type FixedPlacer []Coord

// Place returns a copy of the listed coordinates and ignores the board size,
// count and random source. NewBoard rejects a list that does not fit.
func (p FixedPlacer) Place(_, _ int, _ *rand.Rand) ([]Coord, error) {
	coords := make([]Coord, len(p))
	copy(coords, p)
	return coords, nil
}

// checkPlacement verifies that a placer returned count distinct in-bounds
// coordinates.
func checkPlacement(size, count int, coords []Coord) error {
	if len(coords) != count {
		return fmt.Errorf("%w: placer returned %d mines, want %d", ErrInvariant, len(coords), count)
	}

	seen := mapset.New[Coord]()
	for _, c := range coords {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
			return fmt.Errorf("%w: mine at (%d,%d) is outside the %dx%d board",
				ErrInvariant, c.Row, c.Col, size, size)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: mine at (%d,%d) placed twice", ErrInvariant, c.Row, c.Col)
		}
		seen.Put(c)
	}
	return nil
}
