package models

// CellState is the player-visible state of a cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Outcome classifies a board as still playable or finished.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Coord is a zero-based grid position.
type Coord struct {
	Row int
	Col int
}

// Cell is one grid position. IsMine and AdjacentMines are fixed when the
// board is built; only State changes during play.
type Cell struct {
	IsMine        bool
	AdjacentMines uint8
	State         CellState
}

// CellView is what the presentation layer may know about a cell. Mine and
// count information is only filled in once the cell is revealed.
type CellView struct {
	State         CellState
	IsMine        bool
	AdjacentMines uint8
}

func (c Cell) view() CellView {
	if c.State != Revealed {
		return CellView{State: c.State}
	}
	return CellView{State: c.State, IsMine: c.IsMine, AdjacentMines: c.AdjacentMines}
}

// RevealKind tells the caller what a Reveal call did.
type RevealKind int

const (
	// RevealNone means the call was a no-op.
	RevealNone RevealKind = iota
	RevealRevealed
	RevealWon
	RevealLost
)

func (k RevealKind) String() string {
	switch k {
	case RevealNone:
		return "none"
	case RevealRevealed:
		return "revealed"
	case RevealWon:
		return "won"
	case RevealLost:
		return "lost"
	default:
		return "unknown"
	}
}

// RevealResult carries the kind of transition and every coordinate whose
// state changed, so a renderer can repaint only those cells.
type RevealResult struct {
	Kind    RevealKind
	Changed []Coord
}
