// Package game holds the board model and per-session scoring for the
// coordinate trainer. It has no GUI dependencies.
package game

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// GridSize is the board edge length in squares.
	GridSize = 8

	// TileSize is the square edge length in pixels on the rendered board.
	TileSize = 60
)

// Square identifies one board square by zero-based file ('A' == 0)
// and one-based rank.
type Square struct {
	File int
	Rank int
}

// Algebraic renders the square in uppercase algebraic notation, e.g. "E4".
func (s Square) Algebraic() string {
	return fmt.Sprintf("%c%d", 'A'+rune(s.File), s.Rank)
}

// Valid reports whether file and rank are on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < GridSize && s.Rank >= 1 && s.Rank <= GridSize
}

// ScreenCell maps the square onto White-oriented screen coordinates:
// column 0 is the A file, row 0 is the eighth rank.
func (s Square) ScreenCell() (col, row int) {
	return s.File, GridSize - s.Rank
}

// ParseSquare parses algebraic notation, accepting either case.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", text)
	}
	file := text[0]
	switch {
	case file >= 'a' && file <= 'h':
		file -= 'a' - 'A'
	case file >= 'A' && file <= 'H':
	default:
		return Square{}, fmt.Errorf("invalid file in %q", text)
	}
	if text[1] < '1' || text[1] > '8' {
		return Square{}, fmt.Errorf("invalid rank in %q", text)
	}
	return Square{File: int(file - 'A'), Rank: int(text[1] - '0')}, nil
}

// Board tracks the current target square and viewing perspective.
// Targets are stored White-oriented; perspective only changes how screen
// cells map onto squares.
type Board struct {
	whitePerspective bool
	target           *Square
	rng              *rand.Rand
}

// NewBoard returns a board viewed from White's side. A nil rng gets a
// time-seeded source.
func NewBoard(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{whitePerspective: true, rng: rng}
}

// WhitePerspective reports the current viewpoint.
func (b *Board) WhitePerspective() bool {
	return b.whitePerspective
}

// Flip toggles between White's and Black's viewpoint.
func (b *Board) Flip() {
	b.whitePerspective = !b.whitePerspective
}

// NewTarget picks a uniform-random square as the next target and returns it.
func (b *Board) NewTarget() Square {
	target := Square{
		File: b.rng.Intn(GridSize),
		Rank: 1 + b.rng.Intn(GridSize),
	}
	b.target = &target
	return target
}

// Target returns the current target square, if any.
func (b *Board) Target() (Square, bool) {
	if b.target == nil {
		return Square{}, false
	}
	return *b.target, true
}

// ClearTarget drops the current target; subsequent clicks never match.
func (b *Board) ClearTarget() {
	b.target = nil
}

// ValidateClick reports whether the clicked screen cell is the target
// square under the current perspective.
func (b *Board) ValidateClick(col, row int) bool {
	if b.target == nil {
		return false
	}
	targetCol, targetRow := b.target.ScreenCell()
	if !b.whitePerspective {
		targetCol = GridSize - 1 - targetCol
		targetRow = GridSize - 1 - targetRow
	}
	return col == targetCol && row == targetRow
}

// CellNotation returns the algebraic name of a screen cell under the
// current perspective. Used by the coordinate overlay.
func (b *Board) CellNotation(col, row int) string {
	var sq Square
	if b.whitePerspective {
		sq = Square{File: col, Rank: GridSize - row}
	} else {
		sq = Square{File: GridSize - 1 - col, Rank: row + 1}
	}
	return sq.Algebraic()
}
