package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
)

// TestBoardTapMapsToCell tests the pixel-to-cell mapping of taps
func TestBoardTapMapsToCell(t *testing.T) {
	test.NewApp()

	board := NewBoardCanvas(func(col, row int) string { return "" })
	board.Resize(fyne.NewSize(game.GridSize*game.TileSize, game.GridSize*game.TileSize))

	gotCol, gotRow := -1, -1
	board.SetTapHandler(func(col, row int) {
		gotCol, gotRow = col, row
	})

	// Center of cell (2,4).
	test.TapAt(board, fyne.NewPos(2*game.TileSize+game.TileSize/2, 4*game.TileSize+game.TileSize/2))
	if gotCol != 2 || gotRow != 4 {
		t.Errorf("Tap mapped to (%d,%d), want (2,4)", gotCol, gotRow)
	}

	// Top-left corner lands in cell (0,0).
	test.TapAt(board, fyne.NewPos(1, 1))
	if gotCol != 0 || gotRow != 0 {
		t.Errorf("Tap mapped to (%d,%d), want (0,0)", gotCol, gotRow)
	}
}

// TestBoardTapWithoutHandler tests that unwired boards ignore taps
func TestBoardTapWithoutHandler(t *testing.T) {
	test.NewApp()

	board := NewBoardCanvas(func(col, row int) string { return "" })
	board.Resize(fyne.NewSize(game.GridSize*game.TileSize, game.GridSize*game.TileSize))

	// Must not panic.
	test.TapAt(board, fyne.NewPos(10, 10))
}

// TestToggleCoordinates tests overlay visibility switching
func TestToggleCoordinates(t *testing.T) {
	test.NewApp()

	board := NewBoardCanvas(func(col, row int) string { return "X" })
	if board.CoordinatesVisible() {
		t.Fatal("Overlay should start hidden")
	}
	if visible := board.ToggleCoordinates(); !visible {
		t.Error("First toggle should show the overlay")
	}
	if visible := board.ToggleCoordinates(); visible {
		t.Error("Second toggle should hide the overlay")
	}
}
