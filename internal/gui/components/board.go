package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
)

// BoardCanvas renders the 8x8 board as a tappable grid of fixed-size
// tiles with an optional algebraic-notation overlay. Square colors are
// unaffected by perspective; only the overlay text changes, so the
// notation callback owns the perspective mapping.
type BoardCanvas struct {
	widget.BaseWidget

	notation        func(col, row int) string
	tapHandler      func(col, row int)
	showCoordinates bool
}

func NewBoardCanvas(notation func(col, row int) string) *BoardCanvas {
	board := &BoardCanvas{notation: notation}
	board.ExtendBaseWidget(board)
	return board
}

// SetTapHandler registers the callback invoked with the clicked screen cell.
func (b *BoardCanvas) SetTapHandler(handler func(col, row int)) {
	b.tapHandler = handler
}

// ToggleCoordinates flips the overlay and reports the new visibility.
func (b *BoardCanvas) ToggleCoordinates() bool {
	b.showCoordinates = !b.showCoordinates
	b.Refresh()
	return b.showCoordinates
}

// CoordinatesVisible reports whether the overlay is shown.
func (b *BoardCanvas) CoordinatesVisible() bool {
	return b.showCoordinates
}

// Tapped maps the tap position onto a screen cell.
func (b *BoardCanvas) Tapped(event *fyne.PointEvent) {
	if b.tapHandler == nil {
		return
	}
	col := int(event.Position.X / game.TileSize)
	row := int(event.Position.Y / game.TileSize)
	if col < 0 || col >= game.GridSize || row < 0 || row >= game.GridSize {
		return
	}
	b.tapHandler(col, row)
}

func (b *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	renderer := &boardRenderer{board: b}

	renderer.border = canvas.NewRectangle(color.Transparent)
	renderer.border.StrokeColor = colorSecondary
	renderer.border.StrokeWidth = 2

	for row := 0; row < game.GridSize; row++ {
		for col := 0; col < game.GridSize; col++ {
			tile := canvas.NewRectangle(squareColor(col, row))
			renderer.tiles = append(renderer.tiles, tile)

			label := canvas.NewText("", overlayColor(col, row))
			label.TextSize = 12
			label.Alignment = fyne.TextAlignCenter
			label.Hidden = true
			renderer.labels = append(renderer.labels, label)
		}
	}

	return renderer
}

// squareColor returns the tile fill; a8 (cell 0,0) is light.
func squareColor(col, row int) color.Color {
	if (col+row)%2 == 0 {
		return colorLightSquare
	}
	return colorDarkSquare
}

func overlayColor(col, row int) color.Color {
	if (col+row)%2 == 0 {
		return color.Black
	}
	return color.White
}

type boardRenderer struct {
	board  *BoardCanvas
	border *canvas.Rectangle
	tiles  []*canvas.Rectangle
	labels []*canvas.Text
}

func (r *boardRenderer) MinSize() fyne.Size {
	edge := float32(game.GridSize * game.TileSize)
	return fyne.NewSize(edge, edge)
}

func (r *boardRenderer) Layout(fyne.Size) {
	edge := float32(game.GridSize * game.TileSize)
	r.border.Resize(fyne.NewSize(edge, edge))
	r.border.Move(fyne.NewPos(0, 0))

	for row := 0; row < game.GridSize; row++ {
		for col := 0; col < game.GridSize; col++ {
			i := row*game.GridSize + col
			x := float32(col * game.TileSize)
			y := float32(row * game.TileSize)

			r.tiles[i].Resize(fyne.NewSize(game.TileSize, game.TileSize))
			r.tiles[i].Move(fyne.NewPos(x, y))

			r.labels[i].Resize(fyne.NewSize(game.TileSize, game.TileSize))
			r.labels[i].Move(fyne.NewPos(x, y+game.TileSize/2-8))
		}
	}
}

func (r *boardRenderer) Refresh() {
	for row := 0; row < game.GridSize; row++ {
		for col := 0; col < game.GridSize; col++ {
			i := row*game.GridSize + col
			label := r.labels[i]
			if r.board.showCoordinates {
				label.Text = r.board.notation(col, row)
				label.Hidden = false
			} else {
				label.Hidden = true
			}
			label.Refresh()
		}
	}
	r.border.Refresh()
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.tiles)+len(r.labels)+1)
	for _, tile := range r.tiles {
		objects = append(objects, tile)
	}
	for _, label := range r.labels {
		objects = append(objects, label)
	}
	objects = append(objects, r.border)
	return objects
}

func (r *boardRenderer) Destroy() {}
