package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const idleTargetText = "Click Start to begin"

// TargetDisplay shows the square the player has to find.
type TargetDisplay struct {
	container *fyne.Container
	text      *canvas.Text
}

func NewTargetDisplay() *TargetDisplay {
	text := canvas.NewText(idleTargetText, colorAccent)
	text.TextSize = 24
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter

	return &TargetDisplay{
		container: container.NewCenter(text),
		text:      text,
	}
}

func (t *TargetDisplay) GetContainer() *fyne.Container {
	return t.container
}

func (t *TargetDisplay) SetText(text string) {
	t.text.Text = text
	t.text.Refresh()
}
