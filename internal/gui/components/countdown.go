package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Urgency thresholds for the countdown color, in seconds.
const (
	countdownWarnAt  = 10
	countdownAlarmAt = 5
)

// CountdownDisplay is the large remaining-time readout above the board.
type CountdownDisplay struct {
	container *fyne.Container
	text      *canvas.Text
}

func NewCountdownDisplay() *CountdownDisplay {
	text := canvas.NewText("", colorAccent)
	text.TextSize = 48
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter

	return &CountdownDisplay{
		container: container.NewCenter(text),
		text:      text,
	}
}

func (c *CountdownDisplay) GetContainer() *fyne.Container {
	return c.container
}

// SetRemaining shows the seconds left, shifting color as time runs out.
func (c *CountdownDisplay) SetRemaining(seconds int) {
	switch {
	case seconds <= countdownAlarmAt:
		c.text.Color = colorError
	case seconds <= countdownWarnAt:
		c.text.Color = colorWarning
	default:
		c.text.Color = colorAccent
	}
	c.text.Text = strconv.Itoa(seconds)
	c.text.Refresh()
}

// SetMessage replaces the countdown with a terminal message such as
// "Time's Up!".
func (c *CountdownDisplay) SetMessage(message string) {
	c.text.Color = colorError
	c.text.Text = message
	c.text.Refresh()
}
