package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/config"
)

// ControlsPanel holds the duration slider, the timer readout and the
// action buttons.
type ControlsPanel struct {
	container      *fyne.Container
	durationSlider *widget.Slider
	timerLabel     *widget.Label

	startButton  *widget.Button
	flipButton   *widget.Button
	coordsButton *widget.Button
	saveButton   *widget.Button
	loadButton   *widget.Button
	exitButton   *widget.Button

	startHandler        func()
	flipHandler         func()
	toggleCoordsHandler func()
	saveHandler         func()
	loadHandler         func()
	exitHandler         func()
}

func NewControlsPanel(defaultDuration int) *ControlsPanel {
	panel := &ControlsPanel{}

	panel.durationSlider = widget.NewSlider(config.MinDuration, config.MaxDuration)
	panel.durationSlider.Step = 1
	panel.durationSlider.Value = float64(defaultDuration)
	panel.timerLabel = widget.NewLabel(fmt.Sprintf("Time: %ds", defaultDuration))
	panel.durationSlider.OnChanged = func(value float64) {
		panel.timerLabel.SetText(fmt.Sprintf("Time: %ds", int(value)))
	}

	panel.startButton = widget.NewButton("Start", func() { call(panel.startHandler) })
	panel.startButton.Importance = widget.HighImportance
	panel.flipButton = widget.NewButton("Flip Board", func() { call(panel.flipHandler) })
	panel.coordsButton = widget.NewButton("Show Coordinates", func() { call(panel.toggleCoordsHandler) })
	panel.saveButton = widget.NewButton("Save Stats", func() { call(panel.saveHandler) })
	panel.loadButton = widget.NewButton("Load Stats", func() { call(panel.loadHandler) })
	panel.exitButton = widget.NewButton("Exit", func() { call(panel.exitHandler) })
	panel.exitButton.Importance = widget.DangerImportance

	timerRow := container.NewBorder(nil, nil, nil, panel.timerLabel, panel.durationSlider)
	buttonRow := container.NewHBox(
		panel.startButton,
		panel.flipButton,
		panel.coordsButton,
		panel.saveButton,
		panel.loadButton,
		panel.exitButton,
	)

	panel.container = container.NewVBox(timerRow, buttonRow)
	return panel
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (p *ControlsPanel) GetContainer() *fyne.Container {
	return p.container
}

// Duration returns the selected session length in seconds.
func (p *ControlsPanel) Duration() int {
	return int(p.durationSlider.Value)
}

// UpdateTimer shows the remaining time during a running game.
func (p *ControlsPanel) UpdateTimer(secondsLeft int) {
	p.timerLabel.SetText(fmt.Sprintf("Time Left: %ds", secondsLeft))
}

// SetCoordsButtonText swaps the overlay button label with visibility.
func (p *ControlsPanel) SetCoordsButtonText(visible bool) {
	if visible {
		p.coordsButton.SetText("Hide Coordinates")
	} else {
		p.coordsButton.SetText("Show Coordinates")
	}
}

func (p *ControlsPanel) SetStartHandler(handler func())        { p.startHandler = handler }
func (p *ControlsPanel) SetFlipHandler(handler func())         { p.flipHandler = handler }
func (p *ControlsPanel) SetToggleCoordsHandler(handler func()) { p.toggleCoordsHandler = handler }
func (p *ControlsPanel) SetSaveHandler(handler func())         { p.saveHandler = handler }
func (p *ControlsPanel) SetLoadHandler(handler func())         { p.loadHandler = handler }
func (p *ControlsPanel) SetExitHandler(handler func())         { p.exitHandler = handler }
