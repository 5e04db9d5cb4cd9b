// Package gui assembles the trainer window out of its components and
// exposes handler hooks for the application layer.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/gui/components"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/logger"
)

type Manager struct {
	window fyne.Window
	logger logger.Logger

	board     *components.BoardCanvas
	countdown *components.CountdownDisplay
	target    *components.TargetDisplay
	stats     *components.StatsPanel
	charts    *components.ChartsPanel
	controls  *components.ControlsPanel

	perspectiveLabel *widget.Label
}

// NewManager builds all components. notation maps a screen cell to its
// algebraic name under the current perspective; the board overlay calls
// it on every redraw.
func NewManager(window fyne.Window, log logger.Logger, notation func(col, row int) string, defaultDuration int) *Manager {
	manager := &Manager{
		window:           window,
		logger:           log,
		board:            components.NewBoardCanvas(notation),
		countdown:        components.NewCountdownDisplay(),
		target:           components.NewTargetDisplay(),
		stats:            components.NewStatsPanel(),
		charts:           components.NewChartsPanel(),
		controls:         components.NewControlsPanel(defaultDuration),
		perspectiveLabel: widget.NewLabel("View: White's perspective"),
	}
	manager.perspectiveLabel.TextStyle = fyne.TextStyle{Bold: true}
	manager.perspectiveLabel.Alignment = fyne.TextAlignCenter

	log.Info("GUIManager", "components initialized", map[string]interface{}{
		"default_duration": defaultDuration,
	})
	return manager
}

// GetMainContainer lays out the window: board side on the left, stats,
// charts and controls on the right.
func (m *Manager) GetMainContainer() *fyne.Container {
	boardSide := container.NewVBox(
		m.perspectiveLabel,
		m.countdown.GetContainer(),
		container.NewCenter(m.board),
		m.target.GetContainer(),
	)

	statsSide := container.NewBorder(
		m.stats.GetContainer(),
		m.controls.GetContainer(),
		nil, nil,
		m.charts.GetContainer(),
	)

	return container.NewBorder(nil, nil, boardSide, nil, statsSide)
}

func (m *Manager) Window() fyne.Window                     { return m.window }
func (m *Manager) Board() *components.BoardCanvas          { return m.board }
func (m *Manager) Countdown() *components.CountdownDisplay { return m.countdown }
func (m *Manager) Target() *components.TargetDisplay       { return m.target }
func (m *Manager) Stats() *components.StatsPanel           { return m.stats }
func (m *Manager) Charts() *components.ChartsPanel         { return m.charts }
func (m *Manager) Controls() *components.ControlsPanel     { return m.controls }

// SetPerspective updates the viewpoint label and redraws the board
// overlay, which picks up the new cell notation.
func (m *Manager) SetPerspective(white bool) {
	if white {
		m.perspectiveLabel.SetText("View: White's perspective")
	} else {
		m.perspectiveLabel.SetText("View: Black's perspective")
	}
	m.board.Refresh()
}

func (m *Manager) SetBoardClickHandler(handler func(col, row int)) {
	m.board.SetTapHandler(handler)
}

func (m *Manager) SetStartHandler(handler func())        { m.controls.SetStartHandler(handler) }
func (m *Manager) SetFlipHandler(handler func())         { m.controls.SetFlipHandler(handler) }
func (m *Manager) SetToggleCoordsHandler(handler func()) { m.controls.SetToggleCoordsHandler(handler) }
func (m *Manager) SetSaveHandler(handler func())         { m.controls.SetSaveHandler(handler) }
func (m *Manager) SetLoadHandler(handler func())         { m.controls.SetLoadHandler(handler) }
func (m *Manager) SetExitHandler(handler func())         { m.controls.SetExitHandler(handler) }
