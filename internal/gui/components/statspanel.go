package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
)

// StatsPanel shows the running counters of the current session.
type StatsPanel struct {
	container     *fyne.Container
	correctLabel  *widget.Label
	wrongLabel    *widget.Label
	accuracyLabel *widget.Label
	avgTimeLabel  *widget.Label
	scoreLabel    *widget.Label
}

func NewStatsPanel() *StatsPanel {
	panel := &StatsPanel{
		correctLabel:  widget.NewLabel("Correct: 0"),
		wrongLabel:    widget.NewLabel("Wrong: 0"),
		accuracyLabel: widget.NewLabel("Accuracy: 0%"),
		avgTimeLabel:  widget.NewLabel("Avg Time: 0.00s"),
		scoreLabel:    widget.NewLabel("Score: 0"),
	}
	panel.scoreLabel.TextStyle = fyne.TextStyle{Bold: true}
	panel.scoreLabel.Alignment = fyne.TextAlignCenter

	counters := container.NewHBox(
		panel.correctLabel,
		panel.wrongLabel,
		panel.accuracyLabel,
		panel.avgTimeLabel,
	)
	panel.container = container.NewVBox(counters, panel.scoreLabel)
	return panel
}

func (p *StatsPanel) GetContainer() *fyne.Container {
	return p.container
}

// Update refreshes every label from a session snapshot.
func (p *StatsPanel) Update(summary game.Summary) {
	p.correctLabel.SetText(fmt.Sprintf("Correct: %d", summary.Correct))
	p.wrongLabel.SetText(fmt.Sprintf("Wrong: %d", summary.Wrong))
	p.accuracyLabel.SetText(fmt.Sprintf("Accuracy: %.1f%%", summary.Accuracy))
	p.avgTimeLabel.SetText(fmt.Sprintf("Avg Time: %.2fs", summary.AvgTime))
	p.scoreLabel.SetText(fmt.Sprintf("Score: %d", summary.Score))
}
