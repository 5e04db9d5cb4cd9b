package app

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/gui"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/logger"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/stats"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/storage"
)

const statsFileName = "chess_stats.json"

// Handlers owns all user-facing actions. Game state is only touched on
// the UI thread; the countdown goroutine reaches it through fyne.Do.
type Handlers struct {
	state   *game.State
	tracker *stats.Tracker
	archive *storage.Archive
	gui     *gui.Manager
	logger  logger.Logger

	stopCountdown chan struct{}
}

func NewHandlers(state *game.State, tracker *stats.Tracker, archive *storage.Archive, guiManager *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		state:   state,
		tracker: tracker,
		archive: archive,
		gui:     guiManager,
		logger:  log,
	}
}

// HandleStart begins a new timed session with the slider duration.
func (h *Handlers) HandleStart() {
	h.cancelCountdown()

	duration := h.gui.Controls().Duration()
	target := h.state.Start()

	h.gui.Target().SetText(target.Algebraic())
	h.gui.Countdown().SetRemaining(duration)
	h.gui.Controls().UpdateTimer(duration)
	h.gui.Stats().Update(h.state.Session.Summarize())

	h.logger.Info("Game", "session started", map[string]interface{}{
		"duration_seconds": duration,
		"first_target":     target.Algebraic(),
	})

	stop := make(chan struct{})
	h.stopCountdown = stop
	go h.runCountdown(duration, stop)
}

// runCountdown ticks once per second until the session expires or is
// restarted. Every UI-thread callback re-checks that this countdown is
// still the current one: a restart may have been processed after the
// tick was queued, and a closed stop channel does not keep select from
// draining an already-pending tick. A stale countdown must never end or
// repaint the game that replaced it.
func (h *Handlers) runCountdown(duration int, stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	remaining := duration
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining--
			left := remaining
			if left <= 0 {
				fyne.Do(func() {
					if h.stopCountdown != stop {
						return
					}
					h.stopCountdown = nil
					h.finishGame()
				})
				return
			}
			fyne.Do(func() {
				if h.stopCountdown != stop {
					return
				}
				h.gui.Countdown().SetRemaining(left)
				h.gui.Controls().UpdateTimer(left)
			})
		}
	}
}

func (h *Handlers) cancelCountdown() {
	if h.stopCountdown != nil {
		close(h.stopCountdown)
		h.stopCountdown = nil
	}
}

// finishGame ends the session, records it and refreshes the displays.
func (h *Handlers) finishGame() {
	if !h.state.Active() {
		return
	}

	summary := h.state.End()
	h.tracker.Record(summary)

	h.gui.Countdown().SetMessage("Time's Up!")
	h.gui.Target().SetText("Game Over!")
	h.gui.Controls().UpdateTimer(0)
	h.gui.Stats().Update(summary)
	h.gui.Charts().Update(h.tracker)

	h.logger.Info("Game", "session finished", map[string]interface{}{
		"score":    summary.Score,
		"correct":  summary.Correct,
		"wrong":    summary.Wrong,
		"accuracy": summary.Accuracy,
	})

	if h.archive != nil {
		if err := h.archive.Append(summary); err != nil {
			h.logger.Error("Archive", err, map[string]interface{}{
				"score": summary.Score,
			})
		}
	}
}

// HandleBoardClick validates a click against the current target. A
// correct click rolls a new target; a miss keeps it on screen.
func (h *Handlers) HandleBoardClick(col, row int) {
	correct, target, handled := h.state.Click(col, row)
	if !handled {
		return
	}

	h.gui.Target().SetText(target.Algebraic())
	h.gui.Stats().Update(h.state.Session.Summarize())

	h.logger.Debug("Game", "board click", map[string]interface{}{
		"col":     col,
		"row":     row,
		"correct": correct,
	})
}

// HandleFlip toggles the viewing perspective. Works during a game.
func (h *Handlers) HandleFlip() {
	h.state.Board.Flip()
	h.gui.SetPerspective(h.state.Board.WhitePerspective())

	h.logger.Debug("Game", "board flipped", map[string]interface{}{
		"white_perspective": h.state.Board.WhitePerspective(),
	})
}

// HandleToggleCoordinates shows or hides the algebraic overlay.
func (h *Handlers) HandleToggleCoordinates() {
	visible := h.gui.Board().ToggleCoordinates()
	h.gui.Controls().SetCoordsButtonText(visible)
}

// HandleSaveStats exports the history to a JSON file chosen by the user.
func (h *Handlers) HandleSaveStats() {
	window := h.gui.Window()

	if !h.tracker.HasData() {
		dialog.ShowInformation("No Data",
			"There are no statistics to save yet. Play some games first!", window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := h.tracker.Encode(writer); err != nil {
			h.logger.Error("Stats", err, nil)
			dialog.ShowError(fmt.Errorf("failed to save statistics: %w", err), window)
			return
		}

		h.logger.Info("Stats", "statistics saved", map[string]interface{}{
			"uri": writer.URI().String(),
		})
		dialog.ShowInformation("Success", "Statistics saved successfully!", window)
	}, window)

	saveDialog.SetFileName(statsFileName)
	saveDialog.SetFilter(fynestorage.NewExtensionFileFilter([]string{".json"}))
	saveDialog.Show()
}

// HandleLoadStats replaces the history with a JSON file chosen by the
// user and redraws the charts.
func (h *Handlers) HandleLoadStats() {
	window := h.gui.Window()

	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		if err := h.tracker.Decode(reader); err != nil {
			h.logger.Error("Stats", err, nil)
			dialog.ShowError(fmt.Errorf("failed to load statistics: %w", err), window)
			return
		}

		h.gui.Charts().Update(h.tracker)

		message := "Statistics loaded successfully!"
		if timestamp := h.tracker.LastTimestamp(); timestamp != "" {
			message += "\nData from: " + timestamp
		}
		h.logger.Info("Stats", "statistics loaded", map[string]interface{}{
			"sessions": h.tracker.Len(),
		})
		dialog.ShowInformation("Success", message, window)
	}, window)

	openDialog.SetFilter(fynestorage.NewExtensionFileFilter([]string{".json"}))
	openDialog.Show()
}

// Shutdown stops the countdown goroutine.
func (h *Handlers) Shutdown() {
	h.cancelCountdown()
}
