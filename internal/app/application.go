// Package app wires the game state, statistics and GUI together and owns
// the application lifecycle.
package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/config"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/gui"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/logger"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/stats"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/storage"
)

const (
	AppName    = "Chess Coordinates Trainer"
	AppID      = "com.nicolas2912.chess-coordinates-trainer"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	guiManager *gui.Manager
	state      *game.State
	tracker    *stats.Tracker
	archive    *storage.Archive
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.CenterOnScreen()
	window.SetMaster()

	state := game.NewState(nil, nil)
	tracker := stats.NewTracker(nil)

	// A broken archive degrades to JSON-export-only operation.
	var archive *storage.Archive
	if cfg.ArchivePath != "" {
		var err error
		archive, err = storage.Open(cfg.ArchivePath)
		if err != nil {
			log.Warning("Application", "session archive unavailable", map[string]interface{}{
				"path":  cfg.ArchivePath,
				"error": err.Error(),
			})
			archive = nil
		} else if count, err := archive.Count(); err == nil && count > 0 {
			fields := map[string]interface{}{"archived_sessions": count}
			if recent, err := archive.Recent(1); err == nil && len(recent) == 1 {
				fields["last_score"] = recent[0].Summary.Score
			}
			log.Info("Application", "session archive loaded", fields)
		}
	}

	guiManager := gui.NewManager(window, log, state.Board.CellNotation, cfg.DefaultDuration)
	window.SetContent(guiManager.GetMainContainer())

	handlers := NewHandlers(state, tracker, archive, guiManager, log)
	lifecycle := NewLifecycle(handlers, archive, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		guiManager: guiManager,
		state:      state,
		tracker:    tracker,
		archive:    archive,
		handlers:   handlers,
		lifecycle:  lifecycle,
	}
	application.setupHandlers()
	application.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":          AppVersion,
		"archive_enabled":  archive != nil,
		"default_duration": cfg.DefaultDuration,
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetBoardClickHandler(a.handlers.HandleBoardClick)
	a.guiManager.SetStartHandler(a.handlers.HandleStart)
	a.guiManager.SetFlipHandler(a.handlers.HandleFlip)
	a.guiManager.SetToggleCoordsHandler(a.handlers.HandleToggleCoordinates)
	a.guiManager.SetSaveHandler(a.handlers.HandleSaveStats)
	a.guiManager.SetLoadHandler(a.handlers.HandleLoadStats)
	a.guiManager.SetExitHandler(a.RequestExit)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.RequestExit)
}

// RequestExit asks for confirmation before shutting the application down.
func (a *Application) RequestExit() {
	dialog.ShowConfirm("Exit", "Are you sure you want to exit?", func(confirmed bool) {
		if !confirmed {
			return
		}
		a.lifecycle.Shutdown()
		a.fyneApp.Quit()
	}, a.window)
}

// Run shows the main window and blocks until the application exits.
func (a *Application) Run() {
	a.logger.Info("Application", "starting UI", nil)
	a.window.ShowAndRun()
	a.lifecycle.Shutdown()
}
