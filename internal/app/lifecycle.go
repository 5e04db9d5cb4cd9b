package app

import (
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/logger"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/storage"
)

// Lifecycle runs the shutdown sequence exactly once.
type Lifecycle struct {
	handlers   *Handlers
	archive    *storage.Archive
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(handlers *Handlers, archive *storage.Archive, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		handlers: handlers,
		archive:  archive,
		logger:   log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.handlers != nil {
		l.handlers.Shutdown()
		l.logger.Debug("Lifecycle", "handlers shutdown completed", nil)
	}

	if l.archive != nil {
		if err := l.archive.Close(); err != nil {
			l.logger.Error("Lifecycle", err, nil)
		} else {
			l.logger.Debug("Lifecycle", "archive closed", nil)
		}
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
