package app

import (
	"math/rand"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/gui"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/logger"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/stats"
)

func newTestHandlers(t *testing.T) (*Handlers, *game.State, *stats.Tracker) {
	t.Helper()
	test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	state := game.NewState(rand.New(rand.NewSource(1)), nil)
	tracker := stats.NewTracker(nil)
	manager := gui.NewManager(window, logger.Nop{}, state.Board.CellNotation, 30)
	return NewHandlers(state, tracker, nil, manager, logger.Nop{}), state, tracker
}

// TestStaleCountdownDoesNotEndFreshGame tests that a superseded countdown
// expiring late cannot end the game that replaced it
func TestStaleCountdownDoesNotEndFreshGame(t *testing.T) {
	handlers, state, tracker := newTestHandlers(t)

	// A running game owns the current countdown channel.
	state.Start()
	current := make(chan struct{})
	handlers.stopCountdown = current

	// A countdown left over from an earlier, restarted game expires.
	stale := make(chan struct{})
	done := make(chan struct{})
	go func() {
		handlers.runCountdown(1, stale)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stale countdown did not terminate")
	}

	if !state.Active() {
		t.Error("Stale countdown expiry ended the fresh game")
	}
	if tracker.HasData() {
		t.Error("Stale countdown expiry recorded a session")
	}
	if handlers.stopCountdown != current {
		t.Error("Stale countdown expiry cleared the current countdown channel")
	}
}

// TestCountdownExpiryEndsGame tests the normal expiry path
func TestCountdownExpiryEndsGame(t *testing.T) {
	handlers, state, tracker := newTestHandlers(t)

	state.Start()
	stop := make(chan struct{})
	handlers.stopCountdown = stop

	handlers.runCountdown(1, stop)

	if state.Active() {
		t.Error("Countdown expiry should end the game")
	}
	if tracker.Len() != 1 {
		t.Errorf("Tracker recorded %d sessions, want 1", tracker.Len())
	}
	if handlers.stopCountdown != nil {
		t.Error("Expired countdown should clear its channel")
	}
}

// TestCancelledCountdownStops tests that a closed stop channel ends the
// goroutine without touching the game
func TestCancelledCountdownStops(t *testing.T) {
	handlers, state, tracker := newTestHandlers(t)

	state.Start()
	stop := make(chan struct{})
	handlers.stopCountdown = stop

	// A restart cancels before the superseded goroutine observes it.
	handlers.cancelCountdown()

	done := make(chan struct{})
	go func() {
		handlers.runCountdown(30, stop)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Cancelled countdown did not terminate")
	}

	if !state.Active() {
		t.Error("Cancelling the countdown should not end the game")
	}
	if tracker.HasData() {
		t.Error("Cancelled countdown should not record a session")
	}
}
