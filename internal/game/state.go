package game

import (
	"math/rand"
	"time"
)

// State coordinates the board and the running session during a timed game.
// The response clock restarts whenever a new target is issued.
type State struct {
	Board   *Board
	Session *Session

	active     bool
	now        func() time.Time
	lastTarget time.Time
}

// NewState builds an idle game state. A nil now function uses time.Now.
func NewState(rng *rand.Rand, now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{
		Board:   NewBoard(rng),
		Session: NewSession(),
		now:     now,
	}
}

// Active reports whether a timed game is running.
func (st *State) Active() bool {
	return st.active
}

// Start resets the session, activates the game and issues the first target.
func (st *State) Start() Square {
	st.Session.Reset()
	st.active = true
	target := st.Board.NewTarget()
	st.lastTarget = st.now()
	return target
}

// Click processes a board click at the given screen cell. The returned
// target is the square to display next: a fresh one after a correct click,
// the unchanged one after a miss. handled is false while no game runs.
func (st *State) Click(col, row int) (correct bool, target Square, handled bool) {
	if !st.active {
		return false, Square{}, false
	}

	if st.Board.ValidateClick(col, row) {
		st.Session.RecordAttempt(true, st.now().Sub(st.lastTarget))
		target = st.Board.NewTarget()
		st.lastTarget = st.now()
		return true, target, true
	}

	st.Session.RecordAttempt(false, 0)
	target, _ = st.Board.Target()
	return false, target, true
}

// End deactivates the game and returns the final session summary.
func (st *State) End() Summary {
	st.active = false
	st.Board.ClearTarget()
	return st.Session.Summarize()
}
