package game

import "time"

// Scoring constants, fixed by the trainer's scoring formula.
const (
	BaseScorePerCorrect = 100
	PenaltyPerWrong     = 50
	SpeedBonusMax       = 500
)

// Session accumulates the attempts of one timed practice run.
// Only correct attempts contribute response time.
type Session struct {
	correct   int
	wrong     int
	totalTime time.Duration
	fastest   time.Duration
	slowest   time.Duration
	hasTiming bool
}

// Summary is a frozen snapshot of a session, consumed by the stats panel,
// the history tracker and the archive. Times are in seconds.
type Summary struct {
	Score    int     `json:"score"`
	Correct  int     `json:"correct"`
	Wrong    int     `json:"wrong"`
	Accuracy float64 `json:"accuracy"`
	AvgTime  float64 `json:"avg_time"`
	Fastest  float64 `json:"fastest"`
	Slowest  float64 `json:"slowest"`
}

func NewSession() *Session {
	return &Session{}
}

// Reset clears all counters for a fresh run.
func (s *Session) Reset() {
	*s = Session{}
}

// RecordAttempt registers one click. Wrong attempts carry no response time.
func (s *Session) RecordAttempt(correct bool, responseTime time.Duration) {
	if !correct {
		s.wrong++
		return
	}
	s.correct++
	s.totalTime += responseTime
	if !s.hasTiming || responseTime < s.fastest {
		s.fastest = responseTime
	}
	if responseTime > s.slowest {
		s.slowest = responseTime
	}
	s.hasTiming = true
}

func (s *Session) Correct() int { return s.correct }
func (s *Session) Wrong() int   { return s.wrong }

// Accuracy returns the percentage of correct clicks, 0 when none were made.
func (s *Session) Accuracy() float64 {
	total := s.correct + s.wrong
	if total == 0 {
		return 0
	}
	return float64(s.correct) / float64(total) * 100
}

// AvgResponse returns the mean response time over correct attempts.
func (s *Session) AvgResponse() time.Duration {
	if s.correct == 0 {
		return 0
	}
	return s.totalTime / time.Duration(s.correct)
}

// Fastest returns the quickest correct response, 0 before the first one.
func (s *Session) Fastest() time.Duration {
	if !s.hasTiming {
		return 0
	}
	return s.fastest
}

// Slowest returns the slowest correct response.
func (s *Session) Slowest() time.Duration {
	return s.slowest
}

// Score computes the session score: 100 per correct click, an accuracy
// bonus of up to the base score, a speed bonus shrinking with average
// response time, and a 50 point penalty per wrong click. A session with
// no correct clicks scores zero.
func (s *Session) Score() int {
	if s.correct == 0 {
		return 0
	}

	base := float64(s.correct * BaseScorePerCorrect)
	accuracy := float64(s.correct) / float64(s.correct+s.wrong)
	accuracyBonus := base * accuracy

	avgSeconds := s.AvgResponse().Seconds()
	speedBonus := float64(SpeedBonusMax) - avgSeconds*100
	if speedBonus < 0 {
		speedBonus = 0
	}

	penalty := float64(s.wrong * PenaltyPerWrong)

	return int(base + accuracyBonus + speedBonus - penalty)
}

// Summarize snapshots the session.
func (s *Session) Summarize() Summary {
	return Summary{
		Score:    s.Score(),
		Correct:  s.correct,
		Wrong:    s.wrong,
		Accuracy: s.Accuracy(),
		AvgTime:  s.AvgResponse().Seconds(),
		Fastest:  s.Fastest().Seconds(),
		Slowest:  s.Slowest().Seconds(),
	}
}
