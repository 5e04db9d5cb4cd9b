// Package stats records per-session results across games and moves them
// to and from JSON stat files.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
)

// TimestampLayout is the format of the timestamp field in stat files.
const TimestampLayout = "2006-01-02 15:04:05"

// fileData is the on-disk layout. Slices are pointers so a missing key
// can be told apart from an empty series on load.
type fileData struct {
	Scores    *[]int     `json:"score_history"`
	Accuracy  *[]float64 `json:"accuracy_history"`
	Correct   *[]int     `json:"correct_clicks_history"`
	Wrong     *[]int     `json:"wrong_clicks_history"`
	AvgTimes  *[]float64 `json:"avg_time_history"`
	Fastest   *[]float64 `json:"fastest_time_history"`
	Slowest   *[]float64 `json:"slowest_time_history"`
	Timestamp string     `json:"timestamp"`
}

// Tracker keeps parallel per-session series, one entry per finished game.
type Tracker struct {
	scores   []int
	accuracy []float64
	correct  []int
	wrong    []int
	avgTimes []float64
	fastest  []float64
	slowest  []float64

	loadedTimestamp string
	now             func() time.Time
}

// NewTracker builds an empty tracker. A nil now function uses time.Now.
// Series start non-nil so an empty tracker still encodes them as arrays.
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		scores:   []int{},
		accuracy: []float64{},
		correct:  []int{},
		wrong:    []int{},
		avgTimes: []float64{},
		fastest:  []float64{},
		slowest:  []float64{},
		now:      now,
	}
}

// Record appends one finished session to every series.
func (t *Tracker) Record(summary game.Summary) {
	t.scores = append(t.scores, summary.Score)
	t.accuracy = append(t.accuracy, summary.Accuracy)
	t.correct = append(t.correct, summary.Correct)
	t.wrong = append(t.wrong, summary.Wrong)
	t.avgTimes = append(t.avgTimes, summary.AvgTime)
	t.fastest = append(t.fastest, summary.Fastest)
	t.slowest = append(t.slowest, summary.Slowest)
}

// HasData reports whether any session has been recorded or loaded.
func (t *Tracker) HasData() bool {
	return len(t.scores) > 0
}

// Len returns the number of recorded sessions.
func (t *Tracker) Len() int {
	return len(t.scores)
}

func (t *Tracker) Scores() []int           { return t.scores }
func (t *Tracker) Accuracy() []float64     { return t.accuracy }
func (t *Tracker) Correct() []int          { return t.correct }
func (t *Tracker) Wrong() []int            { return t.wrong }
func (t *Tracker) AvgTimes() []float64     { return t.avgTimes }
func (t *Tracker) FastestTimes() []float64 { return t.fastest }
func (t *Tracker) SlowestTimes() []float64 { return t.slowest }

// LastTimestamp returns the timestamp of the most recently loaded stat
// file, empty when nothing was loaded.
func (t *Tracker) LastTimestamp() string {
	return t.loadedTimestamp
}

// Encode writes all series as indented JSON, stamped with the current
// time.
func (t *Tracker) Encode(w io.Writer) error {
	data := fileData{
		Scores:    &t.scores,
		Accuracy:  &t.accuracy,
		Correct:   &t.correct,
		Wrong:     &t.wrong,
		AvgTimes:  &t.avgTimes,
		Fastest:   &t.fastest,
		Slowest:   &t.slowest,
		Timestamp: t.now().Format(TimestampLayout),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}
	return nil
}

// Save writes the series to a stat file at path.
func (t *Tracker) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create statistics file: %w", err)
	}
	defer file.Close()
	return t.Encode(file)
}

// Decode replaces all series with the contents of a stat file. Malformed
// JSON or a missing series key is an error and leaves the tracker
// unchanged.
func (t *Tracker) Decode(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read statistics: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid JSON in statistics file: %w", err)
	}

	missing := map[string]bool{
		"score_history":          data.Scores == nil,
		"accuracy_history":       data.Accuracy == nil,
		"correct_clicks_history": data.Correct == nil,
		"wrong_clicks_history":   data.Wrong == nil,
		"avg_time_history":       data.AvgTimes == nil,
		"fastest_time_history":   data.Fastest == nil,
		"slowest_time_history":   data.Slowest == nil,
	}
	for key, absent := range missing {
		if absent {
			return fmt.Errorf("invalid statistics file: missing %s", key)
		}
	}

	t.scores = *data.Scores
	t.accuracy = *data.Accuracy
	t.correct = *data.Correct
	t.wrong = *data.Wrong
	t.avgTimes = *data.AvgTimes
	t.fastest = *data.Fastest
	t.slowest = *data.Slowest
	t.loadedTimestamp = data.Timestamp
	return nil
}

// Load replaces the series with the contents of the stat file at path.
func (t *Tracker) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open statistics file: %w", err)
	}
	defer file.Close()
	return t.Decode(file)
}
