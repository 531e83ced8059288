// Package anytime records the convergence trace a driver produces while
// it runs: a stream of (evaluation count, generation index, hypervolume)
// rows a caller can plot or persist, independent of which heuristic
// produced them (spec §5.6).
package anytime

// Row is one anytime-logging sample. GenerationIndex is -1 for drivers
// that are not generational (GSEMO, PLS progress per accepted move
// rather than per generation).
type Row struct {
	EvaluationCount int
	GenerationIndex int
	Hypervolume     float64
}

// Recorder receives anytime rows as a driver runs. Row is a plain value
// type, so implementations may retain it after Record returns.
type Recorder interface {
	Record(Row)
}

// SliceRecorder accumulates every row it receives, in order. The zero
// value is ready to use.
type SliceRecorder struct {
	Rows []Row
}

// Record appends row to the recorder's history.
func (s *SliceRecorder) Record(row Row) {
	s.Rows = append(s.Rows, row)
}

// CallbackRecorder adapts a plain function to the Recorder interface.
type CallbackRecorder struct {
	Fn func(Row)
}

// Record invokes the callback, if set.
func (c CallbackRecorder) Record(row Row) {
	if c.Fn != nil {
		c.Fn(row)
	}
}

// Discard is a Recorder that drops every row; it lets callers that don't
// want anytime logging pass a non-nil Recorder unconditionally.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Row) {}
