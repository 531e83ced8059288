// Package hypervolume implements a WFG-style incremental hypervolume
// engine for maximization objective vectors of arbitrary dimension M
// (spec §4.3). It maintains a reference point r, a running value v, and
// an internal nondominated set kept consistent with the archive under
// additive insert/remove maintenance.
//
// Engine is the mandated interface: every heuristics driver keeps one
// alive for the lifetime of a run and calls Insert/Remove as the
// archive's own membership changes, so Value() is always an O(1) read
// of the current hypervolume rather than a recomputation. The
// freestanding SetHypervolume routine computes the Lebesgue measure of
// a point set's union of boxes from scratch and backs every Engine
// call internally; per spec §9 it is kept around as that implementation
// aid (and for one-off queries that do not need incremental state), not
// as a second way for callers to track a run's hypervolume.
package hypervolume

// Absent is returned by (*Engine).Remove when the requested point is not
// present in the engine's internal set (spec §7: a documented sentinel
// return, not an error — callers that need removal to be infallible
// should check membership themselves first).
const Absent = -1.0

// Engine maintains the hypervolume of a streaming set of maximization
// objective vectors w.r.t. a fixed reference point r (spec §3). The zero
// value is not meaningful; use NewEngine.
type Engine struct {
	r      []float64
	points [][]float64
	value  float64
}

// NewEngine returns an Engine with reference point r and an empty internal
// set (value 0). r is copied; later mutation of the caller's slice does
// not affect the engine.
func NewEngine(r []float64) *Engine {
	return &Engine{r: append([]float64(nil), r...)}
}

// Value returns the current hypervolume of the engine's stored set w.r.t.
// its reference point. It is maintained incrementally by Insert/Remove,
// not recomputed from scratch on every call.
func (e *Engine) Value() float64 { return e.value }

// Len returns the number of points currently stored in the engine.
func (e *Engine) Len() int { return len(e.points) }

// Reference returns a copy of the engine's reference point.
func (e *Engine) Reference() []float64 {
	return append([]float64(nil), e.r...)
}
