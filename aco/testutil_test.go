// Package aco_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that lives in focused
// test files.
package aco_test

import (
	"iter"

	"github.com/katalvlaran/lvlant/aco"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used for RNG-based walkers
	// (0 routes to the package's fixed default seed).
	seedDet = int64(0)

	// epsExact is the tolerance for comparisons that should be bit-stable
	// (pure additions of representable values).
	epsExact = 0.0

	// epsLoose is a relaxed tolerance for float comparisons that involve
	// division or exponentiation.
	epsLoose = 1e-9
)

// -----------------------------------------------------------------------------
// Scripted traversal stubs
// -----------------------------------------------------------------------------

// offer is one (quality, target) candidate in a scripted adjacency.
type offer struct {
	quality float64
	target  int
}

// stubWalker is a deterministic Traversal over a fixed adjacency script.
// Every ant starts at start; Targets replays the script for the queried node
// in declaration order; WalkTo only tracks the position. Scripts must be
// acyclic (or quality-terminated) so walks end.
type stubWalker struct {
	start int
	edges map[int][]offer
	cur   int
}

var _ aco.Traversal = (*stubWalker)(nil)

func (s *stubWalker) Reset() int {
	s.cur = s.start

	return s.cur
}

func (s *stubWalker) Targets(node int) iter.Seq2[float64, int] {
	return func(yield func(float64, int) bool) {
		for _, o := range s.edges[node] {
			if !yield(o.quality, o.target) {
				return
			}
		}
	}
}

func (s *stubWalker) WalkTo(node int) { s.cur = node }

// singleEdgeWalker returns the spec's canonical two-node fixture: every ant
// resets to node 0, is offered exactly (quality, 1), and finds a dead end at
// node 1.
func singleEdgeWalker(quality float64) *stubWalker {
	return &stubWalker{
		start: 0,
		edges: map[int][]offer{0: {{quality: quality, target: 1}}},
	}
}

// replayWalker is a Traversal whose adjacency script changes per ant: Reset
// advances to the next script. It exercises behaviors that depend on ant
// ordering within a generation (shared-trail influence, enumeration-order
// tie-breaks).
type replayWalker struct {
	start   int
	scripts []map[int][]offer
	ant     int // index of the script for the CURRENT ant; -1 before first Reset
	cur     int
}

var _ aco.Traversal = (*replayWalker)(nil)

func newReplayWalker(start int, scripts ...map[int][]offer) *replayWalker {
	return &replayWalker{start: start, scripts: scripts, ant: -1}
}

func (r *replayWalker) Reset() int {
	r.ant++
	r.cur = r.start

	return r.cur
}

func (r *replayWalker) Targets(node int) iter.Seq2[float64, int] {
	return func(yield func(float64, int) bool) {
		if r.ant < 0 || r.ant >= len(r.scripts) {
			return
		}
		for _, o := range r.scripts[r.ant][node] {
			if !yield(o.quality, o.target) {
				return
			}
		}
	}
}

func (r *replayWalker) WalkTo(node int) { r.cur = node }

// -----------------------------------------------------------------------------
// Scoring stubs
// -----------------------------------------------------------------------------

// identityScoring is the spec scenario model: score = quality + pheromone,
// deposit = total quality. Equivalent to aco.DefaultAdditiveScoring but kept
// as a local type so contract tests do not depend on the shipped policies.
type identityScoring struct{}

var _ aco.Scoring = identityScoring{}

func (identityScoring) EdgeQuality(quality, pheromone float64) float64 {
	return quality + pheromone
}

func (identityScoring) PheromonesDeposited(totalQuality float64) float64 {
	return totalQuality
}

// -----------------------------------------------------------------------------
// Matrix fixtures
// -----------------------------------------------------------------------------

// squareMatrix returns a symmetric 4-node instance shaped like a unit square:
// sides cost 1, diagonals cost √2 ≈ 1.414. Nodes: 0-1-2-3 around the square.
func squareMatrix() [][]float64 {
	const d = 1.4142135623730951

	return [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	}
}
