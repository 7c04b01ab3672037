// Package aco - MatrixWalker, a ready-made Traversal over a dense distance matrix.
//
// MatrixWalker models the classic TSP setting: nodes 0..n-1, a symmetric
// positive distance matrix, and ants that never revisit a node. The raw
// quality of a move is the inverse distance, so shorter hops score higher
// and a path's total quality grows with how cheaply it covers the graph.
//
// Determinism:
//   - Targets enumerates candidates in ascending node order, so tie-breaks
//     are reproducible.
//   - Reset draws the start node from a seeded RNG (see rng.go); walkers
//     built with the same options produce identical walks.
package aco

import (
	"iter"
	"math/rand"
)

// RandomStart selects a seeded random start node on every Reset.
const RandomStart = -1

// WalkerOptions configures a MatrixWalker.
//
// Seed   – RNG seed for random starts; 0 means the fixed default seed, so the
// zero value is still fully deterministic.
// Stream – optional stream identifier mixed into the seed (SplitMix64), for
// running several independent walkers off one base seed. 0 means "no stream".
// Start  – fixed start node index, or RandomStart for a seeded random start
// per Reset.
type WalkerOptions struct {
	Seed   int64
	Stream uint64
	Start  int
}

// DefaultWalkerOptions returns the canonical configuration:
// deterministic default seed, no stream, random start per ant.
func DefaultWalkerOptions() WalkerOptions {
	return WalkerOptions{Seed: 0, Stream: 0, Start: RandomStart}
}

// MatrixWalker is a Traversal over a dense symmetric distance matrix.
// It tracks the current node and the set of visited nodes; Targets offers
// only unvisited nodes, so every walk terminates after at most n-1 moves.
type MatrixWalker struct {
	dist    [][]float64
	n       int
	start   int // fixed start index, or RandomStart
	rng     *rand.Rand
	cur     int
	visited []bool
}

var _ Traversal = (*MatrixWalker)(nil)

// NewMatrixWalker validates dist (see validateDistanceMatrix) and opts and
// returns a walker positioned nowhere; callers must Reset before walking,
// which the Colony does once per ant.
//
// The matrix is used by reference, not copied: callers must not mutate it
// while the walker is in use.
//
// Errors: ErrNonSquareMatrix, ErrMatrixTooSmall, ErrBadWeight,
// ErrAsymmetricMatrix, ErrStartOutOfRange.
//
// Complexity: O(n²) validation, O(n) allocation.
func NewMatrixWalker(dist [][]float64, opts WalkerOptions) (*MatrixWalker, error) {
	n, err := validateDistanceMatrix(dist)
	if err != nil {
		return nil, err
	}
	if opts.Start != RandomStart && (opts.Start < 0 || opts.Start >= n) {
		return nil, ErrStartOutOfRange
	}

	seed := opts.Seed
	if opts.Stream != 0 {
		seed = deriveSeed(seed, opts.Stream)
	}

	return &MatrixWalker{
		dist:    dist,
		n:       n,
		start:   opts.Start,
		rng:     rngFromSeed(seed),
		cur:     RandomStart,
		visited: make([]bool, n),
	}, nil
}

// Reset clears the visited set, moves the walker to its start node (fixed or
// seeded random), marks it visited and returns it.
//
// Complexity: O(n).
func (w *MatrixWalker) Reset() int {
	clear(w.visited)
	if w.start == RandomStart {
		w.cur = w.rng.Intn(w.n)
	} else {
		w.cur = w.start
	}
	w.visited[w.cur] = true

	return w.cur
}

// Targets enumerates every unvisited node reachable from node, in ascending
// index order, paired with its raw quality 1/dist[node][target]. The sequence
// is finite and freshly restartable on every call.
//
// Complexity: O(n) per full enumeration.
func (w *MatrixWalker) Targets(node int) iter.Seq2[float64, int] {
	return func(yield func(float64, int) bool) {
		var j int
		for j = 0; j < w.n; j++ {
			if j == node || w.visited[j] {
				continue
			}
			if !yield(1/w.dist[node][j], j) {
				return
			}
		}
	}
}

// WalkTo commits a move to node and marks it visited. The node must be one of
// the candidates last enumerated by Targets; anything else corrupts only the
// walker's own visited bookkeeping, per the Traversal contract.
//
// Complexity: O(1).
func (w *MatrixWalker) WalkTo(node int) {
	w.cur = node
	w.visited[node] = true
}
