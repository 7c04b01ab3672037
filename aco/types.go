// Package aco - public contracts and strict sentinel errors.
//
// This file is the single home of:
//  1. The two collaborator contracts (Traversal, Scoring) that bound the engine.
//  2. The Result type returned by Colony.BestPath.
//  3. Every sentinel error the package can return.
//
// Design principles:
//   - No logging, no panics on user input - only sentinel errors.
//   - Contracts are consumed, never inspected: the Colony calls the methods
//     below and nothing else.
package aco

import (
	"errors"
	"iter"
)

var (
	// ErrNilTraversal indicates RunGeneration was called without a traversal policy.
	ErrNilTraversal = errors.New("aco: traversal policy must not be nil")
	// ErrNilScoring indicates RunGeneration was called without a scoring policy.
	ErrNilScoring = errors.New("aco: scoring policy must not be nil")
	// ErrNegativeAntCount indicates a negative ant count; zero is legal.
	ErrNegativeAntCount = errors.New("aco: ant count must be non-negative")
	// ErrNoPathFound indicates BestPath was called before any ant recorded a
	// path with strictly positive total quality.
	ErrNoPathFound = errors.New("aco: no path recorded yet")

	// ErrNonSquareMatrix indicates a distance matrix with ragged or unequal dimensions.
	ErrNonSquareMatrix = errors.New("aco: distance matrix must be square")
	// ErrMatrixTooSmall indicates a distance matrix with fewer than two nodes.
	ErrMatrixTooSmall = errors.New("aco: distance matrix must have at least two nodes")
	// ErrBadWeight indicates an off-diagonal distance that is not strictly
	// positive and finite, or a non-zero diagonal entry.
	ErrBadWeight = errors.New("aco: distances must be positive, finite, zero on the diagonal")
	// ErrAsymmetricMatrix indicates dist[i][j] differs from dist[j][i] beyond tolerance.
	ErrAsymmetricMatrix = errors.New("aco: distance matrix must be symmetric")
	// ErrStartOutOfRange indicates WalkerOptions.Start outside [0..n-1].
	ErrStartOutOfRange = errors.New("aco: start node out of range")
)

// Traversal is the stateful half of the engine boundary: it represents where
// an ant currently stands and what the graph looks like from there.
//
// Contract:
//   - Reset re-initializes internal position (typically to a random node),
//     returns the new current node, and must be callable once per ant without
//     leaking state between calls.
//   - Targets(node) enumerates the reachable next nodes from node - which must
//     be consistent with the traversal's own current position - as a finite,
//     restartable sequence of (quality, target) pairs. Qualities are the raw
//     domain-level goodness of each move and should be strictly positive and
//     finite. Enumeration order decides tie-breaks, so implementations should
//     keep it deterministic for testability. Self-loops must not be offered.
//   - WalkTo commits a move to one of the nodes previously enumerated by
//     Targets at the current position. Behavior for any other node is the
//     implementation's responsibility; the Colony does not validate it.
type Traversal interface {
	Reset() int
	Targets(node int) iter.Seq2[float64, int]
	WalkTo(node int)
}

// Scoring is the stateless half of the engine boundary: two pure functions
// that close the reinforcement loop.
//
// Contract:
//   - EdgeQuality combines a move's raw quality with the current pheromone
//     level into the visit score used for move selection. It must be
//     referentially transparent: identical inputs, identical output.
//   - PheromonesDeposited converts one ant's accumulated raw quality into a
//     non-negative pheromone amount added to every edge on its path.
//
// Returning NaN from either function violates the contract; see RunGeneration
// for the (documented, non-failing) comparison semantics that apply then.
type Scoring interface {
	EdgeQuality(quality, pheromone float64) float64
	PheromonesDeposited(totalQuality float64) float64
}

// Result holds the best path a Colony has discovered.
type Result struct {
	// Quality is the path's total accumulated raw quality; always > 0 when
	// returned by BestPath.
	Quality float64

	// Path is the sequence of nodes the ant moved to, in order. The start
	// node returned by Reset is not part of the sequence; only nodes reached
	// by a move are recorded.
	Path []int
}
