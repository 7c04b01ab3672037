// Package aco - the Colony simulation core.
//
// This file implements the generation loop:
//
//  1. Carry the prior trail forward into the active pheromone slot.
//  2. Simulate antCount sequential ants: greedy trail-guided construction,
//     deposit on every traversed edge, best-path bookkeeping.
//  3. Flip the buffer-selection flag.
//
// Design principles:
//   - Deterministic: the Colony itself uses no randomness; all nondeterminism
//     lives behind the Traversal policy.
//   - Strict sentinels: only errors from types.go; arguments are validated
//     before any state is touched, so a failed call mutates nothing.
//   - Hot-path discipline: one scratch path buffer reused across all ants;
//     the best path is taken over by swap, never by copy.
//   - Single-threaded by design: later ants must observe earlier ants'
//     deposits within the same generation.
package aco

// Colony owns per-edge pheromone state and the best-known path.
//
// The zero value is ready to use; NewColony is provided for symmetry with
// the rest of the library. A Colony must not be shared across goroutines
// without external synchronization.
type Colony struct {
	// edges is the lazily-grown pheromone table.
	edges edgeTable

	// useSecond selects which of each edge's two pheromone slots is active
	// for the running generation; toggled exactly once per generation.
	useSecond bool

	// bestQuality and bestPath track the highest-quality path ever recorded.
	// bestQuality == 0 is the sentinel for "no path found yet".
	bestQuality float64
	bestPath    []int

	// pathBuf is the scratch buffer for the ant currently being simulated.
	// When an ant beats bestQuality the two buffers swap roles.
	pathBuf []int
}

// NewColony returns an empty Colony: no edges, no best path, first pheromone
// slot active.
func NewColony() *Colony {
	return &Colony{edges: make(edgeTable)}
}

// RunGeneration simulates one generation of antCount ants.
//
// Each ant starts at traversal.Reset(), then repeatedly scores every
// candidate move offered by traversal.Targets(current) - combining the raw
// move quality with the active pheromone level of the corresponding edge via
// scoring.EdgeQuality - and commits the candidate with the maximum visit
// score. An empty candidate set is a dead end and terminates the walk. The
// ant's accumulated raw quality is then converted by
// scoring.PheromonesDeposited into a deposit added to every edge it walked,
// and the best-path record is updated on strict improvement.
//
// Selection semantics:
//   - The maximum is found by a strict > scan in enumeration order, so the
//     first-enumerated candidate wins exact ties.
//   - Comparisons follow IEEE-754: a NaN visit score never wins the scan
//     (except as the unavoidable first seed of the running maximum), and no
//     error is raised - NaN scores are a Scoring contract violation.
//
// Ordering semantics:
//   - Ants run sequentially and deposit into the active slot as they finish,
//     so earlier ants influence later ants within the same generation.
//
// antCount == 0 is legal: the generation still carries the prior trail
// forward and still flips the buffer flag, but simulates nothing.
//
// Errors: ErrNegativeAntCount, ErrNilTraversal, ErrNilScoring - all checked
// before any mutation.
//
// Complexity: O(E) carry-forward + O(antCount · moves · targets) simulation,
// where E is the current edge-table size.
func (c *Colony) RunGeneration(antCount int, traversal Traversal, scoring Scoring) error {
	if antCount < 0 {
		return ErrNegativeAntCount
	}
	if traversal == nil {
		return ErrNilTraversal
	}
	if scoring == nil {
		return ErrNilScoring
	}
	if c.edges == nil {
		c.edges = make(edgeTable)
	}

	// Stage 1 - carry-forward: seed the active slot of every known edge with
	// the prior generation's level, before any ant moves, so all ants start
	// from a consistent trail.
	for _, e := range c.edges {
		e.carryForward(c.useSecond)
	}

	// Stage 2 - sequential ant simulation.
	var ant int
	for ant = 0; ant < antCount; ant++ {
		c.runAnt(traversal, scoring)
	}

	// Stage 3 - the slot just written becomes "prior" for the next generation.
	c.useSecond = !c.useSecond

	return nil
}

// runAnt simulates a single ant: construction, deposit, best-path update.
func (c *Colony) runAnt(traversal Traversal, scoring Scoring) {
	c.pathBuf = c.pathBuf[:0]

	var (
		total float64          // accumulated raw quality of the walk
		start = traversal.Reset()
		cur   = start
	)

	// Walk until the traversal offers no targets (dead end / natural end).
	for {
		var (
			chosen        = -1 // -1 marks "nothing enumerated yet"
			chosenQuality float64
			bestScore     float64
		)
		for quality, target := range traversal.Targets(cur) {
			// Reading the pheromone creates the edge record lazily at zero.
			pheromone := c.edges.at(cur, target).level(c.useSecond)
			score := scoring.EdgeQuality(quality, pheromone)

			// Strict > keeps the first-enumerated candidate on exact ties.
			if chosen < 0 || score > bestScore {
				chosen = target
				chosenQuality = quality
				bestScore = score
			}
		}
		if chosen < 0 {
			break
		}

		// Accumulate the raw quality, not the visit score.
		total += chosenQuality
		cur = chosen
		traversal.WalkTo(cur)
		c.pathBuf = append(c.pathBuf, cur)
	}

	// Deposit along every edge of the walk, start node included.
	// An ant that never moved deposits nothing and cannot improve the best
	// path (its total is zero), so it leaves the Colony untouched.
	var (
		deposited = scoring.PheromonesDeposited(total)
		prev      = start
		node      int
	)
	for _, node = range c.pathBuf {
		c.edges.at(prev, node).deposit(c.useSecond, deposited)
		prev = node
	}

	// Strict improvement takes ownership of the scratch buffer; the displaced
	// former best becomes the next ant's scratch. Ties never replace.
	if total > c.bestQuality {
		c.bestQuality = total
		c.bestPath, c.pathBuf = c.pathBuf, c.bestPath
	}
}

// BestPath returns the best (quality, path) ever recorded across all
// generations, or ErrNoPathFound if no ant has completed a path with strictly
// positive total quality. Read-only; the returned path is a copy, so callers
// may keep or mutate it freely.
//
// Complexity: O(len(path)).
func (c *Colony) BestPath() (Result, error) {
	if c.bestQuality <= 0 {
		return Result{}, ErrNoPathFound
	}

	path := make([]int, len(c.bestPath))
	copy(path, c.bestPath)

	return Result{Quality: c.bestQuality, Path: path}, nil
}
