// Package aco - canonical edge identity and double-buffered pheromone storage.
//
// Edges are unordered node pairs: {a,b} and {b,a} address the same record.
// Each record carries two pheromone levels used as a double buffer - one
// active for the running generation, one holding the prior generation's
// residual trail - selected by the Colony-wide flag. Two slots per edge plus
// one flag is deliberately cheaper than reallocating per-edge state every
// generation.
//
// The table grows lazily: an edge record appears the first time the edge is
// read during scoring (zero pheromone in both slots) and is never removed.
package aco

// edgeKey is the canonical identity of an unordered node pair.
// Invariant: a <= b.
type edgeKey struct {
	a, b int
}

// newEdgeKey canonicalizes {a,b} so that lookup is order-independent.
//
// Complexity: O(1).
func newEdgeKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{a: a, b: b}
	}

	return edgeKey{a: b, b: a}
}

// edge holds the two pheromone levels of one undirected edge.
// levels[0] and levels[1] alternate between "current" and "prior" roles;
// slotIndex maps the Colony flag to the active index.
type edge struct {
	levels [2]float64
}

// slotIndex converts the buffer-selection flag into an array index.
//
// Complexity: O(1).
func slotIndex(second bool) int {
	if second {
		return 1
	}

	return 0
}

// level returns the pheromone in the slot selected by second.
//
// Complexity: O(1).
func (e *edge) level(second bool) float64 {
	return e.levels[slotIndex(second)]
}

// deposit accumulates amount into the slot selected by second.
// Accumulation, not replacement: multiple ants traversing the same edge in
// one generation sum their deposits.
//
// Complexity: O(1).
func (e *edge) deposit(second bool, amount float64) {
	e.levels[slotIndex(second)] += amount
}

// carryForward seeds the slot selected by intoSecond with the other slot's
// value, so the new generation starts from the prior generation's trail
// rather than from zero.
//
// Complexity: O(1).
func (e *edge) carryForward(intoSecond bool) {
	if intoSecond {
		e.levels[1] = e.levels[0]
	} else {
		e.levels[0] = e.levels[1]
	}
}

// edgeTable maps canonical edge identity to its pheromone record.
type edgeTable map[edgeKey]*edge

// at returns the record for edge {a,b}, creating it with zero pheromone in
// both slots on first reference.
//
// Complexity: O(1) amortized.
func (t edgeTable) at(a, b int) *edge {
	key := newEdgeKey(a, b)
	e, ok := t[key]
	if !ok {
		e = &edge{}
		t[key] = e
	}

	return e
}
