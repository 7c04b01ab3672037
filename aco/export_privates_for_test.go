// Package aco - test-only windows into Colony internals.
//
// The public surface of Colony is fixed (construction, RunGeneration,
// BestPath), so the white-box assertions the test suite needs - exact
// pheromone levels per buffer slot, table size, flag position - are exported
// here instead. This file compiles only into the test binary.
package aco

// TrailLevel returns edge {a,b}'s pheromone in the slot selected by second,
// or 0 if the edge was never discovered. Lookup is canonical: (a,b) and
// (b,a) read the same record. It never creates an edge.
func (c *Colony) TrailLevel(a, b int, second bool) float64 {
	e, ok := c.edges[newEdgeKey(a, b)]
	if !ok {
		return 0
	}

	return e.level(second)
}

// SecondSlotActive reports the buffer-selection flag.
func (c *Colony) SecondSlotActive() bool {
	return c.useSecond
}

// EdgeCount returns the number of edges discovered so far.
func (c *Colony) EdgeCount() int {
	return len(c.edges)
}
