// Package aco provides a deterministic ant-colony simulation engine for
// path-construction problems.
//
// The engine is a single component, the Colony:
//
//   - Colony — owns per-edge pheromone state and the best path ever found,
//     and exposes one repeatable operation, RunGeneration, which simulates
//     antCount sequential ants building paths over an abstract graph.
//
//   - Memory:  O(E) where E is the number of edges ever traversed
//     (edges are discovered lazily; the table only grows).
//
//   - Per generation: O(E + antCount·moves·targets) time.
//
// The Colony never sees concrete graph data. Two capability contracts form
// the system boundary:
//
//   - Traversal — stateful: where an ant currently stands and which
//     (quality, target) moves the graph offers from there.
//
//   - Scoring — stateless: how raw quality and pheromone combine into a
//     visit score, and how a finished path's total quality converts into a
//     pheromone deposit.
//
// Pheromone trails are double-buffered: each edge holds two levels and a
// colony-wide flag selects the active slot. Every generation first carries
// the prior trail forward into the active slot, then lets ants deposit on
// top of it, then flips the flag. Deposits only accumulate — there is no
// evaporation step in this model.
//
// Ants within one generation run sequentially and share the active trail:
// deposits made by earlier ants influence the decisions of later ants in
// the same generation. This ordering sensitivity is part of the model, not
// an implementation accident.
//
// Ready-made policies ship with the package: MatrixWalker (a Traversal over
// a dense symmetric distance matrix) and AdditiveScoring / PowerScoring.
//
// Use this package when you need a reinforcement-style path heuristic over
// a graph you can describe move-by-move, without committing to any concrete
// graph representation.
package aco
