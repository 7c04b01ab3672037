// Package lvlant is a small, deterministic ant-colony simulation engine for
// path-construction problems — the travelling salesman problem being the
// canonical instance.
//
// 🐜 What is lvlant?
//
//	A focused library that simulates successive generations of artificial
//	ants building paths over an abstract graph, guided by a pheromone trail
//	reinforced by past path quality:
//		• Colony — the simulation core: double-buffered per-edge pheromone
//		  bookkeeping, trail-guided greedy path construction, best-path tracking
//		• Traversal / Scoring — the two capability contracts describing the
//		  graph and the quality model; the Colony never sees concrete graph data
//		• MatrixWalker — a ready-made Traversal over a dense distance matrix
//		• AdditiveScoring / PowerScoring — ready-made Scoring policies
//
// ✨ Why choose lvlant?
//
//   - Deterministic – seeded RNG everywhere, no time-based randomness
//   - Rock-solid contracts – strict sentinel errors, no panics, no logging
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – bring your own Traversal/Scoring for any path domain
//
// Everything lives in one subpackage:
//
//	aco/ — the colony engine, its contracts and the shipped policies
//
// Quick example:
//
//	colony := aco.NewColony()
//	walker, _ := aco.NewMatrixWalker(dist, aco.DefaultWalkerOptions())
//	scoring := aco.DefaultPowerScoring()
//	for g := 0; g < 50; g++ {
//		_ = colony.RunGeneration(100, walker, scoring)
//	}
//	best, err := colony.BestPath()
//
// See aco/doc.go for the full model description.
package lvlant
