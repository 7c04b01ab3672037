// Package aco - ready-made Scoring policies.
//
// Both policies are pure value types: identical inputs always produce
// identical outputs, as the Scoring contract requires. Deposits are linear
// in the path's total quality for both; the policies differ only in how
// quality and pheromone combine into a visit score.
package aco

import "math"

// AdditiveScoring combines quality and pheromone linearly:
//
//	EdgeQuality(q, p)       = q + PheromoneWeight·p
//	PheromonesDeposited(t)  = DepositGain·t
//
// With both knobs at 1 this is the identity model: the trail simply adds to
// the raw quality, and a path deposits exactly its total quality.
type AdditiveScoring struct {
	// PheromoneWeight scales the trail's influence on move selection.
	PheromoneWeight float64

	// DepositGain scales how strongly a finished path reinforces its edges.
	DepositGain float64
}

var _ Scoring = AdditiveScoring{}

// DefaultAdditiveScoring returns the identity model (both weights 1).
func DefaultAdditiveScoring() AdditiveScoring {
	return AdditiveScoring{PheromoneWeight: 1, DepositGain: 1}
}

// EdgeQuality implements Scoring.
func (s AdditiveScoring) EdgeQuality(quality, pheromone float64) float64 {
	return quality + s.PheromoneWeight*pheromone
}

// PheromonesDeposited implements Scoring.
func (s AdditiveScoring) PheromonesDeposited(totalQuality float64) float64 {
	return s.DepositGain * totalQuality
}

// PowerScoring combines quality and pheromone multiplicatively with the
// classic ant-system exponents:
//
//	EdgeQuality(q, p)       = q^Alpha · (p+Smoothing)^Beta
//	PheromonesDeposited(t)  = DepositGain·t
//
// Smoothing keeps fresh (zero-pheromone) edges selectable when Beta > 0;
// without it every unexplored edge would score zero and the walk would
// degenerate to whichever candidate is enumerated first.
type PowerScoring struct {
	// Alpha is the raw-quality exponent.
	Alpha float64

	// Beta is the pheromone exponent.
	Beta float64

	// Smoothing is added to the pheromone level before exponentiation.
	// Must be > 0 when Beta > 0.
	Smoothing float64

	// DepositGain scales how strongly a finished path reinforces its edges.
	DepositGain float64
}

var _ Scoring = PowerScoring{}

// DefaultPowerScoring returns a quality-respecting, trail-amplifying model:
// Alpha=1, Beta=2, Smoothing=1, DepositGain=1.
func DefaultPowerScoring() PowerScoring {
	return PowerScoring{Alpha: 1, Beta: 2, Smoothing: 1, DepositGain: 1}
}

// EdgeQuality implements Scoring.
func (s PowerScoring) EdgeQuality(quality, pheromone float64) float64 {
	return math.Pow(quality, s.Alpha) * math.Pow(pheromone+s.Smoothing, s.Beta)
}

// PheromonesDeposited implements Scoring.
func (s PowerScoring) PheromonesDeposited(totalQuality float64) float64 {
	return s.DepositGain * totalQuality
}
