package heuristic

import (
	"fmt"
	"math/rand"
)

// TermProbabilities biases random generation and mutation: one
// probability vector per operator class, each summing to 1.
//
// Canonical slot orders (fixed; reversing them silently corrupts runs):
//
//	binaries:  +  /  *  -  max  min
//	unaries:   neg  abs  sqrt  sqr
//	terminals: x1  x2  y1  y2  deltaX  deltaY
//	numbers:   1 .. 9
type TermProbabilities struct {
	Binaries  []float64
	Unaries   []float64
	Terminals []float64
	Numbers   []float64
}

// NewUniformProbabilities returns vectors with equal mass per slot.
func NewUniformProbabilities() *TermProbabilities {
	return &TermProbabilities{
		Binaries:  uniformVector(NumBinaries),
		Unaries:   uniformVector(NumUnaries),
		Terminals: uniformVector(NumTerminals),
		Numbers:   uniformVector(NumNumbers),
	}
}

// NewRandomProbabilities samples every slot uniformly in [0,1) and
// normalizes each vector to sum 1.
func NewRandomProbabilities(rng *rand.Rand) *TermProbabilities {
	return &TermProbabilities{
		Binaries:  randomVector(rng, NumBinaries),
		Unaries:   randomVector(rng, NumUnaries),
		Terminals: randomVector(rng, NumTerminals),
		Numbers:   randomVector(rng, NumNumbers),
	}
}

// FromVectors builds TermProbabilities from caller-supplied vectors,
// validating lengths (6, 4, 6, 9) and normalizing each to sum 1.
// Returns ErrBadVectorLength on any mismatch.
func FromVectors(binaries, unaries, terminals, numbers []float64) (*TermProbabilities, error) {
	if len(binaries) != NumBinaries {
		return nil, fmt.Errorf("%w: binaries has %d slots, want %d", ErrBadVectorLength, len(binaries), NumBinaries)
	}
	if len(unaries) != NumUnaries {
		return nil, fmt.Errorf("%w: unaries has %d slots, want %d", ErrBadVectorLength, len(unaries), NumUnaries)
	}
	if len(terminals) != NumTerminals {
		return nil, fmt.Errorf("%w: terminals has %d slots, want %d", ErrBadVectorLength, len(terminals), NumTerminals)
	}
	if len(numbers) != NumNumbers {
		return nil, fmt.Errorf("%w: numbers has %d slots, want %d", ErrBadVectorLength, len(numbers), NumNumbers)
	}

	tp := &TermProbabilities{
		Binaries:  append([]float64(nil), binaries...),
		Unaries:   append([]float64(nil), unaries...),
		Terminals: append([]float64(nil), terminals...),
		Numbers:   append([]float64(nil), numbers...),
	}
	normalizeVector(tp.Binaries)
	normalizeVector(tp.Unaries)
	normalizeVector(tp.Terminals)
	normalizeVector(tp.Numbers)

	return tp, nil
}

// Crossover combines two probability sets: elementwise sum, then each
// of the four vectors is renormalized to sum 1. Neither parent is
// mutated.
func (tp *TermProbabilities) Crossover(other *TermProbabilities) *TermProbabilities {
	return &TermProbabilities{
		Binaries:  sumNormalize(tp.Binaries, other.Binaries),
		Unaries:   sumNormalize(tp.Unaries, other.Unaries),
		Terminals: sumNormalize(tp.Terminals, other.Terminals),
		Numbers:   sumNormalize(tp.Numbers, other.Numbers),
	}
}

// Mutate resamples each slot uniformly in [0,1) with probability
// mutProb, then renormalizes every vector that had a slot resampled;
// a vector with no resampled slot is copied as is. The receiver is
// unchanged.
func (tp *TermProbabilities) Mutate(rng *rand.Rand, mutProb float64) *TermProbabilities {
	out := &TermProbabilities{
		Binaries:  mutateVector(rng, tp.Binaries, mutProb),
		Unaries:   mutateVector(rng, tp.Unaries, mutProb),
		Terminals: mutateVector(rng, tp.Terminals, mutProb),
		Numbers:   mutateVector(rng, tp.Numbers, mutProb),
	}

	return out
}

// uniformVector returns n slots of 1/n.
func uniformVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0 / float64(n)
	}

	return v
}

// randomVector returns n slots sampled in [0,1), normalized to sum 1.
func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
	}
	normalizeVector(v)

	return v
}

// normalizeVector rescales v in place so its entries sum to 1.
func normalizeVector(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x
	}
	for i := range v {
		v[i] /= sum
	}
}

func sumNormalize(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	normalizeVector(out)

	return out
}

func mutateVector(rng *rand.Rand, v []float64, mutProb float64) []float64 {
	out := append([]float64(nil), v...)
	resampled := false
	for i := range out {
		if rng.Float64() < mutProb {
			out[i] = rng.Float64()
			resampled = true
		}
	}
	if resampled {
		normalizeVector(out)
	}

	return out
}
