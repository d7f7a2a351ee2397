package genetic

import (
	"math"

	"github.com/katalvlaran/heursearch/cycle"
)

// Fitness scores one evaluated individual against the baseline;
// smaller is better. Unsolved cycles (the cycle.Unsolved sentinel in
// either aggregate) score +Inf — valid, but unattractive.
//
//	fitness = (pathLen/basePathLen)² · (expansions/baseExpansions) · (200 + size)
func Fitness(expansions, pathLen, baseExpansions, basePathLen, size int) float64 {
	if expansions == cycle.Unsolved || pathLen == cycle.Unsolved {
		return math.Inf(1)
	}

	pathRatio := float64(pathLen) / float64(basePathLen)
	expRatio := float64(expansions) / float64(baseExpansions)

	return pathRatio * pathRatio * expRatio * float64(sizePenaltyOffset+size)
}

// samplingWeights converts fitness values into sampling weights:
// proportional to fitness after normalization, with non-finite
// entries contributing nothing. Returns the weight total; a zero total
// means the caller should sample uniformly.
func samplingWeights(fitness []float64) ([]float64, float64) {
	weights := make([]float64, len(fitness))
	var total float64
	for i, f := range fitness {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			continue
		}
		weights[i] = f
		total += f
	}

	return weights, total
}
