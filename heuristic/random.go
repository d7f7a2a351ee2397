package heuristic

import "math/rand"

// Random generates a random expression tree of exactly targetSize
// nodes, biased by probs (nil ⇒ uniform).
//
// Size policy:
//
//   - targetSize ≤ 0 picks a size uniformly in [1, MaxTreeSize];
//   - size 1 yields a terminal or a number, 50/50;
//   - size 2 can only be a unary around a size-1 subtree (a binary
//     needs at least 3 nodes);
//   - larger sizes flip a coin between a unary with a size-1 smaller
//     child and a binary whose left subtree size is uniform in
//     [1, size-2], the right taking the remainder.
//
// Complexity: O(targetSize).
func Random(rng *rand.Rand, targetSize int, probs *TermProbabilities) Node {
	size := targetSize
	if size <= 0 {
		size = 1 + rng.Intn(MaxTreeSize)
	}
	if probs == nil {
		probs = NewUniformProbabilities()
	}

	return randomNode(rng, size, probs)
}

func randomNode(rng *rand.Rand, size int, probs *TermProbabilities) Node {
	switch {
	case size <= 1:
		if rng.Intn(2) == 0 {
			return randomTerminal(rng, probs)
		}

		return randomNumber(rng, probs)
	case size == 2:
		return randomUnary(rng, size, probs)
	default:
		if rng.Intn(2) == 0 {
			return randomUnary(rng, size, probs)
		}

		return randomBinary(rng, size, probs)
	}
}

func randomTerminal(rng *rand.Rand, probs *TermProbabilities) Node {
	// Slot order matches the Terminal declaration order.
	return &Term{V: Terminal(weightedSample(rng, probs.Terminals))}
}

func randomNumber(rng *rand.Rand, probs *TermProbabilities) Node {
	return &Number{Value: 1 + weightedSample(rng, probs.Numbers)}
}

func randomUnary(rng *rand.Rand, size int, probs *TermProbabilities) Node {
	return &Unary{
		Op: UnaryOp(weightedSample(rng, probs.Unaries)),
		X:  randomNode(rng, size-1, probs),
	}
}

func randomBinary(rng *rand.Rand, size int, probs *TermProbabilities) Node {
	leftSize := 1 + rng.Intn(size-2)
	rightSize := size - leftSize - 1

	return &Binary{
		Op: BinaryOp(weightedSample(rng, probs.Binaries)),
		L:  randomNode(rng, leftSize, probs),
		R:  randomNode(rng, rightSize, probs),
	}
}

// weightedSample draws a slot index with probability proportional to
// weights. Weights are assumed normalized (sum 1); float rounding is
// absorbed by falling back to the last slot.
func weightedSample(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if r <= cum {
			return i
		}
	}

	return len(weights) - 1
}
