package heuristic

import "math/rand"

// Mutate returns a mutated copy of root: a recursive descent replaces
// one node's subtree with a fresh random tree, with per-node
// replacement probability 1/size(subtree) and a size budget that keeps
// the whole result within MaxTreeSize. The input tree is never
// modified; unreplaced subtrees are shared, not copied.
//
// A single descent may finish without replacing anything (every coin
// flip can fail), and a replacement can reproduce the subtree it
// replaced; the outer loop retries until the result differs from the
// input and fits the budget, which terminates with probability 1.
//
// probs == nil falls back to uniform operator distributions.
func Mutate(rng *rand.Rand, root Node, probs *TermProbabilities) Node {
	if probs == nil {
		probs = NewUniformProbabilities()
	}

	for {
		mutated, ok := mutateNode(rng, root, MaxTreeSize, probs)
		if ok && mutated.Size() <= MaxTreeSize && !Equal(mutated, root) {
			return mutated
		}
	}
}

// mutateNode descends into node with budget = MaxTreeSize minus the
// total size of every node outside this subtree, so a replacement of
// size ≤ budget keeps the whole tree within MaxTreeSize.
func mutateNode(rng *rand.Rand, node Node, budget int, probs *TermProbabilities) (Node, bool) {
	// Replace this node with probability 1/size(node).
	size := node.Size()
	if rng.Float64()*float64(size) <= 1.0 {
		return randomNode(rng, 1+rng.Intn(budget), probs), true
	}

	switch n := node.(type) {
	case *Unary:
		child, ok := mutateNode(rng, n.X, budget-1, probs)
		if !ok {
			return node, false
		}

		return &Unary{Op: n.Op, X: child}, true
	case *Binary:
		// Left first; the sibling's size stays fixed, so it is carved
		// out of the budget along with the operator node itself.
		left, ok := mutateNode(rng, n.L, budget-n.R.Size()-1, probs)
		if ok {
			return &Binary{Op: n.Op, L: left, R: n.R}, true
		}
		right, ok := mutateNode(rng, n.R, budget-n.L.Size()-1, probs)
		if ok {
			return &Binary{Op: n.Op, L: n.L, R: right}, true
		}

		return node, false
	default:
		// Leaf that was not replaced: the caller retries.
		return node, false
	}
}
