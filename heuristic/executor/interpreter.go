package executor

import "github.com/katalvlaran/heursearch/heuristic"

// Interpreter evaluates a tree by recursive descent. It allocates
// nothing per call and keeps no mutable state, so a single value may
// be shared freely across goroutines.
type Interpreter struct {
	root heuristic.Node
}

// NewInterpreter wraps root; the tree is not copied and must not be
// mutated afterwards (heuristic trees never are).
func NewInterpreter(root heuristic.Node) *Interpreter {
	return &Interpreter{root: root}
}

// Execute evaluates the tree at (x1,y1) → (x2,y2). A NaN result is
// returned as +Inf.
func (in *Interpreter) Execute(x1, y1, x2, y2 float32) float32 {
	return sanitize(eval(in.root, x1, y1, x2, y2))
}

func eval(node heuristic.Node, x1, y1, x2, y2 float32) float32 {
	switch n := node.(type) {
	case *heuristic.Number:
		return float32(n.Value)
	case *heuristic.Term:
		return evalTerminal(n.V, x1, y1, x2, y2)
	case *heuristic.Unary:
		return evalUnary(n.Op, eval(n.X, x1, y1, x2, y2))
	case *heuristic.Binary:
		return evalBinary(n.Op, eval(n.L, x1, y1, x2, y2), eval(n.R, x1, y1, x2, y2))
	default:
		// The four node kinds above are the whole language.
		panic("executor: unknown node kind")
	}
}

func evalTerminal(t heuristic.Terminal, x1, y1, x2, y2 float32) float32 {
	switch t {
	case heuristic.X1:
		return x1
	case heuristic.Y1:
		return y1
	case heuristic.X2:
		return x2
	case heuristic.Y2:
		return y2
	case heuristic.DeltaX:
		return abs32(x2 - x1)
	default:
		return abs32(y2 - y1)
	}
}

func evalUnary(op heuristic.UnaryOp, v float32) float32 {
	switch op {
	case heuristic.Neg:
		return -v
	case heuristic.Abs:
		return abs32(v)
	case heuristic.Sqrt:
		return sqrt32(v)
	default:
		return v * v
	}
}

func evalBinary(op heuristic.BinaryOp, a, b float32) float32 {
	switch op {
	case heuristic.Plus:
		return a + b
	case heuristic.Minus:
		return a - b
	case heuristic.Mul:
		return a * b
	case heuristic.Div:
		return a / b
	case heuristic.Max:
		return max32(a, b)
	default:
		return min32(a, b)
	}
}
