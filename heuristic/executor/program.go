package executor

import "github.com/katalvlaran/heursearch/heuristic"

// opcode identifies one postfix instruction.
type opcode uint8

const (
	opConst opcode = iota // push code[i].val
	opX1                  // push x1
	opY1
	opX2
	opY2
	opDeltaX // push |x2-x1|
	opDeltaY // push |y2-y1|
	opNeg    // unary: replace top
	opAbs
	opSqrt
	opSqr
	opAdd // binary: pop two, push one
	opSub
	opMul
	opDiv
	opMax
	opMin
)

// instr is one postfix instruction; val is used by opConst only.
type instr struct {
	op  opcode
	val float32
}

// stackBuf is the inline evaluation stack. Trees within MaxTreeSize
// can never need more (depth ≤ size); larger hand-parsed trees fall
// back to a heap-allocated stack.
const stackBuf = heuristic.MaxTreeSize + 1

// Program is an expression compiled to a flat postfix instruction
// stream. It is immutable after Compile and safe to invoke from any
// number of goroutines concurrently: each Execute call evaluates on
// its own stack.
type Program struct {
	code     []instr
	maxStack int
}

// Compile lowers a tree into a Program. Compilation favours speed over
// code quality — expressions are throw-away (one per candidate
// heuristic) and evaluation over many cells dominates.
//
// Complexity: O(size) time and memory.
func Compile(root heuristic.Node) *Program {
	p := &Program{code: make([]instr, 0, root.Size())}
	p.maxStack = p.lower(root)

	return p
}

// lower appends root's postfix code and returns the stack depth the
// subtree needs.
func (p *Program) lower(node heuristic.Node) int {
	switch n := node.(type) {
	case *heuristic.Number:
		p.emit(instr{op: opConst, val: float32(n.Value)})

		return 1
	case *heuristic.Term:
		p.emit(instr{op: terminalOpcode(n.V)})

		return 1
	case *heuristic.Unary:
		depth := p.lower(n.X)
		p.emit(instr{op: unaryOpcode(n.Op)})

		return depth
	case *heuristic.Binary:
		// Left result stays on the stack while the right evaluates.
		ld := p.lower(n.L)
		rd := p.lower(n.R)
		p.emit(instr{op: binaryOpcode(n.Op)})
		if rd+1 > ld {
			return rd + 1
		}

		return ld
	default:
		panic("executor: unknown node kind")
	}
}

func (p *Program) emit(i instr) { p.code = append(p.code, i) }

// Execute runs the instruction stream at (x1,y1) → (x2,y2). A NaN
// result is returned as +Inf.
func (p *Program) Execute(x1, y1, x2, y2 float32) float32 {
	var buf [stackBuf]float32
	stack := buf[:]
	if p.maxStack > stackBuf {
		stack = make([]float32, p.maxStack)
	}

	top := -1 // index of the current stack top
	for _, ins := range p.code {
		switch ins.op {
		case opConst:
			top++
			stack[top] = ins.val
		case opX1:
			top++
			stack[top] = x1
		case opY1:
			top++
			stack[top] = y1
		case opX2:
			top++
			stack[top] = x2
		case opY2:
			top++
			stack[top] = y2
		case opDeltaX:
			top++
			stack[top] = abs32(x2 - x1)
		case opDeltaY:
			top++
			stack[top] = abs32(y2 - y1)
		case opNeg:
			stack[top] = -stack[top]
		case opAbs:
			stack[top] = abs32(stack[top])
		case opSqrt:
			stack[top] = sqrt32(stack[top])
		case opSqr:
			stack[top] = stack[top] * stack[top]
		case opAdd:
			top--
			stack[top] = stack[top] + stack[top+1]
		case opSub:
			top--
			stack[top] = stack[top] - stack[top+1]
		case opMul:
			top--
			stack[top] = stack[top] * stack[top+1]
		case opDiv:
			top--
			stack[top] = stack[top] / stack[top+1]
		case opMax:
			top--
			stack[top] = max32(stack[top], stack[top+1])
		case opMin:
			top--
			stack[top] = min32(stack[top], stack[top+1])
		}
	}

	return sanitize(stack[0])
}

func terminalOpcode(t heuristic.Terminal) opcode {
	switch t {
	case heuristic.X1:
		return opX1
	case heuristic.Y1:
		return opY1
	case heuristic.X2:
		return opX2
	case heuristic.Y2:
		return opY2
	case heuristic.DeltaX:
		return opDeltaX
	default:
		return opDeltaY
	}
}

func unaryOpcode(op heuristic.UnaryOp) opcode {
	switch op {
	case heuristic.Neg:
		return opNeg
	case heuristic.Abs:
		return opAbs
	case heuristic.Sqrt:
		return opSqrt
	default:
		return opSqr
	}
}

func binaryOpcode(op heuristic.BinaryOp) opcode {
	switch op {
	case heuristic.Plus:
		return opAdd
	case heuristic.Minus:
		return opSub
	case heuristic.Mul:
		return opMul
	case heuristic.Div:
		return opDiv
	case heuristic.Max:
		return opMax
	default:
		return opMin
	}
}
