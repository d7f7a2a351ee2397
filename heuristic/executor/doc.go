// Package executor evaluates heuristic expression trees as functions
// (x1, y1, x2, y2) → float32.
//
// Two implementations share one contract:
//
//   - Interpreter — a recursive tree walk with no per-call allocation;
//     the reference implementation.
//   - Program — the performance path: Compile flattens the tree into a
//     postfix instruction stream evaluated on a small value stack, so
//     the inner A* loop pays no interface dispatch or pointer chasing
//     per node. A compiled Program is immutable and safe for
//     concurrent use from any number of goroutines.
//
// Both implement Executor and agree bitwise on every input.
//
// Evaluation semantics (single-precision IEEE throughout):
//
//   - deltaX = |x2−x1|, deltaY = |y2−y1|;
//   - sqrt(v) = sign(v)·√|v| — negatives stay finite, 0 maps to 0;
//   - sqr(v) = v·v;
//   - div is IEEE division: x/0 = ±Inf;
//   - max/min follow maxnum/minnum: a NaN operand absorbs to the other;
//   - a NaN final value is returned as +Inf, so A* never enqueues a
//     NaN priority.
package executor
