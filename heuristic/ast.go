package heuristic

import (
	"fmt"
	"time"
)

// Node is one vertex of a heuristic expression tree. The four concrete
// types are Number, Term, Unary and Binary; nothing else implements it.
type Node interface {
	fmt.Stringer

	// Size returns the node count of the subtree rooted here.
	Size() int

	// Depth returns the height of the subtree rooted here (a leaf is 1).
	Depth() int

	isNode()
}

// Number is an integer literal in [1..9].
type Number struct {
	Value int
}

// Term is a terminal variable.
type Term struct {
	V Terminal
}

// Unary applies a one-argument operator to a subtree.
type Unary struct {
	Op UnaryOp
	X  Node
}

// Binary applies a two-argument operator to two subtrees.
type Binary struct {
	Op   BinaryOp
	L, R Node
}

func (*Number) isNode() {}
func (*Term) isNode()   {}
func (*Unary) isNode()  {}
func (*Binary) isNode() {}

// String renders the canonical s-expression form.
func (n *Number) String() string { return fmt.Sprintf("%d", n.Value) }
func (n *Term) String() string   { return n.V.String() }
func (n *Unary) String() string  { return fmt.Sprintf("(%s %s)", n.Op, n.X) }
func (n *Binary) String() string { return fmt.Sprintf("(%s %s %s)", n.Op, n.L, n.R) }

func (*Number) Size() int  { return 1 }
func (*Term) Size() int    { return 1 }
func (n *Unary) Size() int { return 1 + n.X.Size() }
func (n *Binary) Size() int {
	return 1 + n.L.Size() + n.R.Size()
}

func (*Number) Depth() int  { return 1 }
func (*Term) Depth() int    { return 1 }
func (n *Unary) Depth() int { return 1 + n.X.Depth() }
func (n *Binary) Depth() int {
	ld, rd := n.L.Depth(), n.R.Depth()
	if ld > rd {
		return 1 + ld
	}

	return 1 + rd
}

// Equal reports structural equality of two trees.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)

		return ok && x.Value == y.Value
	case *Term:
		y, ok := b.(*Term)

		return ok && x.V == y.V
	case *Unary:
		y, ok := b.(*Unary)

		return ok && x.Op == y.Op && Equal(x.X, y.X)
	case *Binary:
		y, ok := b.(*Binary)

		return ok && x.Op == y.Op && Equal(x.L, y.L) && Equal(x.R, y.R)
	default:
		return false
	}
}

// Manhattan returns a fresh "(+ deltaX deltaY)" tree — the baseline
// heuristic every run is scored against.
func Manhattan() Node {
	return &Binary{Op: Plus, L: &Term{V: DeltaX}, R: &Term{V: DeltaY}}
}

// Heuristic wraps a tree with its cached size and creation timestamp.
// Size is computed once at construction and never changes; CreatedAt is
// stamped at construction and never mutated.
type Heuristic struct {
	Root Node

	size    int
	created time.Time
}

// New wraps root, caching its size and stamping the creation time.
func New(root Node) *Heuristic {
	return &Heuristic{Root: root, size: root.Size(), created: time.Now()}
}

// Size returns the cached node count of the tree.
func (h *Heuristic) Size() int { return h.size }

// CreatedAt returns the construction timestamp.
func (h *Heuristic) CreatedAt() time.Time { return h.created }

// String returns the canonical printed form of the tree — the key used
// for hashing and deduplication.
func (h *Heuristic) String() string { return h.Root.String() }

// Equal reports structural equality of the underlying trees; creation
// timestamps are ignored.
func (h *Heuristic) Equal(other *Heuristic) bool {
	return Equal(h.Root, other.Root)
}
