package heuristic

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the canonical s-expression form and returns the tree.
// All failures wrap ErrParse with a description of the offending token.
//
// Round-trip law: Parse(n.String()) is structurally equal to n for
// every well-formed tree n.
//
// Complexity: O(len(input)).
func Parse(input string) (Node, error) {
	toks := tokenize(input)
	p := &parser{toks: toks}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("%w: trailing input %q", ErrParse, p.peek())
	}

	return node, nil
}

// MustParse is Parse for known-good literals (tests, baselines);
// it panics on error.
func MustParse(input string) Node {
	n, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return n
}

// tokenize splits input into parens and whitespace-separated atoms.
func tokenize(input string) []string {
	replaced := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(input)

	return strings.Fields(replaced)
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.done() {
		return "<eof>"
	}

	return p.toks[p.pos]
}

func (p *parser) next() (string, error) {
	if p.done() {
		return "", fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	t := p.toks[p.pos]
	p.pos++

	return t, nil
}

func (p *parser) expect(tok string) error {
	t, err := p.next()
	if err != nil {
		return err
	}
	if t != tok {
		return fmt.Errorf("%w: expected %q, found %q", ErrParse, tok, t)
	}

	return nil
}

// parseExpr parses one heuristic production.
func (p *parser) parseExpr() (Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	// Parenthesized operator application.
	if tok == "(" {
		return p.parseApplication()
	}
	if tok == ")" {
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, tok)
	}

	// Atom: terminal or number literal.
	if t, ok := terminalFor(tok); ok {
		return &Term{V: t}, nil
	}
	if v, err := strconv.Atoi(tok); err == nil {
		if v < 1 || v > 9 {
			return nil, fmt.Errorf("%w: number %d outside [1..9]", ErrParse, v)
		}

		return &Number{Value: v}, nil
	}

	return nil, fmt.Errorf("%w: unknown token %q", ErrParse, tok)
}

// parseApplication parses the operator and arguments after an opening
// paren, consuming the closing paren.
func (p *parser) parseApplication() (Node, error) {
	op, err := p.next()
	if err != nil {
		return nil, err
	}

	if u, ok := unaryFor(op); ok {
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(")"); err != nil {
			return nil, err
		}

		return &Unary{Op: u, X: child}, nil
	}

	if b, ok := binaryFor(op); ok {
		left, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(")"); err != nil {
			return nil, err
		}

		return &Binary{Op: b, L: left, R: right}, nil
	}

	return nil, fmt.Errorf("%w: unknown operator %q", ErrParse, op)
}

func terminalFor(tok string) (Terminal, bool) {
	switch tok {
	case "x1":
		return X1, true
	case "x2":
		return X2, true
	case "y1":
		return Y1, true
	case "y2":
		return Y2, true
	case "deltaX":
		return DeltaX, true
	case "deltaY":
		return DeltaY, true
	default:
		return 0, false
	}
}

func unaryFor(tok string) (UnaryOp, bool) {
	switch tok {
	case "neg":
		return Neg, true
	case "abs":
		return Abs, true
	case "sqrt":
		return Sqrt, true
	case "sqr":
		return Sqr, true
	default:
		return 0, false
	}
}

func binaryFor(tok string) (BinaryOp, bool) {
	switch tok {
	case "+":
		return Plus, true
	case "/":
		return Div, true
	case "*":
		return Mul, true
	case "-":
		return Minus, true
	case "max":
		return Max, true
	case "min":
		return Min, true
	default:
		return 0, false
	}
}
