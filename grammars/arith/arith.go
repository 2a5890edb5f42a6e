// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arith parses and evaluates integer arithmetic expressions.
//
// Grammar:
//
//	expr   = term   { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = integer | "(" expr ")" .
//
// Whitespace is allowed around every factor and operator.
package arith

import (
	"fmt"

	"github.com/pkg/errors"

	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
	"code.hybscloud.com/kombi/trace"
)

// ErrDivisionByZero is returned by Eval for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Node is an expression tree node: a literal when Op is empty, otherwise a
// binary operation on Left and Right.
type Node struct {
	Op    string
	Value int
	Left  *Node
	Right *Node
}

// String renders the tree fully parenthesized.
func (n *Node) String() string {
	if n.Op == "" {
		return fmt.Sprint(n.Value)
	}
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

// Grammar builds the expression parser. When t is enabled every rule is
// traced.
func Grammar(t *trace.Tracer) kombi.Parser[byte, *Node] {
	ws := leaf.OptionalWhitespace()
	token := func(p kombi.Parser[byte, string]) kombi.Parser[byte, string] {
		return kombi.Enclosed(ws, p, ws)
	}
	operator := func(ops string) kombi.Parser[byte, *Node] {
		return kombi.Map(token(leaf.AnyOf(ops)), func(op string) *Node {
			return &Node{Op: op}
		})
	}

	expr := kombi.NewRef[byte, *Node]()

	literal := kombi.Map(leaf.Int(), func(v int) *Node { return &Node{Value: v} })
	parens := kombi.Between[*Node](token(leaf.Char('(')), token(leaf.Char(')')))
	factor := trace.Wrap(t, "factor", kombi.Enclosed(ws, kombi.Choice(literal, parens(expr.Parser())), ws))

	term := trace.Wrap(t, "term", kombi.Map(kombi.ManyJoinWJRMin(factor, operator("*/"), 1), fold))
	expr.Set(trace.Wrap(t, "expr", kombi.Map(kombi.ManyJoinWJRMin(term, operator("+-"), 1), fold)))

	return expr.Parser()
}

// fold builds a left-associative tree from [operand, op, operand, ...].
func fold(items []*Node) *Node {
	acc := items[0]
	for i := 1; i+1 < len(items); i += 2 {
		op := items[i]
		acc = &Node{Op: op.Op, Left: acc, Right: items[i+1]}
	}
	return acc
}

var defaultGrammar = Grammar(nil)

// Parse parses src, which must hold exactly one expression.
func Parse(src string) (*Node, error) {
	return ParseWith(defaultGrammar, src)
}

// ParseWith parses src with a grammar returned by Grammar.
func ParseWith(g kombi.Parser[byte, *Node], src string) (*Node, error) {
	whole := kombi.Chain(g, func(n *Node) kombi.Parser[byte, *Node] {
		return kombi.Map(leaf.EndOfInput(), func(kombi.Erased) *Node { return n })
	})
	m, err := kombi.Run(whole, []byte(src))
	if err != nil {
		return nil, err
	}
	return m.Value, nil
}

// Eval computes the value of n.
func Eval(n *Node) (int, error) {
	if n.Op == "" {
		return n.Value, nil
	}
	l, err := Eval(n.Left)
	if err != nil {
		return 0, err
	}
	r, err := Eval(n.Right)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, errors.Wrapf(ErrDivisionByZero, "evaluating %s", n)
		}
		return l / r, nil
	}
	return 0, errors.Errorf("unknown operator %q", n.Op)
}

// Calc parses and evaluates src.
func Calc(src string) (int, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", src)
	}
	return Eval(n)
}
