// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package intlist parses bracketed integer lists such as "[1, 2, 3]" and
// fixed-size tuples such as "(4, 5)".
package intlist

import (
	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
)

func token[A any](p kombi.Parser[byte, A]) kombi.Parser[byte, A] {
	ws := leaf.OptionalWhitespace()
	return kombi.Enclosed(ws, p, ws)
}

// List matches a bracketed, comma separated list of integers.
// The empty list "[]" is allowed; a trailing comma is not.
func List() kombi.Parser[byte, []int] {
	items := kombi.ManyJoin(token(leaf.Int()), leaf.Char(','))
	return kombi.Between[[]int](token(leaf.Char('[')), token(leaf.Char(']')))(items)
}

// Tuple matches exactly n comma separated integers in parentheses.
func Tuple(n int) kombi.Parser[byte, []int] {
	fields := make([]kombi.Parser[byte, int], n)
	for i := range fields {
		fields[i] = token(leaf.Int())
	}
	return kombi.Enclosed(token(leaf.Char('(')), kombi.Join(fields, leaf.Char(',')), token(leaf.Char(')')))
}

// Parse parses src as a whole list.
func Parse(src string) ([]int, error) {
	whole := kombi.Chain(List(), func(xs []int) kombi.Parser[byte, []int] {
		return kombi.Map(leaf.EndOfInput(), func(kombi.Erased) []int { return xs })
	})
	m, err := kombi.Run(whole, []byte(src))
	if err != nil {
		return nil, err
	}
	return m.Value, nil
}

// Sum adds xs.
func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
