// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// All is the min value that requires every parser of a sequence to succeed.
const All = -1

// SequenceOf runs parsers in order, threading the state from one to the next.
// All of them must succeed; the result holds their results in order.
func SequenceOf[T, A any](parsers ...Parser[T, A]) Parser[T, []A] {
	return SequenceOfMin(All, parsers...)
}

// SequenceOfMin runs parsers in order and succeeds once at least min of them
// succeeded. With min == All every parser must succeed.
//
// After the first failure the remaining parsers receive the erroring state
// and return it unchanged, so nothing further is consumed. The result has
// one entry per parser; entries of parsers that did not succeed are the zero
// value of A. On partial success the index is the one reached by the last
// successful parser.
func SequenceOfMin[T, A any](min int, parsers ...Parser[T, A]) Parser[T, []A] {
	return New(func(s State[T, Erased]) State[T, []A] {
		if s.IsError() {
			return Recast[[]A](s)
		}

		results := make([]A, 0, len(parsers))
		var failure *Error
		matched := 0
		lastIndex := s.index

		next := s
		for _, p := range parsers {
			out := p.Transform(next)
			if out.IsError() {
				if failure == nil {
					failure = out.err
				}
			} else {
				matched++
				lastIndex = out.index
			}
			results = append(results, out.result)
			next = out.Erase()
		}

		if failure != nil && (min == All || matched < min) {
			required := min
			if min == All {
				required = len(parsers)
			}
			return FailAt[T, Erased, []A](next, failure.Index, &Error{
				Message:    failure.Message,
				Index:      failure.Index,
				Combinator: "sequenceOf",
				Matched:    matched,
				Required:   required,
				Cause:      failure,
			})
		}
		return Advance(s, lastIndex, results)
	})
}

// Between returns a constructor that surrounds content with left and right.
// All three must succeed; the result is the result of content.
// The content result type comes first so it can be given alone:
//
//	parens := Between[int](open, close)
//	p := parens(expr)
func Between[A, T, L, R any](left Parser[T, L], right Parser[T, R]) func(Parser[T, A]) Parser[T, A] {
	return func(content Parser[T, A]) Parser[T, A] {
		seq := SequenceOf(Erase(left), Erase(content), Erase(right))
		return Map(seq, func(rs []Erased) A {
			a, _ := rs[1].(A)
			return a
		}).MapErr(Wrap("between"))
	}
}

// Enclosed is Between applied directly to content.
func Enclosed[T, L, A, R any](left Parser[T, L], content Parser[T, A], right Parser[T, R]) Parser[T, A] {
	return Between[A](left, right)(content)
}
