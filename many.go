// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Repetition combinators.
//
// A sub-parser that succeeds without consuming input makes these loops
// run forever; grammars must not repeat such parsers.

// Many applies p until it fails and returns the results of the successful
// attempts. It never fails on its own; zero matches yield an empty slice.
func Many[T, A any](p Parser[T, A]) Parser[T, []A] {
	return ManyMin(p, 0)
}

// ManyMin is Many requiring at least min matches.
//
// The failing attempt that ends the loop is discarded: its result is not
// appended and its error does not reach the final state, which sits at the
// index of the last successful match.
func ManyMin[T, A any](p Parser[T, A], min int) Parser[T, []A] {
	return New(func(s State[T, Erased]) State[T, []A] {
		if s.IsError() {
			return Recast[[]A](s)
		}
		results := make([]A, 0)
		next := s
		var last *Error
		for {
			out := p.Transform(next)
			if out.IsError() {
				last = out.err
				break
			}
			results = append(results, out.result)
			next = out.Erase()
		}
		if len(results) < min {
			return Fail[T, Erased, []A](next, countError("many", last, len(results), min))
		}
		return ReplaceResult(next, results)
	})
}

// ManyJoin applies p repeatedly, consuming joiner between matches.
// Joiner results are dropped. The loop ends on the first failure of either
// parser; a joiner not followed by a match is not consumed.
func ManyJoin[T, A, J any](p Parser[T, A], joiner Parser[T, J]) Parser[T, []A] {
	return ManyJoinMin(p, joiner, 0)
}

// ManyJoinMin is ManyJoin requiring at least min matches of p.
func ManyJoinMin[T, A, J any](p Parser[T, A], joiner Parser[T, J], min int) Parser[T, []A] {
	return manyJoin(p, joiner, min, false)
}

// ManyJoinWJR is ManyJoin keeping joiner results interleaved with the
// results of p.
func ManyJoinWJR[T, A any](p Parser[T, A], joiner Parser[T, A]) Parser[T, []A] {
	return ManyJoinWJRMin(p, joiner, 0)
}

// ManyJoinWJRMin is ManyJoinWJR requiring at least min matches of p.
// Joiner results do not count toward min.
func ManyJoinWJRMin[T, A any](p Parser[T, A], joiner Parser[T, A], min int) Parser[T, []A] {
	return manyJoin(p, joiner, min, true)
}

func manyJoin[T, A, J any](p Parser[T, A], joiner Parser[T, J], min int, keepJoiner bool) Parser[T, []A] {
	return New(func(s State[T, Erased]) State[T, []A] {
		if s.IsError() {
			return Recast[[]A](s)
		}
		results := make([]A, 0)
		matched := 0
		next := s
		var last *Error
		for {
			cur := next
			var joined J
			if matched > 0 {
				js := joiner.Transform(cur)
				if js.IsError() {
					last = js.err
					break
				}
				joined = js.result
				cur = js.Erase()
			}
			out := p.Transform(cur)
			if out.IsError() {
				last = out.err
				break
			}
			if matched > 0 && keepJoiner {
				// J == A whenever keepJoiner is set.
				a, _ := any(joined).(A)
				results = append(results, a)
			}
			results = append(results, out.result)
			matched++
			next = out.Erase()
		}
		if matched < min {
			return Fail[T, Erased, []A](next, countError("manyJoin", last, matched, min))
		}
		return ReplaceResult(next, results)
	})
}

// countError builds the failure of a repetition that matched fewer than
// required times, wrapping the attempt that ended the loop.
func countError(combinator string, cause *Error, matched, required int) *Error {
	e := &Error{
		Message:    "not enough matches",
		Combinator: combinator,
		Matched:    matched,
		Required:   required,
		Cause:      cause,
	}
	if cause != nil {
		e.Index = cause.Index
	}
	return e
}
