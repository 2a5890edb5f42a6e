// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Parser wraps a state-transition function.
// Parser[T, A] consumes input of T units and produces a result of type A.
//
// A Parser owns no mutable data. Combinators build new Parsers that refer to
// existing ones by value, so a grammar is constructed once and invoked any
// number of times, from any number of goroutines.
type Parser[T, A any] struct {
	fn func(State[T, Erased]) State[T, A]
}

// New creates a Parser from a transition function.
//
// The function must honor the leaf contract: given an erroring state it
// returns that state unchanged; given a successful state it either
// advances past the units it consumed or fails at the position it stopped.
func New[T, A any](fn func(State[T, Erased]) State[T, A]) Parser[T, A] {
	return Parser[T, A]{fn: fn}
}

// Transform runs the parser on s.
// Panics if p is the zero Parser.
func (p Parser[T, A]) Transform(s State[T, Erased]) State[T, A] {
	if p.fn == nil {
		panic("kombi: zero Parser invoked")
	}
	return p.fn(s)
}

// Valid reports whether p wraps a transition function.
func (p Parser[T, A]) Valid() bool { return p.fn != nil }

// MapErr returns a parser that replaces the error of a failed run with f(err).
// Successful runs pass through unchanged.
func (p Parser[T, A]) MapErr(f func(*Error) *Error) Parser[T, A] {
	return New(func(s State[T, Erased]) State[T, A] {
		if s.IsError() {
			return Recast[A](s)
		}
		next := p.Transform(s)
		if !next.IsError() {
			return next
		}
		return Fail[T, A, A](next, f(next.err))
	})
}

// Map applies a pure function to the result of a successful run.
// The index is preserved and errors pass through unchanged.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return New(func(s State[T, Erased]) State[T, B] {
		next := p.Transform(s)
		if next.IsError() {
			return Recast[B](next)
		}
		return ReplaceResult(next, f(next.result))
	})
}

// Chain sequences p with the parser selected by its result (monadic bind).
// On success, f is called with the result and the parser it returns runs
// on the post-success state. On failure f is never called.
func Chain[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return New(func(s State[T, Erased]) State[T, B] {
		next := p.Transform(s)
		if next.IsError() {
			return Recast[B](next)
		}
		return f(next.result).Transform(next.Erase())
	})
}

// Then sequences two parsers, discarding the first result.
// Equivalent to Chain(p, func(A) Parser[T, B] { return q }) without the
// closure per run.
func Then[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return New(func(s State[T, Erased]) State[T, B] {
		next := p.Transform(s)
		if next.IsError() {
			return Recast[B](next)
		}
		return q.Transform(next.Erase())
	})
}

// Unit returns the trivial parser: it succeeds without consuming input and
// carries no meaningful result. It seeds chains that build their result
// purely through Chain steps.
func Unit[T any]() Parser[T, Erased] {
	return New(func(s State[T, Erased]) State[T, Erased] {
		if s.IsError() {
			return s
		}
		return ReplaceResult[T, Erased, Erased](s, nil)
	})
}

// Succeed returns a parser that always succeeds with a, consuming nothing.
func Succeed[T, A any](a A) Parser[T, A] {
	return New(func(s State[T, Erased]) State[T, A] {
		if s.IsError() {
			return Recast[A](s)
		}
		return ReplaceResult(s, a)
	})
}

// Reject returns a parser that always fails at the current index.
func Reject[T, A any](message string) Parser[T, A] {
	return New(func(s State[T, Erased]) State[T, A] {
		if s.IsError() {
			return Recast[A](s)
		}
		return Fail[T, Erased, A](s, NewError("reject", s.index, message))
	})
}

// Erase returns a view of p whose result is boxed as Erased.
// It lets parsers of different result types share a SequenceOf or Choice.
func Erase[T, A any](p Parser[T, A]) Parser[T, Erased] {
	return New(func(s State[T, Erased]) State[T, Erased] {
		return p.Transform(s).Erase()
	})
}
