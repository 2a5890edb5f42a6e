// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Contextual chaining.
// A generator describes a parse as straight-line code: each time it is
// resumed it either yields the next Parser and suspends, or completes with
// a final value. The driver runs the yielded Parser and resumes the
// generator with its result. Suspension is logical; everything runs
// synchronously and step N is fully resolved before step N+1 begins.

// Step is the outcome of resuming a Generator: either a Parser to run next
// (Yield) or the final result (Done). The zero Step is neither and is
// rejected by the driver.
type Step[T, R any] struct {
	next  Parser[T, Erased]
	value R
	done  bool
}

// Yield suspends the generator on p. The generator is resumed with the
// result of p once it succeeds.
func Yield[R, T, A any](p Parser[T, A]) Step[T, R] {
	if !p.Valid() {
		return Step[T, R]{}
	}
	return Step[T, R]{next: Erase(p)}
}

// Done completes the generator with r.
func Done[T, R any](r R) Step[T, R] {
	return Step[T, R]{value: r, done: true}
}

// Generator is a resumable step function driven by Contextual.
// Resume receives the result of the previously yielded Parser, or nil on
// the first call.
type Generator[T, R any] interface {
	Resume(prev Erased) Step[T, R]
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc[T, R any] func(prev Erased) Step[T, R]

// Resume implements Generator.
func (f GeneratorFunc[T, R]) Resume(prev Erased) Step[T, R] { return f(prev) }

// Contextual builds a Parser from a generator.
// start is called once per invocation of the returned Parser, so every run
// gets a fresh generator. A failure of any yielded Parser aborts the chain;
// its error is re-stamped "contextual".
//
// Yielding a zero Parser is a programming error and panics.
//
// Example:
//
//	p := Contextual(func() Generator[byte, string] {
//		var n int
//		return Steps(
//			func(Erased) Step[byte, string] { return Yield[string](leaf.Int()) },
//			func(prev Erased) Step[byte, string] { n = prev.(int); return Yield[string](leaf.Take(n)) },
//			func(prev Erased) Step[byte, string] { return Done[byte](prev.(string)) },
//		)
//	})
func Contextual[T, R any](start func() Generator[T, R]) Parser[T, R] {
	return Chain(Unit[T](), func(Erased) Parser[T, R] {
		g := start()
		return drive(g, g.Resume(nil))
	}).MapErr(Wrap("contextual"))
}

// drive turns one step into a Parser: Done becomes Succeed, Yield becomes a
// Chain whose continuation resumes the generator and drives the next step.
func drive[T, R any](g Generator[T, R], step Step[T, R]) Parser[T, R] {
	if step.done {
		return Succeed[T](step.value)
	}
	if !step.next.Valid() {
		panic("kombi: contextual generator yielded a zero Parser")
	}
	return Chain(step.next, func(v Erased) Parser[T, R] {
		return drive(g, g.Resume(v))
	})
}

// Steps returns a Generator running fns in order: the i-th resume calls
// fns[i] with the previous result. The last function must complete with
// Done; resuming past it panics.
func Steps[T, R any](fns ...func(prev Erased) Step[T, R]) Generator[T, R] {
	i := 0
	return GeneratorFunc[T, R](func(prev Erased) Step[T, R] {
		if i >= len(fns) {
			panic("kombi: generator resumed after its last step")
		}
		f := fns[i]
		i++
		return f(prev)
	})
}

// StateStep is the outcome of resuming a StateGenerator.
type StateStep[T, R any] struct {
	next    Parser[T, Erased]
	from    State[T, Erased]
	hasFrom bool
	final   State[T, R]
	done    bool
}

// StateYield suspends on p, which runs on the most recent state.
func StateYield[R, T, A any](p Parser[T, A]) StateStep[T, R] {
	if !p.Valid() {
		return StateStep[T, R]{}
	}
	return StateStep[T, R]{next: Erase(p)}
}

// StateYieldFrom suspends on p, which runs on s instead of the most recent
// state. Generators use it to backtrack or to recover from a failure.
func StateYieldFrom[R, T, A any](s State[T, Erased], p Parser[T, A]) StateStep[T, R] {
	if !p.Valid() {
		return StateStep[T, R]{}
	}
	return StateStep[T, R]{next: Erase(p), from: s, hasFrom: true}
}

// StateDone completes the generator with the final state s.
func StateDone[T, R any](s State[T, R]) StateStep[T, R] {
	return StateStep[T, R]{final: s, done: true}
}

// StateGenerator is a resumable step function driven by StateContextual.
// Resume receives the full state produced by the previously yielded Parser,
// erroring or not; the first call receives the incoming state.
type StateGenerator[T, R any] interface {
	Resume(prev State[T, Erased]) StateStep[T, R]
}

// StateGeneratorFunc adapts a function to the StateGenerator interface.
type StateGeneratorFunc[T, R any] func(prev State[T, Erased]) StateStep[T, R]

// Resume implements StateGenerator.
func (f StateGeneratorFunc[T, R]) Resume(prev State[T, Erased]) StateStep[T, R] {
	return f(prev)
}

// StateContextual builds a Parser from a generator that sees whole states.
// Unlike Contextual, a failing step does not abort the chain: the generator
// receives the erroring state and decides how to continue. The final state
// is the one passed to StateDone, returned as is.
func StateContextual[T, R any](start func() StateGenerator[T, R]) Parser[T, R] {
	return New(func(s State[T, Erased]) State[T, R] {
		if s.IsError() {
			return Recast[R](s)
		}
		g := start()
		cur := s
		step := g.Resume(cur)
		for !step.done {
			if !step.next.Valid() {
				panic("kombi: state generator yielded a zero Parser")
			}
			from := cur
			if step.hasFrom {
				from = step.from
			}
			cur = step.next.Transform(from)
			step = g.Resume(cur)
		}
		return step.final
	})
}
