// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Erased represents a type-erased result in a threaded parse state.
// Parsers accept states whose previous result is erased, since a
// transition function never inspects the result it was handed.
// Concrete types are recovered via type assertions where needed.
type Erased = any

// State is an immutable snapshot of parsing progress.
// State[T, A] holds the input of T units, the current position, and either
// the result A of the last successful step or the error that stopped it.
//
// Every operation returns a new State; the input slice is shared by all
// states derived from it and is never written.
type State[T, A any] struct {
	input  []T
	index  int
	result A
	err    *Error
}

// NewState creates the initial state for input, positioned at index 0.
func NewState[T any](input []T) State[T, Erased] {
	return State[T, Erased]{input: input}
}

// Input returns the full input sequence.
func (s State[T, A]) Input() []T { return s.input }

// Index returns the current position in the input.
func (s State[T, A]) Index() int { return s.index }

// Result returns the result of the last successful step.
// It is the zero value when the state is erroring.
func (s State[T, A]) Result() A { return s.result }

// Err returns the error record, or nil for a successful state.
func (s State[T, A]) Err() *Error { return s.err }

// IsError reports whether the state is erroring.
// Combinators check this before doing any work on a state they receive.
func (s State[T, A]) IsError() bool { return s.err != nil }

// Remaining returns the unconsumed tail of the input.
func (s State[T, A]) Remaining() []T {
	if s.index >= len(s.input) {
		return nil
	}
	return s.input[s.index:]
}

// AtEnd reports whether every input unit has been consumed.
func (s State[T, A]) AtEnd() bool { return s.index >= len(s.input) }

// Erase returns the same state with its result boxed as Erased.
func (s State[T, A]) Erase() State[T, Erased] {
	if s.err != nil {
		return State[T, Erased]{input: s.input, index: s.index, err: s.err}
	}
	return State[T, Erased]{input: s.input, index: s.index, result: s.result}
}

// Advance returns a successful state at index carrying result b.
// Any error on s is cleared.
func Advance[T, A, B any](s State[T, A], index int, b B) State[T, B] {
	return State[T, B]{input: s.input, index: index, result: b}
}

// Fail returns an erroring state at the position of s.
func Fail[T, A, B any](s State[T, A], e *Error) State[T, B] {
	return State[T, B]{input: s.input, index: s.index, err: e}
}

// FailAt returns an erroring state positioned at index, for matchers that
// consumed input before detecting the failure.
func FailAt[T, A, B any](s State[T, A], index int, e *Error) State[T, B] {
	return State[T, B]{input: s.input, index: index, err: e}
}

// ReplaceResult returns a successful state at the index of s carrying b.
// The error of s, if any, is cleared. Repetition combinators use it to
// finalize a loop whose terminating attempt failed.
func ReplaceResult[T, A, B any](s State[T, A], b B) State[T, B] {
	return State[T, B]{input: s.input, index: s.index, result: b}
}

// Recast returns s with its result type changed to B.
// The result is dropped; index and error are kept. Used to hand an
// erroring state back unchanged from a parser of a different result type.
func Recast[B, T, A any](s State[T, A]) State[T, B] {
	return State[T, B]{input: s.input, index: s.index, err: s.err}
}
