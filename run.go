// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Match is the outcome of a successful Run.
type Match[A any] struct {
	// Value is the result produced by the parser.
	Value A

	// Consumed is the number of input units the parser consumed.
	Consumed int
}

// Run executes p against input from index 0.
// Returns the result and consumed length, or the error record of the
// failed parse. Run does not require the whole input to be consumed;
// compose with an end-of-input matcher for that.
func Run[T, A any](p Parser[T, A], input []T) (Match[A], error) {
	final := RunState(p, NewState(input))
	if final.IsError() {
		return Match[A]{}, final.err
	}
	return Match[A]{Value: final.result, Consumed: final.index}, nil
}

// RunState executes p against an explicit initial state and returns the
// final state unchanged.
func RunState[T, A any](p Parser[T, A], s State[T, Erased]) State[T, A] {
	return p.Transform(s)
}
