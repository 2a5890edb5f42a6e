// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kombi provides parser combinators in Go.
//
// A grammar is built once from small composable parsers and invoked any
// number of times. There is no grammar description language and no code
// generation: every rule is a Go value. Input is any sequence of units
// ([]byte for text, or caller-defined tokens) addressable by position.
//
// # Parse State
//
// [State] is an immutable snapshot of progress: the input, the current
// index, and either the result of the last successful step or an [*Error].
// Every operation returns a new state:
//
//   - [NewState]: Initial state at index 0
//   - [Advance]: Successful state at a new index with a new result
//   - [Fail], [FailAt]: Erroring state
//   - [ReplaceResult]: Successful state at the same index with a new result
//   - [Recast]: Erroring state handed back under another result type
//
// Short-circuit rule: every parser given an erroring state returns it
// unchanged. Combinators rely on this to stop consuming after a failure.
//
// # Parser Core
//
// [Parser] wraps a single state-transition function.
//
//   - [New]: Create a parser from a transition function
//   - [Map]: Transform the result of a successful run
//   - [Parser.MapErr]: Transform the error of a failed run
//   - [Chain]: Dependent sequencing (monadic bind)
//   - [Then]: Sequencing, discarding the first result
//   - [Unit]: Trivial parser; seed of contextual chains
//   - [Succeed]: Always succeed with a value
//   - [Reject]: Always fail
//   - [Erase]: Box the result as [Erased]
//
// # Combinators
//
//   - [SequenceOf], [SequenceOfMin]: Threaded sequencing, strict or partial
//   - [Choice], [Optional]: Independent alternatives
//   - [Many], [ManyMin]: Repetition
//   - [Between], [Enclosed]: Delimited content
//   - [Join], [JoinMin], [JoinWJR], [JoinWJRMin]: Fixed lists with separators
//   - [ManyJoin], [ManyJoinMin], [ManyJoinWJR], [ManyJoinWJRMin]: Repeated
//     matches with separators
//
// The WJR variants keep the joiner results interleaved in the output.
//
// # Contextual Chaining
//
// [Contextual] drives a [Generator] whose [Step] is either [Yield] of the
// next parser or [Done] with the final value. Each yielded parser sees the
// input left by the previous one and the generator sees its result, so
// later steps can depend on earlier ones. [StateContextual] hands the
// generator whole states instead, for recovery and backtracking.
//
// # Recursion
//
// Recursive rules go through an indirection cell rather than a cyclic
// parser graph: [Ref] is assigned once after construction, and [Lazy]
// builds a rule on first use.
//
// # Errors
//
// Parse failures are data. An [*Error] records the message, the index,
// the combinator that raised or re-wrapped it, match counters, and the
// wrapped Cause; [Error.Trail] lists the combinators that gave up.
// Programming errors, such as invoking a zero Parser or yielding one from a
// generator, panic.
//
// # Example
//
//	digits := leaf.Digits()
//	comma := leaf.Char(',')
//	list := kombi.ManyJoinMin(digits, comma, 1)
//
//	m, err := kombi.Run(list, []byte("1,22,333"))
//	// m.Value == []string{"1", "22", "333"}, m.Consumed == 8, err == nil
package kombi
