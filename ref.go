// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

import (
	"sync"
	"sync/atomic"
)

// Ref is an indirection cell for recursive grammars.
// A grammar that refers to itself takes Ref.Parser() before the rule is
// built, and assigns the finished rule with Set afterwards. The parser tree
// stays acyclic: the cycle goes through the cell, resolved at run time.
//
// Ref is one-shot: Set may be called at most once.
type Ref[T, A any] struct {
	p atomic.Pointer[Parser[T, A]]
}

// NewRef creates an unset Ref.
func NewRef[T, A any]() *Ref[T, A] {
	return &Ref[T, A]{}
}

// Set assigns the parser the cell refers to.
// Panics if the cell was already set or p is the zero Parser.
func (r *Ref[T, A]) Set(p Parser[T, A]) {
	if !p.Valid() {
		panic("kombi: ref set to a zero Parser")
	}
	if !r.p.CompareAndSwap(nil, &p) {
		panic("kombi: ref set twice")
	}
}

// TrySet assigns p if the cell is unset.
// Returns false if it was already set.
func (r *Ref[T, A]) TrySet(p Parser[T, A]) bool {
	if !p.Valid() {
		return false
	}
	return r.p.CompareAndSwap(nil, &p)
}

// IsSet reports whether Set has been called.
func (r *Ref[T, A]) IsSet() bool { return r.p.Load() != nil }

// Parser returns a parser that runs the parser stored in the cell.
// The cell is read on every invocation; invoking before Set panics.
func (r *Ref[T, A]) Parser() Parser[T, A] {
	return New(func(s State[T, Erased]) State[T, A] {
		p := r.p.Load()
		if p == nil {
			panic("kombi: ref used before set")
		}
		return p.Transform(s)
	})
}

// Lazy returns a parser built by build on first invocation.
// build runs at most once, even under concurrent invocation.
func Lazy[T, A any](build func() Parser[T, A]) Parser[T, A] {
	get := sync.OnceValue(build)
	return New(func(s State[T, Erased]) State[T, A] {
		return get().Transform(s)
	})
}
