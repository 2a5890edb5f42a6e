// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package leaf provides leaf matchers: parsers that inspect raw input
// directly instead of composing other parsers.
//
// Every matcher follows the leaf contract of package kombi: given an
// erroring state it returns it unchanged; otherwise it advances past the
// units it consumed, or fails at the current index.
package leaf

import (
	"fmt"

	"code.hybscloud.com/kombi"
)

// Satisfy matches one unit for which pred holds. name labels the error.
func Satisfy[T any](name string, pred func(T) bool) kombi.Parser[T, T] {
	return kombi.New(func(s kombi.State[T, kombi.Erased]) kombi.State[T, T] {
		if s.IsError() {
			return kombi.Recast[T](s)
		}
		rest := s.Remaining()
		if len(rest) == 0 {
			return kombi.Fail[T, kombi.Erased, T](s,
				kombi.NewError(name, s.Index(), "unexpected end of input"))
		}
		if !pred(rest[0]) {
			return kombi.Fail[T, kombi.Erased, T](s,
				kombi.NewErrorf(name, s.Index(), "unexpected %v", rest[0]))
		}
		return kombi.Advance(s, s.Index()+1, rest[0])
	})
}

// Token matches one unit equal to want.
func Token[T comparable](want T) kombi.Parser[T, T] {
	return Satisfy(fmt.Sprintf("token %v", want), func(t T) bool { return t == want })
}

// TakeTokens matches exactly n units.
// The result aliases the input; callers must not modify it.
func TakeTokens[T any](n int) kombi.Parser[T, []T] {
	return kombi.New(func(s kombi.State[T, kombi.Erased]) kombi.State[T, []T] {
		if s.IsError() {
			return kombi.Recast[[]T](s)
		}
		if n < 0 {
			return kombi.Fail[T, kombi.Erased, []T](s,
				kombi.NewErrorf("take", s.Index(), "negative length %d", n))
		}
		rest := s.Remaining()
		if len(rest) < n {
			return kombi.Fail[T, kombi.Erased, []T](s,
				kombi.NewErrorf("take", s.Index(), "expected %d units, %d left", n, len(rest)))
		}
		return kombi.Advance(s, s.Index()+n, rest[:n:n])
	})
}

// End succeeds without consuming when the input is exhausted.
func End[T any]() kombi.Parser[T, kombi.Erased] {
	return kombi.New(func(s kombi.State[T, kombi.Erased]) kombi.State[T, kombi.Erased] {
		if s.IsError() {
			return s
		}
		if !s.AtEnd() {
			return kombi.Fail[T, kombi.Erased, kombi.Erased](s,
				kombi.NewErrorf("endOfInput", s.Index(), "expected end of input, %d units left", len(s.Remaining())))
		}
		return kombi.ReplaceResult[T, kombi.Erased, kombi.Erased](s, nil)
	})
}
