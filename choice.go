// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Choice tries each parser against the original state and returns the state
// of the first one that succeeds, unchanged.
//
// Attempts are independent: input consumed by a failing alternative is not
// seen by the next one. When no alternative matches, Choice fails at the
// original index with a single aggregate error; the failure of every branch
// is kept in Error.Alternatives.
func Choice[T, A any](parsers ...Parser[T, A]) Parser[T, A] {
	return New(func(s State[T, Erased]) State[T, A] {
		if s.IsError() {
			return Recast[A](s)
		}
		var alts []*Error
		for _, p := range parsers {
			out := p.Transform(s)
			if !out.IsError() {
				return out
			}
			alts = append(alts, out.err)
		}
		return Fail[T, Erased, A](s, &Error{
			Message:      "no alternative matched",
			Index:        s.index,
			Combinator:   "choice",
			Alternatives: alts,
		})
	})
}

// Optional tries p and succeeds with the zero value of A, consuming
// nothing, when p fails.
func Optional[T, A any](p Parser[T, A]) Parser[T, A] {
	var zero A
	return Choice(p, Succeed[T](zero))
}
