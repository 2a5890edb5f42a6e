// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

// Join runs parsers in order, consuming joiner between each pair.
// Every parser must succeed; joiner results are dropped.
func Join[T, A, J any](parsers []Parser[T, A], joiner Parser[T, J]) Parser[T, []A] {
	return JoinMin(parsers, joiner, All)
}

// JoinMin is Join succeeding once at least min of parsers matched.
// Each parser after the first is paired with the joiner before it; a joiner
// whose parser fails is not consumed.
func JoinMin[T, A, J any](parsers []Parser[T, A], joiner Parser[T, J], min int) Parser[T, []A] {
	list := make([]Parser[T, A], len(parsers))
	for i, p := range parsers {
		if i == 0 {
			list[i] = p
			continue
		}
		list[i] = Then(joiner, p)
	}
	return SequenceOfMin(min, list...).MapErr(Wrap("join"))
}

// JoinWJR is Join keeping the joiner results: the result alternates parser
// and joiner results, as in [p0, j, p1, j, p2].
func JoinWJR[T, A any](parsers []Parser[T, A], joiner Parser[T, A]) Parser[T, []A] {
	return JoinWJRMin(parsers, joiner, All)
}

// JoinWJRMin is JoinWJR succeeding once at least min of parsers matched.
// Only parsers count toward min, never joiners. Entries for the joiner and
// parser of an unmatched pair are the zero value of A.
func JoinWJRMin[T, A any](parsers []Parser[T, A], joiner Parser[T, A], min int) Parser[T, []A] {
	units := make([]Parser[T, []A], len(parsers))
	for i, p := range parsers {
		if i == 0 {
			units[i] = Map(p, func(a A) []A { return []A{a} })
			continue
		}
		units[i] = SequenceOf(joiner, p)
	}
	flat := Map(SequenceOfMin(min, units...), func(groups [][]A) []A {
		out := make([]A, 0, 2*len(groups))
		for i, g := range groups {
			switch {
			case g != nil:
				out = append(out, g...)
			case i == 0:
				var zero A
				out = append(out, zero)
			default:
				var zero A
				out = append(out, zero, zero)
			}
		}
		return out
	})
	return flat.MapErr(Wrap("join"))
}
