// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package leaf

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"code.hybscloud.com/kombi"
)

// Text matchers work on byte input and produce the matched text.

// Str matches the literal lit.
func Str(lit string) kombi.Parser[byte, string] {
	want := []byte(lit)
	return kombi.New(func(s kombi.State[byte, kombi.Erased]) kombi.State[byte, string] {
		if s.IsError() {
			return kombi.Recast[string](s)
		}
		if !bytes.HasPrefix(s.Remaining(), want) {
			return kombi.Fail[byte, kombi.Erased, string](s,
				kombi.NewErrorf("str", s.Index(), "expected %q, got %s", lit, preview(s.Remaining(), len(want))))
		}
		return kombi.Advance(s, s.Index()+len(want), lit)
	})
}

// Char matches the single byte c.
func Char(c byte) kombi.Parser[byte, string] {
	return oneByte("char", func(b byte) bool { return b == c }, strconv.QuoteRune(rune(c)))
}

// AnyOf matches one byte contained in set.
func AnyOf(set string) kombi.Parser[byte, string] {
	return oneByte("anyOf", func(b byte) bool { return strings.IndexByte(set, b) >= 0 }, "one of "+strconv.Quote(set))
}

// Digit matches one ASCII digit.
func Digit() kombi.Parser[byte, string] {
	return oneByte("digit", isDigit, "digit")
}

// Digits matches one or more ASCII digits.
func Digits() kombi.Parser[byte, string] {
	return span("digits", 1, isDigit, "digits")
}

// Letter matches one ASCII letter.
func Letter() kombi.Parser[byte, string] {
	return oneByte("letter", isLetter, "letter")
}

// Letters matches one or more ASCII letters.
func Letters() kombi.Parser[byte, string] {
	return span("letters", 1, isLetter, "letters")
}

// Whitespace matches one or more spaces, tabs, or line breaks.
func Whitespace() kombi.Parser[byte, string] {
	return span("whitespace", 1, isSpace, "whitespace")
}

// OptionalWhitespace matches zero or more whitespace bytes. It never fails.
func OptionalWhitespace() kombi.Parser[byte, string] {
	return span("optionalWhitespace", 0, isSpace, "whitespace")
}

// Int matches an optionally signed decimal integer and converts it.
func Int() kombi.Parser[byte, int] {
	return kombi.New(func(s kombi.State[byte, kombi.Erased]) kombi.State[byte, int] {
		if s.IsError() {
			return kombi.Recast[int](s)
		}
		rest := s.Remaining()
		n := 0
		if n < len(rest) && (rest[n] == '-' || rest[n] == '+') {
			n++
		}
		start := n
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
		if n == start {
			return kombi.Fail[byte, kombi.Erased, int](s,
				kombi.NewErrorf("int", s.Index(), "expected integer, got %s", preview(rest, 1)))
		}
		v, err := strconv.Atoi(string(rest[:n]))
		if err != nil {
			return kombi.Fail[byte, kombi.Erased, int](s, kombi.NewError("int", s.Index(), err.Error()))
		}
		return kombi.Advance(s, s.Index()+n, v)
	})
}

// Take matches exactly n bytes, whatever they are.
func Take(n int) kombi.Parser[byte, string] {
	return kombi.Map(TakeTokens[byte](n), func(b []byte) string { return string(b) })
}

// Regex matches expr at the current position.
// The expression is anchored; a match must start at the current index.
// Panics if expr does not compile.
func Regex(expr string) kombi.Parser[byte, string] {
	re := regexp.MustCompile("^(?:" + expr + ")")
	return kombi.New(func(s kombi.State[byte, kombi.Erased]) kombi.State[byte, string] {
		if s.IsError() {
			return kombi.Recast[string](s)
		}
		loc := re.FindIndex(s.Remaining())
		if loc == nil {
			return kombi.Fail[byte, kombi.Erased, string](s,
				kombi.NewErrorf("regex", s.Index(), "expected match of %s", re.String()))
		}
		m := string(s.Remaining()[:loc[1]])
		return kombi.Advance(s, s.Index()+loc[1], m)
	})
}

// EndOfInput succeeds only when all input has been consumed.
func EndOfInput() kombi.Parser[byte, kombi.Erased] {
	return End[byte]()
}

func oneByte(name string, pred func(byte) bool, want string) kombi.Parser[byte, string] {
	return kombi.New(func(s kombi.State[byte, kombi.Erased]) kombi.State[byte, string] {
		if s.IsError() {
			return kombi.Recast[string](s)
		}
		rest := s.Remaining()
		if len(rest) == 0 || !pred(rest[0]) {
			return kombi.Fail[byte, kombi.Erased, string](s,
				kombi.NewErrorf(name, s.Index(), "expected %s, got %s", want, preview(rest, 1)))
		}
		return kombi.Advance(s, s.Index()+1, string(rest[:1]))
	})
}

func span(name string, min int, pred func(byte) bool, want string) kombi.Parser[byte, string] {
	return kombi.New(func(s kombi.State[byte, kombi.Erased]) kombi.State[byte, string] {
		if s.IsError() {
			return kombi.Recast[string](s)
		}
		rest := s.Remaining()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		if n < min {
			return kombi.Fail[byte, kombi.Erased, string](s,
				kombi.NewErrorf(name, s.Index(), "expected %s, got %s", want, preview(rest, 1)))
		}
		return kombi.Advance(s, s.Index()+n, string(rest[:n]))
	})
}

// preview quotes up to n bytes of rest for error messages.
func preview(rest []byte, n int) string {
	if len(rest) == 0 {
		return "end of input"
	}
	if n > len(rest) {
		n = len(rest)
	}
	return strconv.Quote(string(rest[:n]))
}

func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
func isLetter(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }
func isSpace(b byte) bool  { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
