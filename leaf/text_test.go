// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package leaf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
)

func TestTextMatchers(t *testing.T) {
	tests := []struct {
		name     string
		p        kombi.Parser[byte, string]
		in       string
		want     string
		consumed int
	}{
		{"str", leaf.Str("let"), "let x", "let", 3},
		{"char", leaf.Char('('), "(x", "(", 1},
		{"anyOf", leaf.AnyOf("+-"), "-1", "-", 1},
		{"digit", leaf.Digit(), "42", "4", 1},
		{"digits", leaf.Digits(), "42x", "42", 2},
		{"letter", leaf.Letter(), "ab", "a", 1},
		{"letters", leaf.Letters(), "abC1", "abC", 3},
		{"whitespace", leaf.Whitespace(), " \t\nx", " \t\n", 3},
		{"optionalWhitespace", leaf.OptionalWhitespace(), "x", "", 0},
		{"take", leaf.Take(2), "abc", "ab", 2},
		{"takeZero", leaf.Take(0), "", "", 0},
		{"regex", leaf.Regex(`[a-z]+[0-9]`), "ab1c", "ab1", 3},
		{"regexAlternation", leaf.Regex(`x|b`), "ab", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := kombi.Run(tt.p, []byte(tt.in))
			if tt.consumed < 0 {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Value)
			assert.Equal(t, tt.consumed, m.Consumed)
		})
	}
}

func TestTextMatcherFailures(t *testing.T) {
	tests := []struct {
		name       string
		p          kombi.Parser[byte, string]
		in         string
		combinator string
		message    string
	}{
		{"str", leaf.Str("let"), "lex", "str", `expected "let", got "lex"`},
		{"strShort", leaf.Str("let"), "", "str", `expected "let", got end of input`},
		{"char", leaf.Char('('), "x", "char", `expected '(', got "x"`},
		{"digits", leaf.Digits(), "x1", "digits", `expected digits, got "x"`},
		{"whitespace", leaf.Whitespace(), "x", "whitespace", `expected whitespace, got "x"`},
		{"take", leaf.Take(3), "ab", "take", "expected 3 units, 2 left"},
		{"regex", leaf.Regex(`[0-9]`), "a", "regex", "expected match of ^(?:[0-9])"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kombi.Run(tt.p, []byte(tt.in))
			var perr *kombi.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.combinator, perr.Combinator)
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, 0, perr.Index)
		})
	}
}

func TestRegexAnchoredAtIndex(t *testing.T) {
	// "b1" occurs later in the input but not at the current position.
	_, err := kombi.Run(leaf.Regex(`b[0-9]`), []byte("ab1"))
	assert.Error(t, err)

	p := kombi.Then(leaf.Char('a'), leaf.Regex(`b[0-9]`))
	m, err := kombi.Run(p, []byte("ab1"))
	require.NoError(t, err)
	assert.Equal(t, "b1", m.Value)
}

func TestInt(t *testing.T) {
	tests := []struct {
		in       string
		want     int
		consumed int
	}{
		{"42", 42, 2},
		{"-7x", -7, 2},
		{"+3", 3, 2},
		{"007", 7, 3},
	}
	for _, tt := range tests {
		m, err := kombi.Run(leaf.Int(), []byte(tt.in))
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, m.Value, tt.in)
		assert.Equal(t, tt.consumed, m.Consumed, tt.in)
	}

	for _, in := range []string{"", "-", "x1"} {
		_, err := kombi.Run(leaf.Int(), []byte(in))
		assert.Error(t, err, in)
	}
}

func TestEndOfInput(t *testing.T) {
	p := kombi.Then(leaf.Str("ab"), leaf.EndOfInput())
	_, err := kombi.Run(p, []byte("ab"))
	assert.NoError(t, err)

	_, err = kombi.Run(p, []byte("abc"))
	var perr *kombi.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "endOfInput", perr.Combinator)
	assert.Equal(t, 2, perr.Index)
}
