// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi_test

import (
	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func num() kombi.Parser[byte, kombi.Erased] { return kombi.Erase(leaf.Int()) }

func TestJoinDropsJoiner(t *testing.T) {
	m := run(t, kombi.Join([]kombi.Parser[byte, int]{leaf.Int(), leaf.Int()}, leaf.Char(',')), "1,2")
	if diff := cmp.Diff([]int{1, 2}, m.Value); diff != "" {
		t.Fatalf("value: -want +got\n%s", diff)
	}
	if m.Consumed != 3 {
		t.Fatalf("consumed %d, want 3", m.Consumed)
	}
}

func TestJoinWJRKeepsJoiner(t *testing.T) {
	m := run(t, kombi.JoinWJR([]kombi.Parser[byte, kombi.Erased]{num(), num()}, kombi.Erase(leaf.Char(','))), "1,2")
	if diff := cmp.Diff([]kombi.Erased{1, ",", 2}, m.Value); diff != "" {
		t.Fatalf("value: -want +got\n%s", diff)
	}
	if m.Consumed != 3 {
		t.Fatalf("consumed %d, want 3", m.Consumed)
	}
}

func TestJoinFailureRestamped(t *testing.T) {
	e := runErr(t, kombi.Join([]kombi.Parser[byte, int]{leaf.Int(), leaf.Int()}, leaf.Char(',')), "1;2")
	if diff := cmp.Diff([]string{"join", "sequenceOf", "char"}, e.Trail()); diff != "" {
		t.Fatalf("trail: -want +got\n%s", diff)
	}
	if e.Index != 1 {
		t.Fatalf("index %d, want 1", e.Index)
	}
}

func TestJoinMinPartial(t *testing.T) {
	parsers := []kombi.Parser[byte, int]{leaf.Int(), leaf.Int(), leaf.Int()}
	m := run(t, kombi.JoinMin(parsers, leaf.Char(','), 2), "1,2,x")
	if diff := cmp.Diff([]int{1, 2, 0}, m.Value); diff != "" {
		t.Fatalf("value: -want +got\n%s", diff)
	}
	// The joiner before the failed parser is not consumed.
	if m.Consumed != 3 {
		t.Fatalf("consumed %d, want 3", m.Consumed)
	}
}

func TestJoinWJRMinCountsMainParsers(t *testing.T) {
	parsers := []kombi.Parser[byte, kombi.Erased]{num(), num(), num()}
	comma := kombi.Erase(leaf.Char(','))

	m := run(t, kombi.JoinWJRMin(parsers, comma, 2), "1,2;")
	if diff := cmp.Diff([]kombi.Erased{1, ",", 2, nil, nil}, m.Value); diff != "" {
		t.Fatalf("value: -want +got\n%s", diff)
	}
	if m.Consumed != 3 {
		t.Fatalf("consumed %d, want 3", m.Consumed)
	}

	e := runErr(t, kombi.JoinWJRMin(parsers, comma, 3), "1,2;")
	if e.Combinator != "join" || e.Matched != 2 || e.Required != 3 {
		t.Fatalf("got %s matched %d of %d, want join 2 of 3", e.Combinator, e.Matched, e.Required)
	}
}

func TestJoinWJRMinDanglingJoiner(t *testing.T) {
	// "1," has a joiner without a following number: it counts as one match.
	parsers := []kombi.Parser[byte, kombi.Erased]{num(), num()}
	m := run(t, kombi.JoinWJRMin(parsers, kombi.Erase(leaf.Char(',')), 1), "1,")
	if diff := cmp.Diff([]kombi.Erased{1, nil, nil}, m.Value); diff != "" {
		t.Fatalf("value: -want +got\n%s", diff)
	}
	if m.Consumed != 1 {
		t.Fatalf("consumed %d, want 1", m.Consumed)
	}
}
