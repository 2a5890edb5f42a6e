// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi_test

import (
	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
	"errors"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := kombi.NewErrorf("str", 4, "expected %q", "x")
	if got, want := e.Error(), `str: expected "x" at index 4`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	counted := &kombi.Error{Message: "not enough matches", Index: 2, Combinator: "many", Matched: 1, Required: 3}
	if got, want := counted.Error(), "many: not enough matches at index 2 (matched 1 of 3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewErrorKeepsMessageVerbatim(t *testing.T) {
	e := kombi.NewError("test", 0, "100% literal")
	if e.Message != "100% literal" {
		t.Fatalf("got %q, want %q", e.Message, "100% literal")
	}
}

func TestNewErrorf(t *testing.T) {
	e := kombi.NewErrorf("take", 5, "expected %d units, %d left", 3, 1)
	if e.Message != "expected 3 units, 1 left" || e.Index != 5 || e.Combinator != "take" {
		t.Fatalf("got %+v", e)
	}
}

func TestWrapPreservesInner(t *testing.T) {
	inner := kombi.NewError("char", 3, "expected ')'")
	outer := kombi.Wrap("between")(inner)

	if outer.Combinator != "between" || outer.Message != inner.Message || outer.Index != inner.Index {
		t.Fatalf("got %v, want between wrapping %v", outer, inner)
	}
	if outer.Cause != inner || outer.Root() != inner {
		t.Fatal("inner error is not the cause and root")
	}
	if diff := cmp.Diff([]string{"between", "char"}, outer.Trail()); diff != "" {
		t.Fatalf("trail: -want +got\n%s", diff)
	}
	if !errors.Is(outer, inner) {
		t.Fatal("errors.Is(outer, inner) = false")
	}
}

func TestErrorTrailThroughCombinators(t *testing.T) {
	p := kombi.Between[[]int](leaf.Char('['), leaf.Char(']'))(
		kombi.Join([]kombi.Parser[byte, int]{leaf.Int(), leaf.Int()}, leaf.Char(',')),
	)
	e := runErr(t, p, "[1,x]")
	if diff := cmp.Diff([]string{"between", "sequenceOf", "join", "sequenceOf", "int"}, e.Trail()); diff != "" {
		t.Fatalf("trail: -want +got\n%s", diff)
	}
	if e.Index != 3 || e.Root().Combinator != "int" {
		t.Fatalf("got root %s at %d, want int at 3", e.Root().Combinator, e.Index)
	}
}
