// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/monad"
)

// --- Option combinators ---

func TestMapOption(t *testing.T) {
	o := monad.MapOption(monad.Some(42), strconv.Itoa)
	if got := o.Unwrap(); got != "42" {
		t.Fatalf("got %q, want 42", got)
	}
}

func TestMapOptionToNil(t *testing.T) {
	o := monad.MapOption(monad.Some(1), func(int) *int { return nil })
	if !o.IsNone() {
		t.Fatalf("got %v, want None", o.Status())
	}
}

func TestMapOptionNoneSameType(t *testing.T) {
	none := monad.None[int]()
	if monad.MapOption(none, func(v int) int { return v + 1 }) != none {
		t.Fatal("same-type MapOption on None must return the same instance")
	}
}

func TestMapOptionNoneTypeChange(t *testing.T) {
	o := monad.MapOption(monad.None[int](), strconv.Itoa)
	if !o.IsNone() {
		t.Fatalf("got %v, want None", o.Status())
	}
}

func TestFlatMapOption(t *testing.T) {
	parse := func(s string) *monad.Option[int] {
		return monad.OptionOf(func() (int, bool) {
			n, err := strconv.Atoi(s)
			return n, err == nil
		})
	}
	if got := monad.FlatMapOption(monad.Some("12"), parse).Unwrap(); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
	if o := monad.FlatMapOption(monad.Some("x"), parse); !o.IsNone() {
		t.Fatalf("got %v, want None", o)
	}
	if o := monad.FlatMapOption(monad.Some("x"), func(string) *monad.Option[int] { return nil }); !o.IsNone() {
		t.Fatalf("nil Option: got %v, want None", o)
	}
}

func TestOrElseOption(t *testing.T) {
	fallback := monad.Some(5)
	if monad.OrElseOption(monad.None[int](), func() *monad.Option[int] { return fallback }) != fallback {
		t.Fatal("OrElseOption on None must return the fallback")
	}
	some := monad.Some(1)
	if monad.OrElseOption(some, func() *monad.Option[int] { return fallback }) != some {
		t.Fatal("OrElseOption on Some must return the receiver")
	}
}

func TestFilterOption(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	four := monad.Some(4)
	if monad.FilterOption(four, even) != four {
		t.Fatal("kept Option must be the receiver")
	}
	if o := monad.FilterOption(monad.Some(3), even); !o.IsNone() {
		t.Fatalf("got %v, want None", o)
	}
}

// --- Result combinators ---

func TestMapResult(t *testing.T) {
	r := monad.MapResult(monad.Ok(7), strconv.Itoa)
	if v, ok := r.Get(); !ok || v != "7" {
		t.Fatalf("got %v, want Ok(7)", r)
	}
}

func TestMapResultPanic(t *testing.T) {
	r := monad.MapResult(monad.Ok(0), func(v int) int { return 1 / v })
	if !r.IsErr() {
		t.Fatalf("got %v, want Err", r.Status())
	}
	if _, ok := r.Unwrap().(error); !ok {
		t.Fatalf("got %T, want runtime error", r.Unwrap())
	}
}

func TestMapResultErrPassthrough(t *testing.T) {
	e := monad.Err[int]("e")
	if monad.MapResult(e, func(v int) int { return v }) != e {
		t.Fatal("same-type MapResult on Err must return the same instance")
	}
	s := monad.MapResult(e, strconv.Itoa)
	if p, ok := s.GetErr(); !ok || p != "e" {
		t.Fatalf("got %v, want Err(e)", s)
	}
}

func TestFlatMapResult(t *testing.T) {
	parse := func(s string) *monad.Result[int] {
		return monad.NewResult(func() (int, error) { return strconv.Atoi(s) })
	}
	if got := monad.FlatMapResult(monad.Ok("12"), parse).Unwrap(); got != 12 {
		t.Fatalf("got %v, want 12", got)
	}
	r := monad.FlatMapResult(monad.Ok("x"), parse)
	var numErr *strconv.NumError
	if err, _ := r.GetErr(); !errors.As(err.(error), &numErr) {
		t.Fatalf("got %v, want *strconv.NumError", r)
	}
	if p := monad.FlatMapResult(monad.Ok("x"), func(string) *monad.Result[int] { panic("f") }); p.Unwrap() != "f" {
		t.Fatalf("got %v, want Err(f)", p)
	}
	n := monad.FlatMapResult(monad.Ok("x"), func(string) *monad.Result[int] { return nil })
	if err, _ := n.GetErr(); err != monad.ErrUnresolved {
		t.Fatalf("got %v, want ErrUnresolved", n)
	}
}

func TestMapErrResult(t *testing.T) {
	r := monad.MapErrResult(monad.Err[int]("low"), func(e any) any { return e.(string) + "!" })
	if r.Unwrap() != "low!" {
		t.Fatalf("got %v, want Err(low!)", r)
	}
	ok := monad.Ok(1)
	if monad.MapErrResult(ok, func(e any) any { return e }) != ok {
		t.Fatal("MapErrResult on Ok must return the receiver")
	}
}

func TestOrElseResult(t *testing.T) {
	r := monad.OrElseResult(monad.Err[int]("e"), func(any) *monad.Result[int] { return monad.Ok(3) })
	if got := r.Unwrap(); got != 3 {
		t.Fatalf("got %v, want 3", got)
	}
	p := monad.OrElseResult(monad.Err[int]("e"), func(e any) *monad.Result[int] { panic(e) })
	if !p.IsErr() || p.Unwrap() != "e" {
		t.Fatalf("got %v, want Err(e)", p)
	}
}
