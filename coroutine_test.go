// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"testing"

	"code.hybscloud.com/monad"
)

func TestCoroutineStepwise(t *testing.T) {
	var trace []string
	co := monad.NewCoroutine(func(await monad.Await[string, int]) {
		trace = append(trace, "start")
		a := await("first")
		trace = append(trace, "got a")
		b := await("second")
		if a != 1 || b != 2 {
			t.Errorf("got (%d, %d), want (1, 2)", a, b)
		}
		trace = append(trace, "end")
	})
	if len(trace) != 0 {
		t.Fatal("body ran before the first Advance")
	}

	step, done := co.Advance(100)
	if done || step != "first" {
		t.Fatalf("got (%q, %v), want (first, false)", step, done)
	}
	if len(trace) != 1 {
		t.Fatalf("trace %v, want [start]", trace)
	}

	step, done = co.Advance(1)
	if done || step != "second" {
		t.Fatalf("got (%q, %v), want (second, false)", step, done)
	}

	step, done = co.Advance(2)
	if !done || step != "" {
		t.Fatalf("got (%q, %v), want (\"\", true)", step, done)
	}
	if !co.Done() {
		t.Fatal("Done() = false after completion")
	}
	if len(trace) != 3 {
		t.Fatalf("trace %v, want 3 entries", trace)
	}
}

func TestCoroutineAdvanceAfterDone(t *testing.T) {
	runs := 0
	co := monad.NewCoroutine(func(await monad.Await[int, int]) { runs++ })
	if _, done := co.Advance(0); !done {
		t.Fatal("expected completion")
	}
	if _, done := co.Advance(0); !done {
		t.Fatal("expected finished after completion")
	}
	if _, done := co.Raise("late"); !done {
		t.Fatal("expected finished on Raise after completion")
	}
	if runs != 1 {
		t.Fatalf("body ran %d times, want 1", runs)
	}
}

func TestCoroutineRaiseRecovered(t *testing.T) {
	co := monad.NewCoroutine(func(await monad.Await[int, int]) {
		func() {
			defer func() {
				if r := recover(); r != "bad" {
					t.Errorf("got %v, want bad", r)
				}
			}()
			await(1)
		}()
		await(2)
	})
	if step, _ := co.Advance(0); step != 1 {
		t.Fatalf("got %d, want 1", step)
	}
	step, done := co.Raise("bad")
	if done || step != 2 {
		t.Fatalf("got (%d, %v), want (2, false)", step, done)
	}
	if _, done := co.Advance(0); !done {
		t.Fatal("expected completion")
	}
}

func TestCoroutineRaiseUnrecovered(t *testing.T) {
	co := monad.NewCoroutine(func(await monad.Await[int, int]) {
		await(1)
	})
	co.Advance(0)
	func() {
		defer func() {
			if r := recover(); r != 7 {
				t.Fatalf("got %v, want 7", r)
			}
		}()
		co.Raise(7)
	}()
	if !co.Done() {
		t.Fatal("Done() = false after the body panicked")
	}
	if _, done := co.Advance(0); !done {
		t.Fatal("expected finished")
	}
}

func TestCoroutineRaiseBeforeStart(t *testing.T) {
	ran := false
	co := monad.NewCoroutine(func(await monad.Await[int, int]) { ran = true })
	func() {
		defer func() {
			if r := recover(); r != "early" {
				t.Fatalf("got %v, want early", r)
			}
		}()
		co.Raise("early")
	}()
	if ran {
		t.Fatal("body ran after Raise before start")
	}
	if !co.Done() {
		t.Fatal("Done() = false")
	}
}

func TestCoroutineReentrantResume(t *testing.T) {
	var co *monad.Coroutine[int, int]
	co = monad.NewCoroutine(func(await monad.Await[int, int]) {
		co.Advance(0)
	})
	defer func() {
		if r := recover(); r != "monad: coroutine resumed while running" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	co.Advance(0)
	t.Fatal("expected panic")
}

func TestCoroutineStop(t *testing.T) {
	cleaned := false
	reached := false
	co := monad.NewCoroutine(func(await monad.Await[int, int]) {
		defer func() { cleaned = true }()
		await(1)
		reached = true
	})
	co.Advance(0)
	co.Stop()
	if !cleaned {
		t.Fatal("deferred call did not run on Stop")
	}
	if reached {
		t.Fatal("await returned after Stop")
	}
	if _, done := co.Advance(0); !done {
		t.Fatal("expected finished after Stop")
	}
}

func TestCoroutineAsSequence(t *testing.T) {
	var seq monad.Sequence[*monad.Option[int], int] = monad.NewCoroutine(func(await monad.Await[*monad.Option[int], int]) {
		await(monad.Some(1))
	})
	if step, done := seq.Advance(0); done || step.Unwrap() != 1 {
		t.Fatalf("got (%v, %v)", step, done)
	}
	if _, done := seq.Advance(1); !done {
		t.Fatal("expected completion")
	}
}
