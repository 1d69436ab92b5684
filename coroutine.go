// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import (
	"iter"
	"sync/atomic"
)

// Await suspends a coroutine body on step until the driver resumes it.
// It returns the value passed to Advance, or panics with the payload passed
// to Raise.
type Await[C, T any] func(step C) T

// Coroutine is a [Sequence] backed by a direct-style body.
//
// Each call to the body's await function is a suspension point. Control moves
// between the driver and the body synchronously: exactly one step of the body
// runs per resumption, and no goroutine runs concurrently with the caller.
//
// A Coroutine is single-use. Resuming it from inside its own body panics.
type Coroutine[C, T any] struct {
	busy    atomic.Uintptr
	next    func() (C, bool)
	stop    func()
	started bool
	done    bool
	in      T
	raised  any
	raising bool
}

// stopped unwinds a body whose Coroutine was stopped while suspended.
type stopped struct{}

// NewCoroutine creates a Coroutine that runs body on the first Advance.
func NewCoroutine[C, T any](body func(await Await[C, T])) *Coroutine[C, T] {
	co := &Coroutine[C, T]{}
	co.next, co.stop = iter.Pull(func(yield func(C) bool) {
		defer func() {
			if p := recover(); p != nil {
				if _, ok := p.(stopped); !ok {
					panic(p)
				}
			}
		}()
		body(co.await(yield))
	})
	return co
}

func (co *Coroutine[C, T]) await(yield func(C) bool) Await[C, T] {
	return func(step C) T {
		if !yield(step) {
			panic(stopped{})
		}
		if co.raising {
			err := co.raised
			co.raised, co.raising = nil, false
			panic(err)
		}
		v := co.in
		var zero T
		co.in = zero
		return v
	}
}

// Advance resumes the body with v as the result of its pending await.
// The first Advance starts the body and v is discarded.
// After the body has returned, Advance reports finished without running anything.
func (co *Coroutine[C, T]) Advance(v T) (C, bool) {
	co.in = v
	return co.resume()
}

// Raise resumes the body by making its pending await panic with err.
// Raising into a Coroutine that has not started finishes it and panics
// with err on the caller's side.
func (co *Coroutine[C, T]) Raise(err any) (C, bool) {
	if !co.started && !co.done {
		co.started = true
		co.finish()
		panic(err)
	}
	co.raised, co.raising = err, true
	return co.resume()
}

// Done reports whether the body has completed or was stopped.
func (co *Coroutine[C, T]) Done() bool { return co.done }

// Stop abandons a suspended body and releases its coroutine.
// Deferred calls in the body run; pending awaits do not return.
func (co *Coroutine[C, T]) Stop() {
	co.finish()
}

func (co *Coroutine[C, T]) resume() (step C, finished bool) {
	if co.done {
		co.raised, co.raising = nil, false
		return step, true
	}
	if co.busy.Add(1) != 1 {
		panic("monad: coroutine resumed while running")
	}
	ok := false
	defer func() {
		co.busy.Store(0)
		if !ok {
			// The body panicked through next.
			co.done = true
		}
	}()
	co.started = true
	step, more := co.next()
	ok = true
	if !more {
		co.finish()
		return step, true
	}
	return step, false
}

func (co *Coroutine[C, T]) finish() {
	if co.done {
		return
	}
	co.done = true
	co.stop()
}
