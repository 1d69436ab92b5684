// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "fmt"

// Result is an eagerly evaluated container for a computation that may fail.
// A Result is either Ok (holding a value) or Err (holding the failure payload).
//
// The Err payload is kept verbatim: a returned error, or whatever value the
// producer panicked with. It is never normalized into an error.
type Result[T any] struct {
	state ResultState
	val   T
	err   any
}

// NewResult runs f exactly once under recover.
// A non-nil returned error or a panic yields Err; anything else yields Ok,
// including nil values.
func NewResult[T any](f func() (T, error)) *Result[T] {
	r := &Result[T]{}
	r.resolve(f)
	return r
}

// Try runs f exactly once under recover. A panic yields Err holding the
// recovered value; a normal return yields Ok.
func Try[T any](f func() T) *Result[T] {
	return NewResult(func() (T, error) { return f(), nil })
}

// Ok creates an Ok Result holding v.
func Ok[T any](v T) *Result[T] {
	return &Result[T]{state: ResultOk, val: v}
}

// Err creates an Err Result holding payload, typically an error or a message.
func Err[T any](payload any) *Result[T] {
	return &Result[T]{state: ResultErr, err: payload}
}

// resolve moves an Idle Result into Ok or Err.
func (r *Result[T]) resolve(f func() (T, error)) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			r.state = ResultErr
			r.val = zero
			r.err = p
		}
	}()
	v, err := f()
	if err != nil {
		r.state = ResultErr
		r.err = err
		return
	}
	r.state = ResultOk
	r.val = v
}

// Status returns the state of the Result.
func (r *Result[T]) Status() ResultState { return r.state }

// IsOk reports whether the Result is Ok.
func (r *Result[T]) IsOk() bool { return r.state == ResultOk }

// IsErr reports whether the Result is Err.
func (r *Result[T]) IsErr() bool { return r.state == ResultErr }

// Then chains on the Result's branch.
// On Ok it returns NewResult(onOk(value)); on Err it returns
// NewResult(onErr(payload)). A panicking handler produces a new Err.
// A nil handler for the current branch returns the receiver.
func (r *Result[T]) Then(onOk func(T) (T, error), onErr func(any) (T, error)) *Result[T] {
	switch r.state {
	case ResultOk:
		if onOk != nil {
			return NewResult(func() (T, error) { return onOk(r.val) })
		}
	case ResultErr:
		if onErr != nil {
			return NewResult(func() (T, error) { return onErr(r.err) })
		}
	}
	return r
}

// Catch recovers an Err Result with onErr; any other Result is returned as is.
func (r *Result[T]) Catch(onErr func(any) (T, error)) *Result[T] {
	if r.state != ResultErr || onErr == nil {
		return r
	}
	return NewResult(func() (T, error) { return onErr(r.err) })
}

// Unwrap returns the value if Ok or the payload if Err, through the same
// untyped channel. Callers consult Status first to tell them apart.
// An Idle Result unwraps to nil.
func (r *Result[T]) Unwrap() any {
	switch r.state {
	case ResultOk:
		return r.val
	case ResultErr:
		return r.err
	}
	return nil
}

// Get returns the value and true if Ok, or zero and false otherwise.
func (r *Result[T]) Get() (T, bool) {
	if r.state == ResultOk {
		return r.val, true
	}
	var zero T
	return zero, false
}

// GetErr returns the payload and true if Err, or nil and false otherwise.
func (r *Result[T]) GetErr() (any, bool) {
	if r.state == ResultErr {
		return r.err, true
	}
	return nil, false
}

// Unpack converts the Result to Go's (value, error) form.
// Error payloads are returned as is; other payloads are wrapped in *PanicError.
func (r *Result[T]) Unpack() (T, error) {
	switch r.state {
	case ResultOk:
		return r.val, nil
	case ResultErr:
		var zero T
		if err, ok := r.err.(error); ok {
			return zero, err
		}
		return zero, &PanicError{Value: r.err}
	}
	var zero T
	return zero, ErrUnresolved
}

func (r *Result[T]) String() string {
	switch r.state {
	case ResultOk:
		return fmt.Sprintf("Ok(%v)", r.val)
	case ResultErr:
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return r.state.String()
}

// MatchResult leaves the Result by calling exactly one handler and returning
// its result unwrapped. Panics raised by the handler are not recovered.
// An Idle Result calls neither and returns zero.
func MatchResult[T, U any](r *Result[T], onOk func(T) U, onErr func(any) U) U {
	switch r.state {
	case ResultOk:
		return onOk(r.val)
	case ResultErr:
		return onErr(r.err)
	}
	var zero U
	return zero
}
