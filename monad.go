// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Type-changing combinators.
//
// Methods cannot introduce type parameters, so chains that change the value
// type are free functions. They keep the method contract: a branch with no
// handler returns the receiver itself when the result type equals the input
// type, and a fresh container in the same state otherwise.

// MapOption applies f to the value of a Some Option.
// The result is classified again, so f returning nil yields None.
func MapOption[T, U any](o *Option[T], f func(T) U) *Option[U] {
	if o.state != OptionSome {
		return passOption[T, U](o)
	}
	return NewOption(func() U { return f(o.val) })
}

// FlatMapOption sequences two Option computations.
// A nil Option returned by f is treated as None.
func FlatMapOption[T, U any](o *Option[T], f func(T) *Option[U]) *Option[U] {
	if o.state != OptionSome {
		return passOption[T, U](o)
	}
	if next := f(o.val); next != nil {
		return next
	}
	return None[U]()
}

// OrElseOption replaces a None Option with the Option produced by f.
func OrElseOption[T any](o *Option[T], f func() *Option[T]) *Option[T] {
	if o.state != OptionNone {
		return o
	}
	if next := f(); next != nil {
		return next
	}
	return None[T]()
}

// FilterOption keeps a Some Option only if pred holds for its value.
func FilterOption[T any](o *Option[T], pred func(T) bool) *Option[T] {
	if o.state == OptionSome && !pred(o.val) {
		return None[T]()
	}
	return o
}

// passOption forwards a non-Some Option across a type change.
func passOption[T, U any](o *Option[T]) *Option[U] {
	if same, ok := any(o).(*Option[U]); ok {
		return same
	}
	return &Option[U]{state: o.state}
}

// MapResult applies f to the value of an Ok Result.
// A panic in f yields Err.
func MapResult[T, U any](r *Result[T], f func(T) U) *Result[U] {
	if r.state != ResultOk {
		return passResult[T, U](r)
	}
	return NewResult(func() (U, error) { return f(r.val), nil })
}

// FlatMapResult sequences two Result computations.
// A panic in f yields Err; a nil Result returned by f yields Err(ErrUnresolved).
func FlatMapResult[T, U any](r *Result[T], f func(T) *Result[U]) *Result[U] {
	if r.state != ResultOk {
		return passResult[T, U](r)
	}
	var next *Result[U]
	if p, panicked := capture(func() { next = f(r.val) }); panicked {
		return Err[U](p)
	}
	if next == nil {
		return Err[U](ErrUnresolved)
	}
	return next
}

// MapErrResult applies f to the payload of an Err Result.
// A panic in f replaces the payload with the panic value.
func MapErrResult[T any](r *Result[T], f func(any) any) *Result[T] {
	if r.state != ResultErr {
		return r
	}
	var payload any
	if p, panicked := capture(func() { payload = f(r.err) }); panicked {
		return Err[T](p)
	}
	return Err[T](payload)
}

// OrElseResult replaces an Err Result with the Result produced by f.
func OrElseResult[T any](r *Result[T], f func(any) *Result[T]) *Result[T] {
	if r.state != ResultErr {
		return r
	}
	var next *Result[T]
	if p, panicked := capture(func() { next = f(r.err) }); panicked {
		return Err[T](p)
	}
	if next == nil {
		return Err[T](ErrUnresolved)
	}
	return next
}

// passResult forwards a non-Ok Result across a type change.
func passResult[T, U any](r *Result[T]) *Result[U] {
	if same, ok := any(r).(*Result[U]); ok {
		return same
	}
	return &Result[U]{state: r.state, err: r.err}
}

// capture runs f and reports the value it panicked with, if any.
func capture(f func()) (p any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			p, panicked = r, true
		}
	}()
	f()
	return nil, false
}
