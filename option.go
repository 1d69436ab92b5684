// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import (
	"fmt"
	"reflect"
)

// Option is an eagerly evaluated container for a value that may be absent.
// An Option is either Some (holding a value) or None.
//
// Options are immutable. Combinators build a new Option, or return the
// receiver itself when no handler applies to its branch.
type Option[T any] struct {
	state OptionState
	val   T
}

// NewOption runs f exactly once and classifies its result.
// A nil result (nil interface, pointer, map, slice, channel or func) is None;
// any other value, zero values included, is Some.
func NewOption[T any](f func() T) *Option[T] {
	o := &Option[T]{}
	if v := f(); isNil(v) {
		o.state = OptionNone
	} else {
		o.state = OptionSome
		o.val = v
	}
	return o
}

// OptionOf runs the comma-ok producer f exactly once.
// The Option is Some iff f reports ok and the value is not nil.
func OptionOf[T any](f func() (T, bool)) *Option[T] {
	o := &Option[T]{}
	if v, ok := f(); !ok || isNil(v) {
		o.state = OptionNone
	} else {
		o.state = OptionSome
		o.val = v
	}
	return o
}

// Some creates an Option holding v.
// The nil rule still applies: Some of a nil pointer is None.
func Some[T any](v T) *Option[T] {
	return NewOption(func() T { return v })
}

// None creates an empty Option.
func None[T any]() *Option[T] {
	return &Option[T]{state: OptionNone}
}

// Status returns the state of the Option.
func (o *Option[T]) Status() OptionState { return o.state }

// IsSome reports whether the Option holds a value.
func (o *Option[T]) IsSome() bool { return o.state == OptionSome }

// IsNone reports whether the Option is empty.
func (o *Option[T]) IsNone() bool { return o.state == OptionNone }

// Then chains on the Option's branch.
// On Some it returns NewOption(onSome(value)), so the handler's result is
// classified again. On None it returns NewOption(onNone). A nil handler for
// the current branch returns the receiver.
func (o *Option[T]) Then(onSome func(T) T, onNone func() T) *Option[T] {
	switch o.state {
	case OptionSome:
		if onSome != nil {
			return NewOption(func() T { return onSome(o.val) })
		}
	case OptionNone:
		if onNone != nil {
			return NewOption(onNone)
		}
	}
	return o
}

// Catch recovers a None Option with onNone; any other Option is returned as is.
func (o *Option[T]) Catch(onNone func() T) *Option[T] {
	if o.state != OptionNone || onNone == nil {
		return o
	}
	return NewOption(onNone)
}

// Unwrap returns the value if Some, or the zero value of T otherwise.
func (o *Option[T]) Unwrap() T {
	if o.state == OptionSome {
		return o.val
	}
	var zero T
	return zero
}

// Get returns the value and true if Some, or zero and false otherwise.
func (o *Option[T]) Get() (T, bool) {
	if o.state == OptionSome {
		return o.val, true
	}
	var zero T
	return zero, false
}

// UnwrapOr returns the value if Some, or def otherwise.
func (o *Option[T]) UnwrapOr(def T) T {
	if o.state == OptionSome {
		return o.val
	}
	return def
}

func (o *Option[T]) String() string {
	if o.state == OptionSome {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return o.state.String()
}

// MatchOption leaves the Option by calling exactly one handler and returning
// its result unwrapped. An Idle Option calls neither and returns zero.
func MatchOption[T, U any](o *Option[T], onSome func(T) U, onNone func() U) U {
	switch o.state {
	case OptionSome:
		return onSome(o.val)
	case OptionNone:
		return onNone()
	}
	var zero U
	return zero
}

// isNil reports whether v is nil under the Option classification rule.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
