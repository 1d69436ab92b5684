// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fn provides currying and partial application for plain functions.
//
// Go cannot inspect a function's arity, so each arity has its own helper.
// Curried forms take one argument per call; Partial2 fixes a leading
// argument and keeps the rest in a single call.
package fn

// Curry2 turns f(a, b) into f(a)(b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// Curry3 turns f(a, b, c) into f(a)(b)(c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(func(b B, c C) R { return f(a, b, c) })
	}
}

// Curry4 turns f(a, b, c, d) into f(a)(b)(c)(d).
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R { return f(a, b, c, d) })
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R { return f(a)(b) }
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R { return f(a)(b)(c) }
}

// Partial2 fixes the first argument of f.
func Partial2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Partial3 fixes the first argument of f, leaving a two-argument function.
func Partial3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R { return f(a, b, c) }
}
