// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq provides lazy adapters and collectors over iter.Seq.
//
// Adapters pull from their source only as far as the consumer ranges, so a
// Take or First over an unbounded sequence terminates. A sequence built on a
// single-pass source stays single-pass.
package seq

import "iter"

// Count consumes s and returns the number of elements it yielded.
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Enumerate pairs each element of s with its 1-based position.
func Enumerate[T any](s iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 1
		for v := range s {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Filter yields the elements of s for which pred reports true.
// pred receives each element with its 0-based position in s.
func Filter[T any](s iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			keep := pred(v, i)
			i++
			if keep && !yield(v) {
				return
			}
		}
	}
}

// Map yields f applied to each element of s and its 0-based position.
func Map[T, U any](s iter.Seq[T], f func(T, int) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for v := range s {
			if !yield(f(v, i)) {
				return
			}
			i++
		}
	}
}

// Slice yields the elements of s at positions [from, to).
// An empty or inverted range yields nothing.
func Slice[T any](s iter.Seq[T], from, to int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if to <= from {
			return
		}
		i := 0
		for v := range s {
			if i >= to {
				return
			}
			if i >= from && !yield(v) {
				return
			}
			i++
		}
	}
}

// Take yields at most n elements of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Repeat yields the elements of src() n times over, obtaining a fresh
// sequence from src for each round. n <= 0 yields nothing.
func Repeat[T any](src func() iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			for v := range src() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// First returns the first element of s, or zero and false if s is empty.
// It stops s after one element.
func First[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T
	return zero, false
}

// Last consumes s and returns its final element, or zero and false if s is empty.
func Last[T any](s iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range s {
		last, ok = v, true
	}
	return last, ok
}

// ToSlice collects s into a slice in order.
func ToSlice[T any](s iter.Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}
	return out
}

// ToSet collects the distinct elements of s.
func ToSet[T comparable](s iter.Seq[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}
