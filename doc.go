// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monad provides eagerly evaluated Option and Result containers and a
// driver for writing multi-step fallible computations in direct style.
//
// Both containers run their producer exactly once, synchronously, at
// construction, and are immutable afterwards. Combinators build new
// containers; when no handler applies to a container's branch, the receiver
// itself is returned.
//
// # Option
//
// [Option] models presence (Some) or absence (None). A producer result that
// is nil (nil interface, pointer, map, slice, channel or func) is None;
// every other value is Some.
//
//   - [NewOption]: Classify the result of a producer
//   - [OptionOf]: Classify a comma-ok producer
//   - [Some], [None]: Constructors
//   - [Option.Then]: Chain on Some, or on None when a handler is given
//   - [Option.Catch]: Recover from None
//   - [MatchOption]: Leave the container through exactly one handler
//   - [Option.Unwrap]: Value, or the zero value when None
//   - [Option.Get], [Option.UnwrapOr]: Checked accessors
//
// # Result
//
// [Result] models success (Ok) or failure (Err). The producer runs under
// recover: a returned error or any panic value becomes the Err payload,
// unmodified.
//
//   - [NewResult]: Classify a (value, error) producer
//   - [Try]: Classify a producer that may panic
//   - [Ok], [Err]: Constructors that skip the producer
//   - [Result.Then]: Chain on Ok, or on Err when a handler is given
//   - [Result.Catch]: Recover from Err
//   - [MatchResult]: Leave the container; handler panics propagate
//   - [Result.Unwrap]: Value or payload through one untyped channel
//   - [Result.Get], [Result.GetErr], [Result.Unpack]: Checked accessors
//
// [Result.Unwrap] does not say which of the two it returned. Consult
// [Result.Status] first.
//
// # Combinators
//
// Type-changing chains are free functions:
//
//   - [MapOption], [FlatMapOption], [OrElseOption], [FilterOption]
//   - [MapResult], [FlatMapResult], [MapErrResult], [OrElseResult]
//
// # Sequencing
//
// A [Sequence] is a computation that suspends on containers. [ExecOption] and
// [ExecResult] drive one to completion: each yielded container is unwrapped
// and its value fed back with Advance, or its failure with Raise (Result) or
// Advance(zero) (Option).
//
//   - [Sequence]: Advance / Raise resumption contract
//   - [ExecOption], [ExecResult]: Drive a Sequence to completion
//   - [NewCoroutine]: Build a Sequence from a direct-style body
//   - [DoOption], [DoResult]: Drive a direct-style body
//
// Drivers return nothing and do not bound the number of steps. A Sequence
// that never finishes keeps its driver looping.
//
// # Example
//
//	monad.DoResult(func(await monad.Await[*monad.Result[int], int]) {
//		a := await(monad.Ok(6))
//		b := await(monad.Try(func() int { return a * 7 }))
//		fmt.Println(b) // 42
//
//		defer func() {
//			fmt.Println("recovered:", recover()) // recovered: boom
//		}()
//		await(monad.Err[int]("boom"))
//	})
package monad
