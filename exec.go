// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Sequencing for direct-style computations.
// A computation suspends on a container and is resumed with the value that
// container holds, or with its failure. The drive loops run synchronously on
// the caller's stack until the computation reports completion.

// Sequence is a resumable computation that yields containers of type C and is
// resumed with values of type T.
//
// Advance resumes the computation at its last suspension point with v.
// Raise resumes it by failing that suspension point with err.
// Both return the next container the computation suspended on, or
// finished == true once it has completed.
type Sequence[C, T any] interface {
	Advance(v T) (step C, finished bool)
	Raise(err any) (step C, finished bool)
}

// ExecOption runs the Sequence produced by factory to completion.
//
// The Sequence is started with Advance(zero). Each yielded Some is answered
// with Advance(value); None, Idle or nil steps are answered with Advance(zero).
// Exactly one resumption happens per yielded step.
//
// ExecOption returns nothing and has no iteration bound: a Sequence that never
// finishes makes ExecOption loop forever.
//
// Example:
//
//	monad.ExecOption(func() monad.Sequence[*monad.Option[int], int] {
//		return monad.NewCoroutine(func(await monad.Await[*monad.Option[int], int]) {
//			x := await(monad.Some(20))
//			y := await(monad.None[int]()) // 0
//			fmt.Println(x + y)
//		})
//	})
func ExecOption[T any](factory func() Sequence[*Option[T], T]) {
	s := factory()
	var zero T
	step, done := s.Advance(zero)
	for !done {
		if step != nil && step.state == OptionSome {
			step, done = s.Advance(step.val)
			continue
		}
		step, done = s.Advance(zero)
	}
}

// ExecResult runs the Sequence produced by factory to completion.
//
// The Sequence is started with Advance(zero). Each yielded Ok is answered
// with Advance(value); Err is answered with Raise(payload). Idle or nil steps
// are answered with Raise(nil). Exactly one resumption happens per yielded step.
//
// A payload raised into the Sequence and not handled there propagates out of
// ExecResult as a panic. Like ExecOption, ExecResult returns nothing and has
// no iteration bound.
func ExecResult[T any](factory func() Sequence[*Result[T], T]) {
	s := factory()
	var zero T
	step, done := s.Advance(zero)
	for !done {
		switch {
		case step == nil:
			step, done = s.Raise(nil)
		case step.state == ResultOk:
			step, done = s.Advance(step.val)
		default:
			step, done = s.Raise(step.err)
		}
	}
}

// DoOption runs body as a coroutine under [ExecOption].
// Each await(o) returns the value of o, or the zero value if o is None.
func DoOption[T any](body func(await Await[*Option[T], T])) {
	ExecOption(func() Sequence[*Option[T], T] {
		return NewCoroutine(body)
	})
}

// DoResult runs body as a coroutine under [ExecResult].
// Each await(r) returns the value of r if Ok; if r is Err, await panics with
// its payload, which body may recover.
//
// Example:
//
//	monad.DoResult(func(await monad.Await[*monad.Result[int], int]) {
//		n := await(monad.Ok(21))
//		fmt.Println(await(monad.Try(func() int { return n * 2 }))) // 42
//	})
func DoResult[T any](body func(await Await[*Result[T], T])) {
	ExecResult(func() Sequence[*Result[T], T] {
		return NewCoroutine(body)
	})
}
