// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Container states.
// Both containers start Idle and are resolved exactly once by their
// constructor; Idle is only observable on a zero-value struct.

// OptionState is the discriminant of an [Option].
type OptionState int

//go:generate go tool github.com/dmarkham/enumer -type OptionState -trimprefix=Option
const (
	OptionIdle OptionState = iota
	OptionSome
	OptionNone
)

// ResultState is the discriminant of a [Result].
type ResultState int

//go:generate go tool github.com/dmarkham/enumer -type ResultState -trimprefix=Result
const (
	ResultIdle ResultState = iota
	ResultOk
	ResultErr
)
