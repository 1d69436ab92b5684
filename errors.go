// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import (
	"errors"
	"fmt"
)

// ErrUnresolved is returned by [Result.Unpack] on a zero-value Result.
var ErrUnresolved = errors.New("monad: unresolved result")

// PanicError carries an Err payload that is not an error value,
// such as a string or number a producer panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("monad: %v", e.Value)
}
