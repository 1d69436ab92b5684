// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"code.hybscloud.com/monad"
)

var (
	ErrDivideByZero = errors.New("division by zero")
	ErrNegativeRoot = errors.New("square root of a negative number")
	ErrUnknownOp    = errors.New("unknown op")
	ErrUndefinedVar = errors.New("undefined variable")
	ErrMissingArg   = errors.New("missing arg")
)

// StepTrace records the outcome of one step.
type StepTrace struct {
	Index     int     `json:"index" yaml:"index"`
	Op        Op      `json:"op" yaml:"op"`
	Value     float64 `json:"value" yaml:"value"`
	Err       error   `json:"-" yaml:"-"`
	Recovered bool    `json:"recovered,omitempty" yaml:"recovered,omitempty"`
}

// Report is the result of running a Definition.
// Err is nil iff every step succeeded or was recovered by its fallback.
type Report struct {
	Name  string
	Value float64
	Trace []StepTrace
	Err   error
}

// Runner evaluates pipeline definitions.
type Runner struct {
	Logger zerolog.Logger
}

// NewRunner creates a Runner that logs through logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{Logger: logger.With().Str("component", "pipeline").Logger()}
}

// Run evaluates def's steps in order. Each step is awaited as a Result; the
// first failing step without a fallback ends the run and is reported in Err.
func (r *Runner) Run(def *Definition) (rep Report) {
	logger := r.Logger.With().Str("pipeline", def.Name).Logger()
	rep.Name = def.Name

	defer func() {
		if p := recover(); p != nil {
			rep.Err = asError(p)
			logger.Warn().Err(rep.Err).Int("steps", len(rep.Trace)).Msg("Pipeline failed")
		}
	}()

	monad.DoResult(func(await monad.Await[*monad.Result[float64], float64]) {
		acc := 0.0
		for i, st := range def.Steps {
			res := r.eval(def, st, acc)
			tr := StepTrace{Index: i, Op: st.Op}
			tr.Value, tr.Err = res.Unpack()
			if tr.Err != nil && st.Fallback != nil {
				tr.Value, tr.Recovered = *st.Fallback, true
			}
			rep.Trace = append(rep.Trace, tr)

			logger.Debug().
				Int("index", i).
				Str("op", string(st.Op)).
				Float64("value", tr.Value).
				AnErr("error", tr.Err).
				Bool("recovered", tr.Recovered).
				Msg("Step evaluated")

			acc = awaitStep(await, res, st.Fallback)
		}
		rep.Value = acc
	})

	if rep.Err == nil {
		logger.Info().Float64("value", rep.Value).Int("steps", len(rep.Trace)).Msg("Pipeline completed")
	}
	return rep
}

// awaitStep awaits res, substituting fallback for a raised payload when set.
func awaitStep(await monad.Await[*monad.Result[float64], float64], res *monad.Result[float64], fallback *float64) (v float64) {
	if fallback != nil {
		defer func() {
			if p := recover(); p != nil {
				v = *fallback
			}
		}()
	}
	return await(res)
}

func (r *Runner) eval(def *Definition, st StepDef, acc float64) *monad.Result[float64] {
	switch st.Op {
	case OpParse:
		return monad.NewResult(func() (float64, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(def.Input), 64)
			if err != nil {
				return 0, fmt.Errorf("parse %q: %w", def.Input, err)
			}
			return v, nil
		})
	case OpAdd, OpSub, OpMul, OpDiv:
		return monad.FlatMapResult(arg(st), func(a float64) *monad.Result[float64] {
			return binary(st.Op, acc, a)
		})
	case OpSqrt:
		return monad.NewResult(func() (float64, error) {
			if acc < 0 {
				return 0, fmt.Errorf("%w: %g", ErrNegativeRoot, acc)
			}
			return math.Sqrt(acc), nil
		})
	case OpNeg:
		return monad.Ok(-acc)
	case OpVar:
		return monad.MatchOption(lookup(def, st.Var), monad.Ok[float64], func() *monad.Result[float64] {
			return monad.Err[float64](fmt.Errorf("%w: %q", ErrUndefinedVar, st.Var))
		})
	case OpDefault:
		return monad.MapResult(arg(st), func(a float64) float64 {
			return lookup(def, st.Var).UnwrapOr(a)
		})
	}
	return monad.Err[float64](fmt.Errorf("%w: %q", ErrUnknownOp, st.Op))
}

func binary(op Op, acc, a float64) *monad.Result[float64] {
	return monad.NewResult(func() (float64, error) {
		switch op {
		case OpAdd:
			return acc + a, nil
		case OpSub:
			return acc - a, nil
		case OpMul:
			return acc * a, nil
		}
		if a == 0 {
			return 0, ErrDivideByZero
		}
		return acc / a, nil
	})
}

func arg(st StepDef) *monad.Result[float64] {
	return monad.NewResult(func() (float64, error) {
		if st.Arg == nil {
			return 0, fmt.Errorf("%w for op %s", ErrMissingArg, st.Op)
		}
		return *st.Arg, nil
	})
}

func lookup(def *Definition, name string) *monad.Option[float64] {
	return monad.OptionOf(func() (float64, bool) {
		v, ok := def.Vars[name]
		return v, ok
	})
}

func asError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &monad.PanicError{Value: p}
}
