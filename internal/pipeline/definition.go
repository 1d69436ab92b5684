// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Op names a step operation.
type Op string

const (
	OpParse   Op = "parse"
	OpAdd     Op = "add"
	OpSub     Op = "sub"
	OpMul     Op = "mul"
	OpDiv     Op = "div"
	OpSqrt    Op = "sqrt"
	OpNeg     Op = "neg"
	OpVar     Op = "var"
	OpDefault Op = "default"
)

// Definition is a named sequence of arithmetic steps over a running value.
type Definition struct {
	// Name identifies the pipeline in logs and reports.
	Name string `yaml:"name" validate:"required"`

	// Input is the text consumed by parse steps.
	Input string `yaml:"input"`

	// Vars are the bindings visible to var and default steps.
	Vars map[string]float64 `yaml:"vars"`

	Steps []StepDef `yaml:"steps" validate:"required,min=1,dive"`
}

// StepDef is one step of a Definition.
type StepDef struct {
	Op Op `yaml:"op" validate:"required,oneof=parse add sub mul div sqrt neg var default"`

	// Arg is the operand of add, sub, mul and div, and the value used by
	// default when Var is unbound.
	Arg *float64 `yaml:"arg,omitempty"`

	// Var names the binding read by var and default.
	Var string `yaml:"var,omitempty"`

	// Fallback, if set, replaces the running value when this step fails.
	Fallback *float64 `yaml:"fallback,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateStep, StepDef{})
	return v
}

// validateStep checks the operands each op needs.
func validateStep(sl validator.StructLevel) {
	st := sl.Current().Interface().(StepDef)
	switch st.Op {
	case OpAdd, OpSub, OpMul, OpDiv, OpDefault:
		if st.Arg == nil {
			sl.ReportError(st.Arg, "arg", "Arg", "required_for_op", string(st.Op))
		}
	}
	switch st.Op {
	case OpVar, OpDefault:
		if st.Var == "" {
			sl.ReportError(st.Var, "var", "Var", "required_for_op", string(st.Op))
		}
	}
}

// Load reads and parses a pipeline definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a pipeline definition. Unknown fields are rejected.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty pipeline definition")
		}
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	return &def, nil
}

// Validate checks a definition's required fields and step operands.
func Validate(def *Definition) error {
	if err := validate.Struct(def); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("invalid pipeline %q: %s", def.Name, strings.Join(msgs, "; "))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Definition.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s %q is not one of [%s]", field, fe.Value(), fe.Param())
	case "required_for_op":
		return fmt.Sprintf("%s is required for op %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
