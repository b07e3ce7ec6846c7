// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package gate evaluates boolean code path gates such as
// "avx512f && avx512bw || [avx10.1]" against a processor descriptor.
package gate

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/casbin/govaluate"

	"cpudesc/internal/cpus"
	"cpudesc/internal/features"
	"cpudesc/internal/procdesc"
)

// Reserved variable names that are not features.
const (
	VarProcessor = "processor" // microarchitecture code, e.g., "SPR"
	VarVendor    = "vendor"    // vendor of the classified processor, e.g., "GenuineIntel", or "unknown"
)

// getEvaluatorFunctions defines functions that can be called in gate expressions
func getEvaluatorFunctions() (functions map[string]govaluate.ExpressionFunction) {
	functions = make(map[string]govaluate.ExpressionFunction)
	// code('Sapphire Rapids') returns "SPR", for comparison with processor
	functions["code"] = func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("code takes one argument, got %d", len(args))
		}
		name, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("code argument must be a string, got %v", args[0])
		}
		p, err := cpus.ParseProcessor(name)
		if err != nil {
			return nil, err
		}
		return p.Code(), nil
	}
	return
}

// Expression is a compiled gate. Feature names containing '.' or '/' must be
// written in brackets, e.g., [avx10/512].
type Expression struct {
	source    string
	evaluable *govaluate.EvaluableExpression
	vars      []string
}

// Compile parses expr and checks that every variable it refers to is a feature
// name or one of the reserved variables.
func Compile(expr string) (*Expression, error) {
	evaluable, err := govaluate.NewEvaluableExpressionWithFunctions(expr, getEvaluatorFunctions())
	if err != nil {
		return nil, fmt.Errorf("failed to parse gate expression %q: %w", expr, err)
	}
	vars := evaluable.Vars()
	for _, v := range vars {
		if v == VarProcessor || v == VarVendor {
			continue
		}
		if _, ok := features.Lookup(v); !ok {
			return nil, fmt.Errorf("unknown feature %q in gate expression %q", v, expr)
		}
	}
	slices.Sort(vars)
	return &Expression{source: expr, evaluable: evaluable, vars: slices.Compact(vars)}, nil
}

func (e *Expression) String() string {
	return e.source
}

// Vars returns the distinct variables the expression refers to, sorted.
func (e *Expression) Vars() []string {
	return slices.Clone(e.vars)
}

// Evaluate reports whether d satisfies the gate.
func (e *Expression) Evaluate(d procdesc.Descriptor) (bool, error) {
	parameters := make(map[string]any, len(e.vars))
	for _, v := range e.vars {
		switch v {
		case VarProcessor:
			parameters[v] = d.Processor.Code()
		case VarVendor:
			parameters[v] = d.Processor.Vendor().String()
		default:
			f, _ := features.Lookup(v)
			parameters[v] = d.Has(f)
		}
	}
	result, err := e.evaluable.Evaluate(parameters)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate gate expression %q: %w", e.source, err)
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("gate expression %q evaluated to %v, not a boolean", e.source, result)
	}
	slog.Debug("gate evaluated", slog.String("expression", e.source), slog.Bool("result", b))
	return b, nil
}

// Evaluate compiles and evaluates expr in one step.
func Evaluate(expr string, d procdesc.Descriptor) (bool, error) {
	e, err := Compile(expr)
	if err != nil {
		return false, err
	}
	return e.Evaluate(d)
}
