// SPDX-License-Identifier: MIT
// Package: sigmakit/expr
//
// funcs.go — the allowed function set.

package expr

import (
	"math"
	"sort"
)

// variadic marks a function taking two or more arguments.
const variadic = -1

type function struct {
	name  string
	arity int
	fn    func(args []float64) float64
}

func unary(name string, f func(float64) float64) function {
	return function{name: name, arity: 1, fn: func(a []float64) float64 { return f(a[0]) }}
}

var functions = map[string]function{}

func init() {
	for _, f := range []function{
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		unary("asin", math.Asin),
		unary("acos", math.Acos),
		unary("atan", math.Atan),
		unary("sinh", math.Sinh),
		unary("cosh", math.Cosh),
		unary("tanh", math.Tanh),
		unary("exp", math.Exp),
		unary("log", math.Log),
		unary("log2", math.Log2),
		unary("log10", math.Log10),
		unary("sqrt", math.Sqrt),
		unary("abs", math.Abs),
		unary("floor", math.Floor),
		unary("ceil", math.Ceil),
		unary("round", math.RoundToEven),
		{name: "pow", arity: 2, fn: func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
		{name: "atan2", arity: 2, fn: func(a []float64) float64 { return math.Atan2(a[0], a[1]) }},
		{name: "clamp", arity: 3, fn: func(a []float64) float64 { return math.Min(math.Max(a[0], a[1]), a[2]) }},
		{name: "min", arity: variadic, fn: func(a []float64) float64 {
			m := a[0]
			for _, v := range a[1:] {
				m = math.Min(m, v)
			}
			return m
		}},
		{name: "max", arity: variadic, fn: func(a []float64) float64 {
			m := a[0]
			for _, v := range a[1:] {
				m = math.Max(m, v)
			}
			return m
		}},
	} {
		functions[f.name] = f
	}
}

// Functions returns the allowed function names, sorted.
func Functions() []string {
	out := make([]string, 0, len(functions))
	for name := range functions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
