// SPDX-License-Identifier: MIT
// Package: sigmakit/expr
//
// node.go — the compiled expression tree.
//
// node is sealed: every implementation lives in this file, so Eval and the
// folding pass can switch over the full set.

package expr

import "math"

type node interface {
	eval(env *Env) float64
	isNode()
}

type (
	literal float64

	variable Var

	negate struct{ x node }

	binary struct {
		op   tokenKind
		l, r node
	}

	call struct {
		fn   function
		args []node
	}
)

func (literal) isNode()  {}
func (variable) isNode() {}
func (negate) isNode()   {}
func (binary) isNode()   {}
func (call) isNode()     {}

func (n literal) eval(*Env) float64 { return float64(n) }

func (n variable) eval(env *Env) float64 { return env.get(Var(n)) }

func (n negate) eval(env *Env) float64 { return -n.x.eval(env) }

func (n binary) eval(env *Env) float64 {
	l, r := n.l.eval(env), n.r.eval(env)
	switch n.op {
	case tokPlus:
		return l + r
	case tokMinus:
		return l - r
	case tokStar:
		return l * r
	case tokSlash:
		return l / r
	case tokPercent:
		return floorMod(l, r)
	case tokCaret:
		return math.Pow(l, r)
	}
	return math.NaN()
}

func (n call) eval(env *Env) float64 {
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		args[i] = a.eval(env)
	}
	return n.fn.fn(args)
}

// floorMod is the modulus with the sign of the divisor, so -1 % 3 == 2.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// fold evaluates every subtree that references no variable.
func fold(n node) node {
	switch t := n.(type) {
	case negate:
		x := fold(t.x)
		if lit, ok := x.(literal); ok {
			return -lit
		}
		return negate{x: x}
	case binary:
		l, r := fold(t.l), fold(t.r)
		b := binary{op: t.op, l: l, r: r}
		if _, ok := l.(literal); ok {
			if _, ok := r.(literal); ok {
				return literal(b.eval(nil))
			}
		}
		return b
	case call:
		args := make([]node, len(t.args))
		allLit := true
		for i, a := range t.args {
			args[i] = fold(a)
			if _, ok := args[i].(literal); !ok {
				allLit = false
			}
		}
		c := call{fn: t.fn, args: args}
		if allLit {
			return literal(c.eval(nil))
		}
		return c
	}
	return n
}
