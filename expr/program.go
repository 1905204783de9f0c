// SPDX-License-Identifier: MIT
// Package: sigmakit/expr
//
// program.go — Compile, Program and Env.

package expr

import "strings"

// Var names one of the formula variables.
type Var uint8

const (
	VarA Var = iota // element of the first input sequence
	VarB            // element of the second input sequence
	VarC            // element of the third input sequence
	VarX            // scalar parameter
	VarY            // scalar parameter
	VarZ            // scalar parameter
	VarS            // element index, 0-based
	numVars
)

var varNames = [numVars]string{"a", "b", "c", "x", "y", "z", "s"}

// String returns the variable's source name.
func (v Var) String() string {
	if v >= numVars {
		return "?"
	}
	return varNames[v]
}

func lookupVar(name string) (Var, bool) {
	for i, n := range varNames {
		if n == name {
			return Var(i), true
		}
	}
	return 0, false
}

// Env binds every variable for one evaluation.
type Env struct {
	A, B, C float64
	X, Y, Z float64
	S       float64
}

func (e *Env) get(v Var) float64 {
	switch v {
	case VarA:
		return e.A
	case VarB:
		return e.B
	case VarC:
		return e.C
	case VarX:
		return e.X
	case VarY:
		return e.Y
	case VarZ:
		return e.Z
	default:
		return e.S
	}
}

// MaxSourceLen bounds the formula text accepted by Compile.
const MaxSourceLen = 4096

// Program is a compiled formula.
type Program struct {
	src  string
	root node
	uses [numVars]bool
}

// Compile parses src once. The returned Program never fails at Eval time.
//
// Errors:
//   - ErrSyntax: malformed input, too-deep nesting, wrong argument count,
//     or a source longer than MaxSourceLen.
//   - ErrUnknownIdent: a name outside the variables, constants and Functions.
func Compile(src string) (*Program, error) {
	if len(src) > MaxSourceLen {
		return nil, syntaxErrorf(MaxSourceLen, "formula longer than %d bytes", MaxSourceLen)
	}
	if strings.TrimSpace(src) == "" {
		return nil, syntaxErrorf(0, "empty formula")
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxErrorf(t.pos, "unexpected %s", describe(t))
	}

	prog := &Program{src: src, root: fold(root)}
	prog.uses = p.uses
	return prog, nil
}

// MustCompile is Compile for literals; it panics on error.
func MustCompile(src string) *Program {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Eval evaluates the program under env.
func (p *Program) Eval(env Env) float64 { return p.root.eval(&env) }

// Uses reports whether the source references v.
func (p *Program) Uses(v Var) bool { return v < numVars && p.uses[v] }

// String returns the source text.
func (p *Program) String() string { return p.src }
