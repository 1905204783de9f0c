// SPDX-License-Identifier: MIT
// Package: sigmakit/expr
//
// parser.go — precedence-climbing parser.
//
// Binding powers (higher binds tighter):
//
//	+ -      10   left
//	* / %    20   left
//	unary -  30   prefix
//	^ **     40   right; the exponent may itself be a unary minus

package expr

import "fmt"

const (
	bpAdditive       = 10
	bpMultiplicative = 20
	bpPrefix         = 30
	bpPower          = 40

	maxDepth = 128
)

type parser struct {
	toks  []token
	pos   int
	depth int
	uses  [numVars]bool
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, syntaxErrorf(t.pos, "expected %s, found %s", kind, describe(t))
	}
	return t, nil
}

func describe(t token) string {
	if t.kind == tokNumber || t.kind == tokIdent {
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}

func infixPower(k tokenKind) int {
	switch k {
	case tokPlus, tokMinus:
		return bpAdditive
	case tokStar, tokSlash, tokPercent:
		return bpMultiplicative
	case tokCaret:
		return bpPower
	}
	return 0
}

// parseExpr parses operators binding tighter than minBP.
func (p *parser) parseExpr(minBP int) (node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, syntaxErrorf(p.peek().pos, "nesting deeper than %d", maxDepth)
	}

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		bp := infixPower(op.kind)
		if bp == 0 || bp <= minBP {
			return left, nil
		}
		p.next()
		rightBP := bp
		if op.kind == tokCaret {
			// right associative, and allow 2^-x
			rightBP = bpPrefix - 1
		}
		right, err := p.parseExpr(rightBP)
		if err != nil {
			return nil, err
		}
		left = binary{op: op.kind, l: left, r: right}
	}
}

func (p *parser) parsePrefix() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return literal(t.num), nil

	case tokMinus, tokPlus:
		x, err := p.parseExpr(bpPrefix)
		if err != nil {
			return nil, err
		}
		if t.kind == tokPlus {
			return x, nil
		}
		return negate{x: x}, nil

	case tokLParen:
		x, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return x, nil

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		if v, ok := lookupVar(t.text); ok {
			p.uses[v] = true
			return variable(v), nil
		}
		if c, ok := constants[t.text]; ok {
			return literal(c), nil
		}
		return nil, &Error{Pos: t.pos, Msg: fmt.Sprintf("%q is not a variable or constant", t.text), Err: ErrUnknownIdent}
	}
	return nil, syntaxErrorf(t.pos, "unexpected %s", describe(t))
}

func (p *parser) parseCall(name token) (node, error) {
	fn, ok := functions[name.text]
	if !ok {
		return nil, &Error{Pos: name.pos, Msg: fmt.Sprintf("%q is not an allowed function", name.text), Err: ErrUnknownIdent}
	}
	p.next() // (

	var args []node
	if p.peek().kind != tokRParen {
		for {
			a, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	switch {
	case fn.arity == variadic && len(args) < 2:
		return nil, syntaxErrorf(name.pos, "%s takes at least 2 arguments, got %d", fn.name, len(args))
	case fn.arity != variadic && len(args) != fn.arity:
		return nil, syntaxErrorf(name.pos, "%s takes %d argument(s), got %d", fn.name, fn.arity, len(args))
	}
	return call{fn: fn, args: args}, nil
}
