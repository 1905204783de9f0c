// SPDX-License-Identifier: MIT
// Package: sigmakit/expr
//
// lexer.go — byte-oriented tokenizer.

package expr

import (
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret // "^" or "**"
	tokLParen
	tokRParen
	tokComma
)

var tokenNames = [...]string{
	tokEOF:     "end of input",
	tokNumber:  "number",
	tokIdent:   "identifier",
	tokPlus:    "'+'",
	tokMinus:   "'-'",
	tokStar:    "'*'",
	tokSlash:   "'/'",
	tokPercent: "'%'",
	tokCaret:   "'^'",
	tokLParen:  "'('",
	tokRParen:  "')'",
	tokComma:   "','",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
}

// lex splits src into tokens, ending with tokEOF.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			j := scanNumber(src, i)
			v, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				return nil, syntaxErrorf(i, "malformed number %q", src[i:j])
			}
			toks = append(toks, token{kind: tokNumber, pos: i, text: src[i:j], num: v})
			i = j
			continue
		case isIdentStart(c):
			j := i + 1
			for j < len(src) && isIdentPart(src[j]) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, pos: i, text: src[i:j]})
			i = j
			continue
		}

		kind := tokEOF
		width := 1
		switch c {
		case '+':
			kind = tokPlus
		case '-':
			kind = tokMinus
		case '*':
			kind = tokStar
			if i+1 < len(src) && src[i+1] == '*' {
				kind, width = tokCaret, 2
			}
		case '/':
			kind = tokSlash
		case '%':
			kind = tokPercent
		case '^':
			kind = tokCaret
		case '(':
			kind = tokLParen
		case ')':
			kind = tokRParen
		case ',':
			kind = tokComma
		default:
			return nil, syntaxErrorf(i, "unexpected character %q", c)
		}
		toks = append(toks, token{kind: kind, pos: i, text: src[i : i+width]})
		i += width
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// scanNumber returns the end of the decimal literal starting at i:
// digits, an optional fraction and an optional exponent.
func scanNumber(src string, i int) int {
	j := i
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	if j < len(src) && src[j] == '.' {
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(src[k]) {
			for k < len(src) && isDigit(src[k]) {
				k++
			}
			j = k
		}
	}
	return j
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
