// SPDX-License-Identifier: MIT

// Package expr compiles small arithmetic formulas over sigma sequences.
//
// The grammar is closed. Nothing outside it can be named or called:
//
//	expr   := term { ("+" | "-") term }
//	term   := unary { ("*" | "/" | "%") unary }
//	unary  := "-" unary | "+" unary | power
//	power  := atom [ ("^" | "**") unary ]      right-associative
//	atom   := number | ident | ident "(" [ expr { "," expr } ] ")" | "(" expr ")"
//
// Identifiers are the variables a b c x y z s, the constants pi and e, and
// the functions listed by Functions. Unknown identifiers and wrong argument
// counts fail in Compile, never in Eval.
//
// Evaluation follows IEEE-754: division by zero yields ±Inf and log of a
// negative number yields NaN. Callers that need finite output sanitize it.
//
// A Program is immutable after Compile and safe for concurrent Eval.
package expr
