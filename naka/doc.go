// Package naka implements the NakaScript expression front end: a lexer
// that tracks source positions, a precedence-climbing parser, and a small
// tree-walking evaluator.
//
// The grammar covers integer and float literals, the operators + - * /,
// unary signs and parentheses:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := ('+' | '-') factor | INT | FLOAT | '(' expr ')'
//
// Every stage stops at its first failure and reports it as an *Error
// carrying the offending source range.
package naka
