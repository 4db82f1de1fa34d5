package naka

import "sort"

// Warning is a lint finding. Warnings never stop evaluation.
type Warning struct {
	Start   Position
	End     Position
	Message string
}

// Analyze walks the tree and reports suspicious constructs, ordered by
// source position.
func Analyze(node Node) []Warning {
	warnings := make([]Warning, 0)
	lintNode(node, &warnings)
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Start.Offset < warnings[j].Start.Offset
	})
	return warnings
}

func lintNode(node Node, warnings *[]Warning) {
	switch n := node.(type) {
	case *UnaryOp:
		switch {
		case n.Operator.Kind == TokenPlus:
			*warnings = append(*warnings, Warning{Start: n.Start(), End: n.Operator.End, Message: "unary plus has no effect"})
		case isNegation(n) && isNegation(n.Operand):
			*warnings = append(*warnings, Warning{Start: n.Start(), End: n.Operand.(*UnaryOp).Operator.End, Message: "double negation cancels out"})
		}
		lintNode(n.Operand, warnings)
	case *BinaryOp:
		if lit, ok := n.Right.(*NumberLiteral); ok && n.Operator.Kind == TokenSlash && lit.Value().IsZero() {
			*warnings = append(*warnings, Warning{Start: n.Right.Start(), End: n.Right.End(), Message: "division by literal zero"})
		}
		lintNode(n.Left, warnings)
		lintNode(n.Right, warnings)
	}
}

func isNegation(node Node) bool {
	u, ok := node.(*UnaryOp)
	return ok && u.Operator.Kind == TokenMinus
}
