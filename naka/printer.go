package naka

import "strings"

// Format renders node as canonical source text. Parentheses are emitted
// only where dropping them would change the tree, so parsing the output
// yields an equivalent expression.
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *NumberLiteral:
		b.WriteString(n.Value().String())
	case *UnaryOp:
		b.WriteString(n.Operator.Kind.Symbol())
		writeOperand(b, n.Operand, precedenceOf(n.Operand) < precPrefix)
	case *BinaryOp:
		prec := precedences[n.Operator.Kind]
		writeOperand(b, n.Left, precedenceOf(n.Left) < prec)
		b.WriteString(" ")
		b.WriteString(n.Operator.Kind.Symbol())
		b.WriteString(" ")
		// Same-precedence chains associate left, so the right side needs
		// parentheses to keep its grouping.
		writeOperand(b, n.Right, precedenceOf(n.Right) <= prec)
	}
}

func writeOperand(b *strings.Builder, node Node, parens bool) {
	if parens {
		b.WriteString("(")
	}
	writeNode(b, node)
	if parens {
		b.WriteString(")")
	}
}
