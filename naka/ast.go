package naka

import "fmt"

// Node is one node of a parsed expression. The set of implementations is
// closed: NumberLiteral, UnaryOp and BinaryOp.
type Node interface {
	Start() Position
	End() Position
	String() string
	exprNode()
}

// NumberLiteral wraps an INT or FLOAT token.
type NumberLiteral struct {
	Token Token
}

func (n *NumberLiteral) exprNode()       {}
func (n *NumberLiteral) Start() Position { return n.Token.Start }
func (n *NumberLiteral) End() Position   { return n.Token.End }
func (n *NumberLiteral) String() string  { return n.Token.String() }

// Value returns the literal's number.
func (n *NumberLiteral) Value() Number { return n.Token.Value }

// UnaryOp is a sign applied to an operand; Operator is PLUS or MINUS.
type UnaryOp struct {
	Operator Token
	Operand  Node
}

func (n *UnaryOp) exprNode()       {}
func (n *UnaryOp) Start() Position { return n.Operator.Start }
func (n *UnaryOp) End() Position   { return n.Operand.End() }
func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%s, %s)", n.Operator, n.Operand)
}

// BinaryOp applies one of the four arithmetic operators.
type BinaryOp struct {
	Operator Token
	Left     Node
	Right    Node
}

func (n *BinaryOp) exprNode()       {}
func (n *BinaryOp) Start() Position { return n.Left.Start() }
func (n *BinaryOp) End() Position   { return n.Right.End() }
func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s, %s, %s)", n.Left, n.Operator, n.Right)
}
