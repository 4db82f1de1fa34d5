package naka

import "fmt"

// Evaluate folds an expression tree into a number. Runtime failures are
// returned as *Error with the ErrArithmetic kind.
func Evaluate(node Node) (Number, error) {
	value, err := evaluate(node)
	if err != nil {
		return Number{}, err
	}
	return value, nil
}

func evaluate(node Node) (Number, *Error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return n.Value(), nil
	case *UnaryOp:
		return evalUnaryOp(n)
	case *BinaryOp:
		return evalBinaryOp(n)
	case nil:
		return Number{}, newError(ErrArithmetic, Position{}, Position{}, "cannot evaluate an empty expression")
	default:
		panic(fmt.Sprintf("naka: unexpected node %T", node))
	}
}

func evalUnaryOp(n *UnaryOp) (Number, *Error) {
	operand, err := evaluate(n.Operand)
	if err != nil {
		return Number{}, err
	}
	switch n.Operator.Kind {
	case TokenMinus:
		return negateNumber(operand), nil
	case TokenPlus:
		return operand, nil
	default:
		return Number{}, newError(ErrArithmetic, n.Start(), n.End(), "unsupported unary operator %s", n.Operator)
	}
}

func evalBinaryOp(n *BinaryOp) (Number, *Error) {
	left, err := evaluate(n.Left)
	if err != nil {
		return Number{}, err
	}
	right, err := evaluate(n.Right)
	if err != nil {
		return Number{}, err
	}

	switch n.Operator.Kind {
	case TokenPlus:
		return addNumbers(left, right), nil
	case TokenMinus:
		return subtractNumbers(left, right), nil
	case TokenStar:
		return multiplyNumbers(left, right), nil
	case TokenSlash:
		result, divErr := divideNumbers(left, right)
		if divErr != nil {
			return Number{}, newError(ErrArithmetic, n.Right.Start(), n.Right.End(), "%s", divErr)
		}
		return result, nil
	default:
		return Number{}, newError(ErrArithmetic, n.Start(), n.End(), "unsupported binary operator %s", n.Operator)
	}
}
