package naka

import "errors"

func addNumbers(left, right Number) Number {
	if left.IsInt() && right.IsInt() {
		return NewInt(left.Int() + right.Int())
	}
	return NewFloat(left.Float() + right.Float())
}

func subtractNumbers(left, right Number) Number {
	if left.IsInt() && right.IsInt() {
		return NewInt(left.Int() - right.Int())
	}
	return NewFloat(left.Float() - right.Float())
}

func multiplyNumbers(left, right Number) Number {
	if left.IsInt() && right.IsInt() {
		return NewInt(left.Int() * right.Int())
	}
	return NewFloat(left.Float() * right.Float())
}

// divideNumbers always yields a float; 7 / 2 is 3.5.
func divideNumbers(left, right Number) (Number, error) {
	if right.IsZero() {
		return Number{}, errDivisionByZero
	}
	return NewFloat(left.Float() / right.Float()), nil
}

func negateNumber(n Number) Number {
	if n.IsInt() {
		return NewInt(-n.Int())
	}
	return NewFloat(-n.Float())
}

var errDivisionByZero = errors.New("division by zero")
