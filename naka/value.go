package naka

import (
	"math"
	"strconv"
	"strings"
)

// NumberKind distinguishes integer and floating-point numbers.
type NumberKind int

const (
	IntNumber NumberKind = iota
	FloatNumber
)

func (k NumberKind) String() string {
	switch k {
	case IntNumber:
		return "int"
	case FloatNumber:
		return "float"
	default:
		return "unknown"
	}
}

// Number is the result of evaluating an expression. It keeps the integer
// or floating-point subtype of the literals it was computed from.
type Number struct {
	kind NumberKind
	i    int64
	f    float64
}

func NewInt(v int64) Number     { return Number{kind: IntNumber, i: v} }
func NewFloat(v float64) Number { return Number{kind: FloatNumber, f: v} }

func (n Number) Kind() NumberKind { return n.kind }
func (n Number) IsInt() bool      { return n.kind == IntNumber }

// Int returns the value truncated to an integer.
func (n Number) Int() int64 {
	if n.kind == FloatNumber {
		return int64(n.f)
	}
	return n.i
}

// Float returns the value as a float64.
func (n Number) Float() float64 {
	if n.kind == IntNumber {
		return float64(n.i)
	}
	return n.f
}

func (n Number) IsZero() bool {
	if n.kind == IntNumber {
		return n.i == 0
	}
	return n.f == 0
}

func (n Number) Equal(other Number) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == IntNumber {
		return n.i == other.i
	}
	return n.f == other.f || (math.IsNaN(n.f) && math.IsNaN(other.f))
}

// String renders the number as source text. Finite floats always carry a
// decimal point so that the output lexes back as a FLOAT.
func (n Number) String() string {
	if n.kind == IntNumber {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'f', -1, 64)
	if math.IsInf(n.f, 0) || math.IsNaN(n.f) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
