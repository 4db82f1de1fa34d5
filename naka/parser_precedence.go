package naka

const (
	precSum = iota + 1
	precProduct
	precPrefix
)

var precedences = map[TokenKind]int{
	TokenPlus:  precSum,
	TokenMinus: precSum,
	TokenStar:  precProduct,
	TokenSlash: precProduct,
}

var (
	sumOperators     = []TokenKind{TokenPlus, TokenMinus}
	productOperators = []TokenKind{TokenStar, TokenSlash}
	signOperators    = []TokenKind{TokenPlus, TokenMinus}
)

func precedenceOf(node Node) int {
	switch n := node.(type) {
	case *BinaryOp:
		return precedences[n.Operator.Kind]
	case *UnaryOp:
		return precPrefix
	default:
		return precPrefix + 1
	}
}
