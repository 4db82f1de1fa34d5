package naka

// ExportedPosition is the serialisable form of a Position.
type ExportedPosition struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// ExportedToken is the serialisable form of a Token.
type ExportedToken struct {
	Kind  string           `json:"kind" yaml:"kind"`
	Value string           `json:"value,omitempty" yaml:"value,omitempty"`
	Start ExportedPosition `json:"start" yaml:"start"`
	End   ExportedPosition `json:"end" yaml:"end"`
}

// ExportedNode is a plain tree mirroring an AST, for JSON and YAML output.
type ExportedNode struct {
	Type     string           `json:"type" yaml:"type"`
	Operator string           `json:"op,omitempty" yaml:"op,omitempty"`
	Value    string           `json:"value,omitempty" yaml:"value,omitempty"`
	Start    ExportedPosition `json:"start" yaml:"start"`
	End      ExportedPosition `json:"end" yaml:"end"`
	Operand  *ExportedNode    `json:"operand,omitempty" yaml:"operand,omitempty"`
	Left     *ExportedNode    `json:"left,omitempty" yaml:"left,omitempty"`
	Right    *ExportedNode    `json:"right,omitempty" yaml:"right,omitempty"`
}

func exportPosition(p Position) ExportedPosition {
	return ExportedPosition{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// ExportTokens converts tokens for encoding.
func ExportTokens(tokens []Token) []ExportedToken {
	out := make([]ExportedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = ExportedToken{
			Kind:  string(tok.Kind),
			Start: exportPosition(tok.Start),
			End:   exportPosition(tok.End),
		}
		if tok.IsLiteral() {
			out[i].Value = tok.Value.String()
		}
	}
	return out
}

// ExportTree converts an AST for encoding. A nil node exports as nil.
func ExportTree(node Node) *ExportedNode {
	switch n := node.(type) {
	case *NumberLiteral:
		return &ExportedNode{
			Type:  "number",
			Value: n.Value().String(),
			Start: exportPosition(n.Start()),
			End:   exportPosition(n.End()),
		}
	case *UnaryOp:
		return &ExportedNode{
			Type:     "unary",
			Operator: n.Operator.Kind.Symbol(),
			Start:    exportPosition(n.Start()),
			End:      exportPosition(n.End()),
			Operand:  ExportTree(n.Operand),
		}
	case *BinaryOp:
		return &ExportedNode{
			Type:     "binary",
			Operator: n.Operator.Kind.Symbol(),
			Start:    exportPosition(n.Start()),
			End:      exportPosition(n.End()),
			Left:     ExportTree(n.Left),
			Right:    ExportTree(n.Right),
		}
	default:
		return nil
	}
}
