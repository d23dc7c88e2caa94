package syntax

import "fmt"

// Node tags produced by the proof grammar.
const (
	TypeSourceFile   = "source_file"
	TypeProof        = "proof"
	TypeBlock        = "block"
	TypeGuard        = "guard"
	TypeHypothesis   = "hypothesis"
	TypeExpression   = "expression"
	TypeVariable     = "variable"
	TypeFunction     = "function"
	TypeFunctionName = "function_name"
	TypeTrue         = "true"
	TypeFalse        = "false"
	TypeNot          = "not"
	TypeAnd          = "and"
	TypeOr           = "or"
	TypeImplies      = "implies"
	TypeIff          = "iff"
	TypeForall       = "forall"
	TypeExists       = "exists"
	TypeComment      = "comment"

	// TypeError is the tag the parser gives to text it could not parse.
	TypeError = "ERROR"
)

// Node is a named node of a parsed proof script.
//
// Row and Column are 1-based; zero means the position is unknown.
type Node struct {
	Type     string  `yaml:"type" json:"type"`
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`
	Missing  bool    `yaml:"missing,omitempty" json:"missing,omitempty"`
	Row      int     `yaml:"row,omitempty" json:"row,omitempty"`
	Column   int     `yaml:"column,omitempty" json:"column,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Pos is a source position inside the proof script.
type Pos struct {
	Row    int
	Column int
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool {
	return p.Row > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// New creates an interior node with the given children.
func New(typ string, children ...*Node) *Node {
	return &Node{Type: typ, Children: children}
}

// Leaf creates a node carrying source text, such as a variable.
func Leaf(typ, text string) *Node {
	return &Node{Type: typ, Text: text}
}

// Pos returns the node's source position.
func (n *Node) Pos() Pos {
	if n == nil {
		return Pos{}
	}
	return Pos{Row: n.Row, Column: n.Column}
}

// Is reports whether the node carries the given tag.
func (n *Node) Is(typ string) bool {
	return n != nil && n.Type == typ
}

// HasError reports whether the node or any descendant is an ERROR node or a
// node the parser inserted to recover (missing).
func (n *Node) HasError() bool {
	return n.FirstError() != nil
}

// FirstError returns the first ERROR or missing node in document order, or
// nil when the tree is clean.
func (n *Node) FirstError() *Node {
	if n == nil {
		return nil
	}
	if n.Type == TypeError || n.Missing {
		return n
	}
	for _, c := range n.Children {
		if e := c.FirstError(); e != nil {
			return e
		}
	}
	return nil
}

// String renders the node as a tree-sitter style S-expression. Leaf text is
// quoted so that variable names survive in debug output.
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	buf := make([]byte, 0, 64)
	return string(n.appendSexp(buf))
}

func (n *Node) appendSexp(buf []byte) []byte {
	buf = append(buf, '(')
	if n.Missing {
		buf = append(buf, "MISSING "...)
	}
	buf = append(buf, n.Type...)
	if n.Text != "" {
		buf = fmt.Appendf(buf, " %q", n.Text)
	}
	for _, c := range n.Children {
		buf = append(buf, ' ')
		buf = c.appendSexp(buf)
	}
	return append(buf, ')')
}
