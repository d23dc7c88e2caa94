package testutil

import "github.com/roach88/ndfmt/internal/syntax"

// Builders for syntax trees shaped like the proof grammar's output.
// Operand helpers (Var, And, ...) build bare operand nodes; wrap them with
// Expr to get the "expression" node a proof line or CompileExpression expects.

// Expr wraps an operand in an expression node.
func Expr(inner *syntax.Node) *syntax.Node {
	return syntax.New(syntax.TypeExpression, inner)
}

// Var builds a variable node.
func Var(name string) *syntax.Node {
	return syntax.Leaf(syntax.TypeVariable, name)
}

// Func builds a function application. body may be nil.
func Func(name string, body *syntax.Node) *syntax.Node {
	n := syntax.New(syntax.TypeFunction, syntax.Leaf(syntax.TypeFunctionName, name))
	if body != nil {
		n.Children = append(n.Children, body)
	}
	return n
}

func True() *syntax.Node  { return syntax.New(syntax.TypeTrue) }
func False() *syntax.Node { return syntax.New(syntax.TypeFalse) }

func Not(body *syntax.Node) *syntax.Node { return syntax.New(syntax.TypeNot, body) }

func And(l, r *syntax.Node) *syntax.Node     { return syntax.New(syntax.TypeAnd, l, r) }
func Or(l, r *syntax.Node) *syntax.Node      { return syntax.New(syntax.TypeOr, l, r) }
func Implies(l, r *syntax.Node) *syntax.Node { return syntax.New(syntax.TypeImplies, l, r) }
func Iff(l, r *syntax.Node) *syntax.Node     { return syntax.New(syntax.TypeIff, l, r) }

func Forall(v string, body *syntax.Node) *syntax.Node {
	return syntax.New(syntax.TypeForall, Var(v), body)
}

func Exists(v string, body *syntax.Node) *syntax.Node {
	return syntax.New(syntax.TypeExists, Var(v), body)
}

// Comment builds a comment node, which the compiler skips everywhere.
func Comment(text string) *syntax.Node {
	return syntax.Leaf(syntax.TypeComment, text)
}

// Proof builds a proof whose body is a block with the given lines.
func Proof(lines ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.TypeProof, Block(lines...))
}

// Block builds a (sub)proof block.
func Block(lines ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.TypeBlock, lines...)
}

// Hypothesis builds a hypothesis line from operands; each is wrapped in an
// expression node.
func Hypothesis(operands ...*syntax.Node) *syntax.Node {
	n := syntax.New(syntax.TypeHypothesis)
	for _, o := range operands {
		n.Children = append(n.Children, Expr(o))
	}
	return n
}

// Have builds a derived line from an operand.
func Have(operand *syntax.Node) *syntax.Node {
	return Expr(operand)
}

// Guard builds a guard clause introducing the named variables.
func Guard(names ...string) *syntax.Node {
	n := syntax.New(syntax.TypeGuard)
	for _, name := range names {
		n.Children = append(n.Children, Var(name))
	}
	return n
}
