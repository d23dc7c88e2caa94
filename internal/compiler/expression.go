package compiler

import (
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/ndfmt/internal/ir"
	"github.com/roach88/ndfmt/internal/syntax"
)

// CompileExpression lowers an "expression" node into an ir.Expression.
//
// The node must be free of parse errors. Operands are located with
// syntax.NextChild, so comments may appear between any two of them.
func CompileExpression(n *syntax.Node) (ir.Expression, error) {
	if !n.Is(syntax.TypeExpression) {
		return nil, structuralError(n, "", "expected expression node")
	}
	if n.HasError() {
		return nil, parseError(n)
	}
	return compileWrapped(n)
}

// compileWrapped unwraps an expression node to its single significant child.
func compileWrapped(n *syntax.Node) (ir.Expression, error) {
	c, err := requireChild(n, 0, "body")
	if err != nil {
		return nil, err
	}
	return compileNode(c.Node)
}

func compileNode(n *syntax.Node) (ir.Expression, error) {
	switch n.Type {
	case syntax.TypeExpression:
		// Parenthesized sub-expression.
		return compileWrapped(n)
	case syntax.TypeVariable:
		v, err := compileVar(n)
		if err != nil {
			return nil, err
		}
		return v, nil
	case syntax.TypeFunction:
		return compileFunc(n)
	case syntax.TypeTrue:
		return ir.True{}, nil
	case syntax.TypeFalse:
		return ir.False{}, nil
	case syntax.TypeNot:
		return compileNot(n)
	case syntax.TypeAnd, syntax.TypeOr, syntax.TypeImplies, syntax.TypeIff:
		return compileBinary(n)
	case syntax.TypeForall, syntax.TypeExists:
		return compileQuantifier(n)
	default:
		return nil, structuralError(n, "", "unexpected node in expression")
	}
}

// compileVar reads a variable (or function name) from its source text.
// Names are NFC-normalized so that rendering agrees with ir.TreeHash and
// ir.RenderKey, which hash identifiers in NFC.
func compileVar(n *syntax.Node) (ir.Var, error) {
	if n.Text == "" {
		return ir.Var{}, structuralError(n, "text", "identifier is empty")
	}
	return ir.Var{Name: norm.NFC.String(n.Text)}, nil
}

func compileFunc(n *syntax.Node) (ir.Expression, error) {
	nameChild, ok := syntax.TargetChild(n, syntax.TypeFunctionName, 0)
	if !ok {
		return nil, structuralError(n, "function_name", "cannot find function name")
	}
	name, err := compileVar(nameChild.Node)
	if err != nil {
		return nil, err
	}

	fn := ir.Func{Name: name}
	if bodyChild, ok := syntax.NextChild(n, nameChild.Index+1); ok {
		fn.Body, err = compileNode(bodyChild.Node)
		if err != nil {
			return nil, err
		}
	}
	return fn, nil
}

func compileNot(n *syntax.Node) (ir.Expression, error) {
	c, err := requireChild(n, 0, "body")
	if err != nil {
		return nil, err
	}
	body, err := compileNode(c.Node)
	if err != nil {
		return nil, err
	}
	return ir.Not{Body: body}, nil
}

func compileBinary(n *syntax.Node) (ir.Expression, error) {
	leftChild, err := requireChild(n, 0, "left")
	if err != nil {
		return nil, err
	}
	rightChild, err := requireChild(n, leftChild.Index+1, "right")
	if err != nil {
		return nil, err
	}

	left, err := compileNode(leftChild.Node)
	if err != nil {
		return nil, err
	}
	right, err := compileNode(rightChild.Node)
	if err != nil {
		return nil, err
	}

	switch n.Type {
	case syntax.TypeAnd:
		return ir.And{Left: left, Right: right}, nil
	case syntax.TypeOr:
		return ir.Or{Left: left, Right: right}, nil
	case syntax.TypeImplies:
		return ir.Implies{Left: left, Right: right}, nil
	default:
		return ir.Iff{Left: left, Right: right}, nil
	}
}

func compileQuantifier(n *syntax.Node) (ir.Expression, error) {
	varChild, ok := syntax.TargetChild(n, syntax.TypeVariable, 0)
	if !ok {
		return nil, structuralError(n, "variable", "could not find introduced %s variable", n.Type)
	}
	variable, err := compileVar(varChild.Node)
	if err != nil {
		return nil, err
	}

	bodyChild, err := requireChild(n, varChild.Index+1, "body")
	if err != nil {
		return nil, err
	}
	body, err := compileNode(bodyChild.Node)
	if err != nil {
		return nil, err
	}

	if n.Type == syntax.TypeForall {
		return ir.Forall{Variable: variable, Body: body}, nil
	}
	return ir.Exists{Variable: variable, Body: body}, nil
}
