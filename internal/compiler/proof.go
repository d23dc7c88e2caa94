package compiler

import (
	"github.com/roach88/ndfmt/internal/ir"
	"github.com/roach88/ndfmt/internal/syntax"
)

// CompileProof walks a "proof" node's block structure into Fitch lines.
//
// Lines are numbered from 1 in document order; only hypotheses and derived
// expressions consume a number. Each nested block becomes an Open/Close pair
// around its contents, one level deeper.
func CompileProof(n *syntax.Node) (*ir.Proof, error) {
	if !n.Is(syntax.TypeProof) {
		return nil, structuralError(n, "", "expected proof node")
	}
	if n.HasError() {
		return nil, parseError(n)
	}
	block, ok := syntax.TargetChild(n, syntax.TypeBlock, 0)
	if !ok {
		return nil, structuralError(n, "block", "missing proof body")
	}

	b := &proofBuilder{state: ir.Snapshot{Line: 1}}
	if err := b.block(block.Node); err != nil {
		return nil, err
	}
	return &ir.Proof{Lines: b.lines}, nil
}

// proofBuilder holds the running counter for one traversal of one proof.
// Lines receive copies of state, never a reference to it.
type proofBuilder struct {
	state ir.Snapshot
	lines []ir.ProofLine
}

func (b *proofBuilder) block(n *syntax.Node) error {
	for _, c := range syntax.SignificantChildren(n) {
		switch c.Type {
		case syntax.TypeGuard:
			if err := b.guard(c); err != nil {
				return err
			}
		case syntax.TypeHypothesis:
			if err := b.hypothesis(c); err != nil {
				return err
			}
		case syntax.TypeExpression:
			expr, err := CompileExpression(c)
			if err != nil {
				return err
			}
			b.lines = append(b.lines, &ir.Have{Snapshot: b.state, Expression: expr})
			b.state.Line++
		case syntax.TypeBlock:
			b.lines = append(b.lines, &ir.Open{Snapshot: b.state})
			b.state.Depth++
			if err := b.block(c); err != nil {
				return err
			}
			b.state.Depth--
			b.lines = append(b.lines, &ir.Close{Snapshot: b.state})
		}
	}
	return nil
}

func (b *proofBuilder) hypothesis(n *syntax.Node) error {
	for _, c := range syntax.SignificantChildren(n) {
		if c.Type != syntax.TypeExpression {
			continue
		}
		expr, err := CompileExpression(c)
		if err != nil {
			return err
		}
		b.lines = append(b.lines, &ir.Hypo{Snapshot: b.state, Expression: expr})
		b.state.Line++
	}
	return nil
}

// guard appends the guard's variables to the box opened by the previous line.
func (b *proofBuilder) guard(n *syntax.Node) error {
	var open *ir.Open
	if len(b.lines) > 0 {
		open, _ = b.lines[len(b.lines)-1].(*ir.Open)
	}
	if open == nil {
		return structuralError(n, "", "expected box opening before guard")
	}

	for _, c := range syntax.SignificantChildren(n) {
		if c.Type != syntax.TypeVariable {
			continue
		}
		v, err := compileVar(c)
		if err != nil {
			return err
		}
		open.Guards = append(open.Guards, v)
	}
	return nil
}
