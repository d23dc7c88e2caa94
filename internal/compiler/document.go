package compiler

import (
	"fmt"

	"github.com/roach88/ndfmt/internal/ir"
	"github.com/roach88/ndfmt/internal/syntax"
)

// CompileDocument compiles every proof in a tree file.
//
// The root is either a single "proof" node or a container (normally
// "source_file") whose children include one or more proofs. Proofs are
// returned in document order. The first proof that fails aborts the whole
// document; its StructuralError is wrapped with the proof's index.
func CompileDocument(root *syntax.Node) ([]*ir.Proof, error) {
	if root.Is(syntax.TypeProof) {
		p, err := CompileProof(root)
		if err != nil {
			return nil, err
		}
		return []*ir.Proof{p}, nil
	}

	nodes := Proofs(root)
	if len(nodes) == 0 {
		return nil, structuralError(root, "proof", "document contains no proofs")
	}

	proofs := make([]*ir.Proof, 0, len(nodes))
	for i, n := range nodes {
		p, err := CompileProof(n)
		if err != nil {
			return nil, fmt.Errorf("proof %d: %w", i+1, err)
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

// Proofs returns the proof nodes of a document in order. A proof root is
// returned as the only element.
func Proofs(root *syntax.Node) []*syntax.Node {
	if root.Is(syntax.TypeProof) {
		return []*syntax.Node{root}
	}
	var out []*syntax.Node
	for i := 0; ; {
		c, ok := syntax.TargetChild(root, syntax.TypeProof, i)
		if !ok {
			return out
		}
		out = append(out, c.Node)
		i = c.Index + 1
	}
}
