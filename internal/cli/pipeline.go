package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/ndfmt/internal/compiler"
	"github.com/roach88/ndfmt/internal/ir"
	"github.com/roach88/ndfmt/internal/render"
	"github.com/roach88/ndfmt/internal/store"
	"github.com/roach88/ndfmt/internal/syntax"
)

// RenderedProof is one proof of a tree file after rendering.
type RenderedProof struct {
	Index  int    `json:"index"` // 1-based position in the document
	Lines  int    `json:"lines"`
	Depth  int    `json:"depth"`
	Cached bool   `json:"cached,omitempty"`
	Output string `json:"output"`
}

// renderer renders the proofs of one document, consulting the render log
// when one is configured.
type renderer struct {
	opts   render.Options
	source string
	store  *store.Store       // nil disables the render log
	ids    store.IDGenerator // used only with store
}

// renderDocument renders every proof below root in document order.
// Errors from proof i are wrapped as "proof i: ...", matching
// compiler.CompileDocument. New renders reach the render log only after
// every proof of the document has rendered.
func (r *renderer) renderDocument(ctx context.Context, root *syntax.Node) ([]RenderedProof, error) {
	nodes := compiler.Proofs(root)
	if len(nodes) == 0 {
		// Reports the structural problem.
		_, err := compiler.CompileDocument(root)
		return nil, err
	}

	out := make([]RenderedProof, 0, len(nodes))
	var pending []ir.Render
	for i, n := range nodes {
		rp, rec, err := r.renderProof(ctx, n, i+1)
		if err != nil {
			if len(nodes) == 1 && root == n {
				return nil, err
			}
			return nil, fmt.Errorf("proof %d: %w", i+1, err)
		}
		out = append(out, rp)
		if rec != nil {
			pending = append(pending, *rec)
		}
	}

	if err := r.record(ctx, pending); err != nil {
		return nil, err
	}
	return out, nil
}

// renderProof serves n from the render log or renders it. A fresh render
// made with a log attached also returns the record to write, without ID
// or Seq.
func (r *renderer) renderProof(ctx context.Context, n *syntax.Node, index int) (RenderedProof, *ir.Render, error) {
	if r.store == nil {
		rp, err := r.compileAndRender(n, index)
		return rp, nil, err
	}

	key, err := ir.RenderKey(n, r.opts.PadLength, r.opts.InitialPadding)
	if err != nil {
		return RenderedProof{}, nil, err
	}

	logged, found, err := r.store.LookupRender(ctx, key)
	if err != nil {
		return RenderedProof{}, nil, &storeError{err: err}
	}
	if found {
		slog.Debug("render cache hit", "source", r.source, "proof", index, "seq", logged.Seq)
		return RenderedProof{
			Index:  index,
			Lines:  logged.LineCount,
			Depth:  logged.MaxDepth,
			Cached: true,
			Output: logged.Output,
		}, nil, nil
	}

	rp, err := r.compileAndRender(n, index)
	if err != nil {
		return RenderedProof{}, nil, err
	}

	treeHash, err := ir.TreeHash(n)
	if err != nil {
		return RenderedProof{}, nil, err
	}
	return rp, &ir.Render{
		RenderKey:     key,
		TreeHash:      treeHash,
		Source:        r.source,
		ProofIndex:    index,
		LineCount:     rp.Lines,
		MaxDepth:      rp.Depth,
		FormatVersion: ir.FormatVersion,
		Output:        rp.Output,
	}, nil
}

// record writes new renders to the log in document order. A proof that
// appears twice in one document is written once.
func (r *renderer) record(ctx context.Context, pending []ir.Render) error {
	written := make(map[string]bool, len(pending))
	for _, rec := range pending {
		if written[rec.RenderKey] {
			continue
		}
		seq, err := r.store.NextSeq(ctx)
		if err != nil {
			return &storeError{err: err}
		}
		rec.ID = r.ids.Generate()
		rec.Seq = seq
		if err := r.store.WriteRender(ctx, rec); err != nil {
			return &storeError{err: err}
		}
		written[rec.RenderKey] = true
		slog.Debug("render logged", "source", r.source, "proof", rec.ProofIndex, "seq", seq, "id", rec.ID)
	}
	return nil
}

func (r *renderer) compileAndRender(n *syntax.Node, index int) (RenderedProof, error) {
	p, err := compiler.CompileProof(n)
	if err != nil {
		return RenderedProof{}, err
	}
	text, err := render.Proof(p, r.opts)
	if err != nil {
		return RenderedProof{}, err
	}
	return RenderedProof{
		Index:  index,
		Lines:  p.LineCount(),
		Depth:  p.MaxDepth(),
		Output: text,
	}, nil
}

// joinProofs is the text written for a whole document: proofs separated
// by a blank line, with a final newline.
func joinProofs(proofs []RenderedProof) string {
	parts := make([]string, len(proofs))
	for i, p := range proofs {
		parts[i] = p.Output
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// storeError marks a render log failure so it maps to ErrCodeStore.
type storeError struct {
	err error
}

func (e *storeError) Error() string { return fmt.Sprintf("render log: %v", e.err) }
func (e *storeError) Unwrap() error { return e.err }
