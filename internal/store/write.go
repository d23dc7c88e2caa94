package store

import (
	"context"
	"fmt"

	"github.com/roach88/ndfmt/internal/ir"
)

// WriteRender inserts a render record.
// Uses ON CONFLICT DO NOTHING for idempotency: a second render of the same
// render key, or a reused ID, is silently ignored. The first render wins.
func (s *Store) WriteRender(ctx context.Context, r ir.Render) error {
	if r.ID == "" {
		return fmt.Errorf("write render: id is required")
	}
	if r.RenderKey == "" {
		return fmt.Errorf("write render: render key is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO renders
		(id, seq, render_key, tree_hash, source, proof_index, line_count, max_depth, format_version, output)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		r.ID,
		r.Seq,
		r.RenderKey,
		r.TreeHash,
		r.Source,
		r.ProofIndex,
		r.LineCount,
		r.MaxDepth,
		r.FormatVersion,
		r.Output,
	)
	if err != nil {
		return fmt.Errorf("write render: %w", err)
	}

	return nil
}

// NextSeq returns the seq the next written render should carry.
func (s *Store) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM renders`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}
