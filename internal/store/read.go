package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/ndfmt/internal/ir"
)

const renderColumns = `id, seq, render_key, tree_hash, source, proof_index, line_count, max_depth, format_version, output`

// LookupRender returns the render logged under key. found is false when
// there is none.
func (s *Store) LookupRender(ctx context.Context, key string) (r ir.Render, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+renderColumns+`
		FROM renders
		WHERE render_key = ?
	`, key)

	r, err = scanRender(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Render{}, false, nil
	}
	if err != nil {
		return ir.Render{}, false, fmt.Errorf("lookup render: %w", err)
	}
	return r, true, nil
}

// ListRenders returns up to limit renders, newest first.
// A limit of zero or less returns the whole log.
//
// Returns an empty slice (not nil) if the log is empty.
func (s *Store) ListRenders(ctx context.Context, limit int) ([]ir.Render, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+renderColumns+`
		FROM renders
		ORDER BY seq DESC, id COLLATE BINARY ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query renders: %w", err)
	}
	defer rows.Close()

	renders := []ir.Render{}
	for rows.Next() {
		r, err := scanRender(rows)
		if err != nil {
			return nil, err
		}
		renders = append(renders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renders: %w", err)
	}

	return renders, nil
}

// ListRendersByTree returns every render of the tree with the given hash,
// oldest first.
func (s *Store) ListRendersByTree(ctx context.Context, treeHash string) ([]ir.Render, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+renderColumns+`
		FROM renders
		WHERE tree_hash = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, treeHash)
	if err != nil {
		return nil, fmt.Errorf("query renders by tree: %w", err)
	}
	defer rows.Close()

	renders := []ir.Render{}
	for rows.Next() {
		r, err := scanRender(rows)
		if err != nil {
			return nil, err
		}
		renders = append(renders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renders by tree: %w", err)
	}

	return renders, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRender(row rowScanner) (ir.Render, error) {
	var r ir.Render
	err := row.Scan(
		&r.ID,
		&r.Seq,
		&r.RenderKey,
		&r.TreeHash,
		&r.Source,
		&r.ProofIndex,
		&r.LineCount,
		&r.MaxDepth,
		&r.FormatVersion,
		&r.Output,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("scan render: %w", err)
	}
	return r, nil
}
