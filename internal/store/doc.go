// Package store provides the SQLite-backed render log for ndfmt.
//
// Every proof rendered with a database attached is recorded once, keyed by
// its render key (tree hash plus layout options). A later render of an
// identical tree with identical options is served from the log.
//
// # Critical Patterns
//
// Content-addressed identity
//   - render_key is UNIQUE; writes use ON CONFLICT DO NOTHING
//   - keys come from internal/ir/hash.go (canonical JSON, SHA-256 with
//     domain separation)
//
// Logical ordering
//   - seq INTEGER orders the log, never timestamps
//   - listings use ORDER BY seq DESC, id ASC COLLATE BINARY
//
// # Connection
//
// Each log is opened with journal_mode=WAL, synchronous=NORMAL and a
// 5 second busy timeout, over a single connection. Schema upgrades are
// tracked in PRAGMA user_version.
package store
