package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDGenerator generates predictable render IDs for tests:
// "<prefix>-0001", "<prefix>-0002", and so on.
//
// The same test run with a fresh generator produces byte-identical render
// logs, which keeps golden comparisons stable.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	seq    int
}

// NewSequenceIDGenerator creates a generator whose first ID ends in 0001.
// If prefix is empty, "test-render" is used.
func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	if prefix == "" {
		prefix = "test-render"
	}
	return &SequenceIDGenerator{prefix: prefix}
}

// Generate returns the next ID.
//
// Implements store.IDGenerator.
func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%04d", g.prefix, g.seq)
}

// Reset starts the sequence over. The next call to Generate ends in 0001.
func (g *SequenceIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
