package ir

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/ndfmt/internal/syntax"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainTree   = "ndfmt/tree/v1"
	DomainRender = "ndfmt/render/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// TreeHash computes the content-addressed identity of a syntax tree.
// Trees that differ only in source positions or in the Unicode normalization
// form of their text hash the same.
func TreeHash(n *syntax.Node) (string, error) {
	canonical, err := MarshalCanonicalTree(n)
	if err != nil {
		return "", fmt.Errorf("TreeHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTree, canonical), nil
}

// RenderKey identifies the rendering of a tree under given layout settings
// and the current FormatVersion. The same tree rendered with a different pad
// gets a different key.
func RenderKey(n *syntax.Node, padLength, initialPadding int) (string, error) {
	canonical, err := MarshalCanonicalTree(n)
	if err != nil {
		return "", fmt.Errorf("RenderKey: failed to marshal: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"format_version":%q,"options":{"initial_padding":%d,"pad_length":%d},"tree":`,
		FormatVersion, initialPadding, padLength)
	buf.Write(canonical)
	buf.WriteByte('}')

	return hashWithDomain(DomainRender, buf.Bytes()), nil
}

// MustTreeHash is like TreeHash but panics on error.
// Use only in tests or when the tree is known to be non-nil.
func MustTreeHash(n *syntax.Node) string {
	h, err := TreeHash(n)
	if err != nil {
		panic(err)
	}
	return h
}
