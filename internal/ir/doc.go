// Package ir provides the typed intermediate representation of ndfmt.
//
// It holds the logical Expression AST, the Fitch ProofLine sequence built
// from a proof's block structure, and the canonical tree encoding used for
// content-addressed identity.
//
// Key design constraints:
//   - Expression and ProofLine are sealed interfaces; consumers dispatch with
//     a single type switch
//   - Expressions are never mutated after construction
//   - Proof lines carry Snapshot values, never a pointer to the running counter
//
// ir imports only internal/syntax, which imports nothing internal.
package ir
