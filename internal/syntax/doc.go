// Package syntax defines the syntax tree consumed by ndfmt.
//
// Trees are produced by an external tree-sitter grammar for natural-deduction
// proof scripts and handed to ndfmt already parsed, usually serialized to a
// YAML, JSON or CUE tree file. Only named nodes are kept; anonymous tokens
// (keywords, punctuation) never appear.
//
// This package imports nothing internal. The compiler walks these nodes with
// the scanning helpers in scan.go.
package syntax
