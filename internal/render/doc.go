// Package render turns compiled ir values into Fitch-style LaTeX for the
// nd package.
//
// Expression renders a formula; Proof lays out a compiled proof as an nd
// environment with one line per proof line, indenting the contents of each
// box by one pad unit.
package render
