// Package harness runs golden fixtures through the compile and render
// pipeline.
//
// # Fixture Format
//
// Fixtures are YAML files with the following structure:
//
//	name: modus_ponens
//	description: "p, p -> q |- q"
//	kind: proof            # proof | expression | document
//	options:               # optional, defaults to pad 4, initial 1
//	  pad_length: 2
//	  initial_padding: 0
//	tree:
//	  type: proof
//	  children: [...]
//	assertions:
//	  - type: line_count
//	    count: 3
//	  - type: contains
//	    text: '\have {3} { q }'
//
// A fixture that sets error expects compilation to fail with a structural
// error whose message contains that text; no output is produced.
//
// # Assertion Types
//
//   - line_count: the proof (or all proofs of a document) has exactly count numbered lines
//   - max_depth: the deepest box nesting equals count
//   - contains: the output contains text
//   - not_contains: the output does not contain text
//
// # Golden Files
//
// RunWithGolden compares the output with testdata/golden/<name>.golden.
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
