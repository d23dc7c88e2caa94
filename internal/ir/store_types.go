package ir

// NOTE: Render is a store-layer record, not part of the formula IR.

// Render is one logged rendering of one proof.
type Render struct {
	ID            string `json:"id"`             // UUIDv7
	Seq           int64  `json:"seq"`            // Logical order in the log
	RenderKey     string `json:"render_key"`     // RenderKey of the proof tree and options
	TreeHash      string `json:"tree_hash"`      // TreeHash of the proof tree
	Source        string `json:"source"`         // Tree file the proof came from
	ProofIndex    int    `json:"proof_index"`    // 1-based position in that file
	LineCount     int    `json:"line_count"`     // Numbered lines in the proof
	MaxDepth      int    `json:"max_depth"`      // Deepest box nesting
	FormatVersion string `json:"format_version"` // FormatVersion at render time
	Output        string `json:"output"`         // Rendered nd environment
}
