package ir

// Version constants for the render log and the binary.
const (
	// FormatVersion changes whenever rendering output changes for the same
	// input, so cached renders from older versions are not reused.
	FormatVersion = "1"

	// Version is the ndfmt release version.
	Version = "0.1.0"
)
