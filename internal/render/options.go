package render

import "fmt"

// Options controls proof layout.
type Options struct {
	// PadLength is the width of one indentation unit, in spaces.
	PadLength int
	// InitialPadding is the number of units before top-level lines.
	InitialPadding int
}

// DefaultOptions returns the standard layout: top-level lines indented by
// one unit of four spaces.
func DefaultOptions() Options {
	return Options{PadLength: 4, InitialPadding: 1}
}

// Validate checks that the options describe a usable layout.
func (o Options) Validate() error {
	if o.PadLength < 0 {
		return fmt.Errorf("pad length must not be negative, got %d", o.PadLength)
	}
	if o.InitialPadding < 0 {
		return fmt.Errorf("initial padding must not be negative, got %d", o.InitialPadding)
	}
	return nil
}
