package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Rendered output for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Output != "" {
		fmt.Fprintf(&buf, "\nOutput:\n%s\n", e.Output)
	}
	return buf.String()
}

func evaluateAssertion(r *Result, a Assertion) error {
	switch a.Type {
	case AssertLineCount:
		return assertCount(r, a, r.LineCount, "numbered lines")
	case AssertMaxDepth:
		return assertCount(r, a, r.MaxDepth, "box depth")
	case AssertContains:
		if !strings.Contains(r.Output, a.Text) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("output containing %q", a.Text),
				Actual:   "not found",
				Output:   r.Output,
			}
		}
	case AssertNotContains:
		if strings.Contains(r.Output, a.Text) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("output without %q", a.Text),
				Actual:   "found",
				Output:   r.Output,
			}
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

func assertCount(r *Result, a Assertion, got int, what string) error {
	if got == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%d %s", a.Count, what),
		Actual:   fmt.Sprintf("%d %s", got, what),
		Output:   r.Output,
	}
}
