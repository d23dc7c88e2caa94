package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/ndfmt/internal/compiler"
	"github.com/roach88/ndfmt/internal/ir"
	"github.com/roach88/ndfmt/internal/render"
)

// Result is the outcome of running one fixture.
type Result struct {
	// Pass is true when the expected error (if any) occurred and every
	// assertion held.
	Pass bool

	// Output is the rendered text. Documents join their proofs with a
	// blank line. Empty when compilation failed.
	Output string

	// LineCount and MaxDepth summarize the compiled proofs. For documents
	// LineCount is the total and MaxDepth the maximum over all proofs.
	LineCount int
	MaxDepth  int

	// Err is the compile or render error, if one occurred.
	Err error

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string
}

func newResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Run compiles and renders a fixture and checks its expectations.
//
// The returned error is reserved for fixtures that cannot be run at all;
// a wrong or missing structural error is reported through Result.
func Run(f *Fixture) (*Result, error) {
	if err := validateFixture(f); err != nil {
		return nil, fmt.Errorf("invalid fixture %q: %w", f.Name, err)
	}

	result := newResult()
	result.Err = execute(f, result)

	switch {
	case f.Error != "" && result.Err == nil:
		result.AddError(fmt.Sprintf("expected error containing %q, got none", f.Error))
	case f.Error != "" && !compiler.IsStructuralError(result.Err):
		result.AddError(fmt.Sprintf("expected structural error, got %T: %v", result.Err, result.Err))
	case f.Error != "" && !strings.Contains(result.Err.Error(), f.Error):
		result.AddError(fmt.Sprintf("expected error containing %q, got %q", f.Error, result.Err.Error()))
	case f.Error == "" && result.Err != nil:
		result.AddError(fmt.Sprintf("unexpected error: %v", result.Err))
	case f.Error == "":
		for _, a := range f.Assertions {
			if err := evaluateAssertion(result, a); err != nil {
				result.AddError(err.Error())
			}
		}
	}

	return result, nil
}

func execute(f *Fixture, result *Result) error {
	switch f.Kind {
	case KindExpression:
		e, err := compiler.CompileExpression(f.Tree)
		if err != nil {
			return err
		}
		result.Output = render.Expression(e)
		return nil

	case KindProof:
		p, err := compiler.CompileProof(f.Tree)
		if err != nil {
			return err
		}
		return renderProofs(f, result, []*ir.Proof{p})

	case KindDocument:
		proofs, err := compiler.CompileDocument(f.Tree)
		if err != nil {
			return err
		}
		return renderProofs(f, result, proofs)
	}
	return fmt.Errorf("unknown kind %q", f.Kind)
}

func renderProofs(f *Fixture, result *Result, proofs []*ir.Proof) error {
	opts := f.RenderOptions()
	parts := make([]string, 0, len(proofs))
	for _, p := range proofs {
		text, err := render.Proof(p, opts)
		if err != nil {
			return err
		}
		parts = append(parts, text)
		result.LineCount += p.LineCount()
		result.MaxDepth = max(result.MaxDepth, p.MaxDepth())
	}
	result.Output = strings.Join(parts, "\n\n")
	return nil
}

// snapshot is the golden file content for a result.
func (r *Result) snapshot() []byte {
	if r.Err != nil {
		return []byte("error: " + r.Err.Error() + "\n")
	}
	return []byte(r.Output + "\n")
}
