package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ndfmt/internal/render"
	"github.com/roach88/ndfmt/internal/syntax"
)

// Fixture kinds.
const (
	KindProof      = "proof"
	KindExpression = "expression"
	KindDocument   = "document"
)

// Fixture is one golden test case: a syntax tree and what rendering it
// should produce.
type Fixture struct {
	// Name identifies the fixture and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the fixture covers.
	Description string `yaml:"description"`

	// Kind selects the entry point: proof, expression or document.
	Kind string `yaml:"kind"`

	// Options overrides the default layout. Ignored for expressions.
	Options *LayoutOptions `yaml:"options,omitempty"`

	// Tree is the parser output to compile.
	Tree *syntax.Node `yaml:"tree"`

	// Error, when set, is a substring of the expected structural error.
	Error string `yaml:"error,omitempty"`

	// Assertions are checked against the result after a successful render.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// LayoutOptions mirrors render.Options in fixture files.
type LayoutOptions struct {
	PadLength      int `yaml:"pad_length"`
	InitialPadding int `yaml:"initial_padding"`
}

// RenderOptions returns the layout the fixture renders with.
func (f *Fixture) RenderOptions() render.Options {
	if f.Options == nil {
		return render.DefaultOptions()
	}
	return render.Options{PadLength: f.Options.PadLength, InitialPadding: f.Options.InitialPadding}
}

// Assertion checks a property of a fixture's result.
type Assertion struct {
	// Type is one of line_count, max_depth, contains, not_contains.
	Type string `yaml:"type"`

	// Count is the expected number (line_count, max_depth).
	Count int `yaml:"count,omitempty"`

	// Text is the expected substring (contains, not_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertLineCount   = "line_count"
	AssertMaxDepth    = "max_depth"
	AssertContains    = "contains"
	AssertNotContains = "not_contains"
)

// LoadFixture reads and parses a fixture YAML file.
// Unknown fields are rejected so typos do not silently disable checks.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixture Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateFixture(&fixture); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	return &fixture, nil
}

// validateFixture checks that required fields are present and valid.
func validateFixture(f *Fixture) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if f.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch f.Kind {
	case KindProof, KindExpression, KindDocument:
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", f.Kind)
	}

	if f.Tree == nil {
		return fmt.Errorf("tree is required")
	}
	if err := f.RenderOptions().Validate(); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	if f.Error != "" && len(f.Assertions) > 0 {
		return fmt.Errorf("assertions cannot be combined with an expected error")
	}

	for i, a := range f.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertLineCount, AssertMaxDepth:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertContains, AssertNotContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
