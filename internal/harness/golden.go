package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs a fixture, fails the test if its expectations do not
// hold, and compares the output against testdata/golden/{fixture.Name}.golden.
// Error fixtures are compared as "error: <message>".
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, fixture *Fixture) error {
	t.Helper()

	result, err := Run(fixture)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	AssertGolden(t, fixture.Name, result)
	return nil
}

// AssertGolden compares an existing result against a golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, result.snapshot())
}
