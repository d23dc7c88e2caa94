package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

const modusPonens = `\begin{nd}
    \hypo {1} { p }
    \hypo {2} { p \rightarrow q }
    \have {3} { q }
\end{nd}
`
