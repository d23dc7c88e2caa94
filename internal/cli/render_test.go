package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ndfmt/internal/store"
	"github.com/roach88/ndfmt/internal/testutil"
)

func TestRenderYAML(t *testing.T) {
	stdout, _, err := execute(t, "render", testdata("modus_ponens.yaml"))
	require.NoError(t, err)
	assert.Equal(t, modusPonens, stdout)
}

func TestRenderCUE(t *testing.T) {
	stdout, _, err := execute(t, "render", testdata("generalize.cue"))
	require.NoError(t, err)

	want := `\begin{nd}
    \hypo {1} { \forall x . P(x) }
    \open[y]
        \have {2} { P(y) }
    \close
    \have {3} { \forall y . P(y) }
\end{nd}
`
	assert.Equal(t, want, stdout)
}

func TestRenderDocument(t *testing.T) {
	stdout, _, err := execute(t, "render", testdata("document.json"))
	require.NoError(t, err)

	want := `\begin{nd}
    \open
        \hypo {1} { a }
    \close
    \have {2} { a \rightarrow a }
\end{nd}

\begin{nd}
    \hypo {1} { T }
\end{nd}
`
	assert.Equal(t, want, stdout)
}

func TestRenderCustomPadding(t *testing.T) {
	stdout, _, err := execute(t, "render", "--pad", "2", "--initial-padding", "0", testdata("modus_ponens.yaml"))
	require.NoError(t, err)

	want := `\begin{nd}
\hypo {1} { p }
\hypo {2} { p \rightarrow q }
\have {3} { q }
\end{nd}
`
	assert.Equal(t, want, stdout)
}

func TestRenderJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "render", testdata("document.json"))
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   RenderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Proofs, 2)

	first := resp.Data.Proofs[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, first.Lines)
	assert.Equal(t, 1, first.Depth)
	assert.False(t, first.Cached)
	assert.Contains(t, first.Output, `\have {2} { a \rightarrow a }`)

	assert.Equal(t, 2, resp.Data.Proofs[1].Index)
}

func TestRenderOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "proof.tex")

	stdout, _, err := execute(t, "render", "-o", out, testdata("modus_ponens.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Rendered 1 proof(s)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, modusPonens, string(data))
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "missing file",
			args:     []string{"render", testdata("nope.yaml")},
			wantCode: ErrCodeNotFound,
			wantMsg:  "tree file not found",
		},
		{
			name:     "missing proof body",
			args:     []string{"render", testdata("missing_body.yaml")},
			wantCode: ErrCodeStructural,
			wantMsg:  "3:1: proof.block: missing proof body",
		},
		{
			name:     "parse error",
			args:     []string{"render", testdata("parse_error.yaml")},
			wantCode: ErrCodeStructural,
			wantMsg:  "2:5: proof: parse error",
		},
		{
			name:     "expression is not a document",
			args:     []string{"render", testdata("formula.yaml")},
			wantCode: ErrCodeStructural,
			wantMsg:  "document contains no proofs",
		},
		{
			name:     "negative padding",
			args:     []string{"render", "--pad=-1", testdata("modus_ponens.yaml")},
			wantCode: ErrCodeInvalidOptions,
			wantMsg:  "pad length must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--format", "json"}, tt.args...)
			stdout, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMsg)
		})
	}
}

func TestRenderErrorText(t *testing.T) {
	stdout, _, err := execute(t, "render", testdata("missing_body.yaml"))
	require.Error(t, err)
	assert.Contains(t, stdout, "Error [E201]")
	assert.NotContains(t, stdout, `\begin{nd}`)
}

func TestRenderWithRenderLog(t *testing.T) {
	db := filepath.Join(t.TempDir(), "renders.db")
	ids := testutil.NewSequenceIDGenerator("render")

	run := func() RenderResult {
		t.Helper()
		cmd := newRenderCommand(&RootOptions{Format: "json"}, ids)
		stdout := &bytes.Buffer{}
		cmd.SetOut(stdout)
		cmd.SetArgs([]string{"--db", db, testdata("document.json")})
		require.NoError(t, cmd.Execute())

		var resp struct {
			Data RenderResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
		return resp.Data
	}

	first := run()
	require.Len(t, first.Proofs, 2)
	assert.False(t, first.Proofs[0].Cached)
	assert.False(t, first.Proofs[1].Cached)

	second := run()
	require.Len(t, second.Proofs, 2)
	assert.True(t, second.Proofs[0].Cached)
	assert.True(t, second.Proofs[1].Cached)
	assert.Equal(t, first.Proofs[0].Output, second.Proofs[0].Output)
	assert.Equal(t, first.Proofs[1].Lines, second.Proofs[1].Lines)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	renders, err := st.ListRenders(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, renders, 2)
	assert.Equal(t, "render-0002", renders[0].ID)
	assert.Equal(t, 2, renders[0].ProofIndex)
	assert.Equal(t, "render-0001", renders[1].ID)
	assert.Equal(t, testdata("document.json"), renders[1].Source)
}

func TestRenderLogKeyedByLayout(t *testing.T) {
	db := filepath.Join(t.TempDir(), "renders.db")

	_, _, err := execute(t, "render", "--db", db, testdata("modus_ponens.yaml"))
	require.NoError(t, err)

	stdout, _, err := execute(t, "--format", "json", "render", "--db", db, "--pad", "2", testdata("modus_ponens.yaml"))
	require.NoError(t, err)

	var resp struct {
		Data RenderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data.Proofs, 1)
	assert.False(t, resp.Data.Proofs[0].Cached)
	assert.Contains(t, resp.Data.Proofs[0].Output, "  \\hypo {1} { p }")
}
