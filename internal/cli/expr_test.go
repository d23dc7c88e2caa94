package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deMorgan = `\lnot (p \land q) \leftrightarrow \lnot p \lor \lnot q`

func TestExprText(t *testing.T) {
	stdout, _, err := execute(t, "expr", testdata("formula.yaml"))
	require.NoError(t, err)
	assert.Equal(t, deMorgan+"\n", stdout)
}

func TestExprJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "expr", testdata("formula.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   ExprResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "iff", resp.Data.Kind)
	assert.Equal(t, deMorgan, resp.Data.Formula)
}

func TestExprRejectsProof(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "expr", testdata("modus_ponens.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeStructural, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "expected expression node")
}

func TestExprRequiresArgument(t *testing.T) {
	_, _, err := execute(t, "expr")
	require.Error(t, err)
}
