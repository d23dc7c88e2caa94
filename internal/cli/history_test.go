package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ndfmt/internal/ir"
)

func TestHistoryEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "renders.db")

	stdout, _, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No renders recorded")
}

func TestHistoryRequiresDatabase(t *testing.T) {
	_, _, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}

func TestHistoryListsRenders(t *testing.T) {
	db := filepath.Join(t.TempDir(), "renders.db")

	_, _, err := execute(t, "render", "--db", db, testdata("document.json"))
	require.NoError(t, err)
	_, _, err = execute(t, "render", "--db", db, testdata("modus_ponens.yaml"))
	require.NoError(t, err)

	stdout, _, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "SEQ")
	assert.Contains(t, stdout, "modus_ponens.yaml")
	assert.Contains(t, stdout, "document.json")

	stdout, _, err = execute(t, "--format", "json", "history", "--db", db, "--limit", "1")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []ir.Render `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(3), resp.Data[0].Seq)
	assert.Equal(t, testdata("modus_ponens.yaml"), resp.Data[0].Source)
	assert.Equal(t, 3, resp.Data[0].LineCount)
	assert.Equal(t, ir.FormatVersion, resp.Data[0].FormatVersion)
}
