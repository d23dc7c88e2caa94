package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ndfmt", cmd.Use)
	assert.Contains(t, cmd.Long, "natural deduction")
	assert.Contains(t, cmd.Version, "format 1")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"render", "expr", "check", "history"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestRenderCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	renderCmd, _, err := cmd.Find([]string{"render"})
	require.NoError(t, err)

	outputFlag := renderCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	padFlag := renderCmd.Flags().Lookup("pad")
	require.NotNil(t, padFlag)
	assert.Equal(t, "4", padFlag.DefValue)

	initialFlag := renderCmd.Flags().Lookup("initial-padding")
	require.NotNil(t, initialFlag)
	assert.Equal(t, "1", initialFlag.DefValue)

	dbFlag := renderCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	diffFlag := checkCmd.Flags().Lookup("diff")
	require.NotNil(t, diffFlag)
	assert.Equal(t, "d", diffFlag.Shorthand)
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	limitFlag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "20", limitFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "render", testdata("modus_ponens.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "render", testdata("modus_ponens.yaml"))
	require.NoError(t, err)
	assert.Equal(t, modusPonens, stdout)
	assert.Contains(t, stderr, "tree loaded")
	assert.Contains(t, stderr, "level=DEBUG")
}
