package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"rsc.io/diff"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	LayoutOptions
	Diff bool
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Source   string `json:"source"`
	Expected string `json:"expected"`
	Match    bool   `json:"match"`
	Diff     string `json:"diff,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <tree-file> <tex-file>",
		Short: "Verify that a LaTeX file matches the rendered proofs",
		Long: `Render a tree file and compare the result with an existing LaTeX file,
byte for byte, as "render -o" would have written it.

Exits with status 1 when the file differs.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0], args[1])
		},
	}

	addLayoutFlags(cmd, &opts.LayoutOptions)
	cmd.Flags().BoolVarP(&opts.Diff, "diff", "d", false, "print a diff of the file against the rendered output")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, treePath, texPath string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	layout := opts.options()
	if err := layout.Validate(); err != nil {
		return formatter.FailCode(ExitCommandError, ErrCodeInvalidOptions, err)
	}

	root, err := LoadTree(treePath)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	want, err := os.ReadFile(texPath)
	if err != nil {
		code := ErrCodeReadFailed
		if os.IsNotExist(err) {
			code = ErrCodeNotFound
		}
		return formatter.FailCode(ExitCommandError, code, err)
	}

	r := &renderer{opts: layout, source: treePath}
	proofs, err := r.renderDocument(cmd.Context(), root)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	got := joinProofs(proofs)

	result := CheckResult{Source: treePath, Expected: texPath, Match: got == string(want)}
	if !result.Match && opts.Diff {
		result.Diff = diff.Format(string(want), got)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Match {
		fmt.Fprintf(formatter.Writer, "✓ %s matches %s\n", texPath, treePath)
	} else {
		fmt.Fprintf(formatter.Writer, "✗ %s differs from rendered %s\n", texPath, treePath)
		if result.Diff != "" {
			fmt.Fprint(formatter.Writer, result.Diff)
		}
	}

	if !result.Match {
		return NewExitError(ExitFailure, fmt.Sprintf("%s differs from rendered output", texPath))
	}
	return nil
}
