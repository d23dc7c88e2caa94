package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ndfmt/internal/compiler"
	"github.com/roach88/ndfmt/internal/render"
)

// ExprResult is the JSON payload of the expr command.
type ExprResult struct {
	Kind    string `json:"kind"`
	Formula string `json:"formula"`
}

// NewExprCommand creates the expr command.
func NewExprCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expr <tree-file>",
		Short: "Render a single formula",
		Long: `Render the formula of a tree file whose root is an expression node.

The output is the LaTeX text that would appear inside a proof line.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpr(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func runExpr(cmd *cobra.Command, opts *RootOptions, path string) error {
	formatter := newFormatter(opts, cmd)

	root, err := LoadTree(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	e, err := compiler.CompileExpression(root)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	formula := render.Expression(e)
	if formatter.Format == "json" {
		return formatter.Success(ExprResult{Kind: e.Kind().String(), Formula: formula})
	}
	fmt.Fprintln(formatter.Writer, formula)
	return nil
}
