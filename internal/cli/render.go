package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/ndfmt/internal/render"
	"github.com/roach88/ndfmt/internal/store"
)

// LayoutOptions holds the layout flags shared by render and check.
type LayoutOptions struct {
	PadLength      int
	InitialPadding int
}

func (o LayoutOptions) options() render.Options {
	return render.Options{PadLength: o.PadLength, InitialPadding: o.InitialPadding}
}

func addLayoutFlags(cmd *cobra.Command, o *LayoutOptions) {
	def := render.DefaultOptions()
	cmd.Flags().IntVar(&o.PadLength, "pad", def.PadLength, "spaces per indentation unit")
	cmd.Flags().IntVar(&o.InitialPadding, "initial-padding", def.InitialPadding, "indentation units before top-level lines")
}

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	LayoutOptions
	Output   string // output file path
	Database string // render log path (optional)

	ids store.IDGenerator
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Source string          `json:"source"`
	Output string          `json:"output_file,omitempty"`
	Proofs []RenderedProof `json:"proofs"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	return newRenderCommand(rootOpts, store.UUIDv7Generator{})
}

func newRenderCommand(rootOpts *RootOptions, ids store.IDGenerator) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts, ids: ids}

	cmd := &cobra.Command{
		Use:   "render <tree-file>",
		Short: "Render the proofs of a tree file as nd environments",
		Long: `Render every proof in a serialized syntax tree as a LaTeX nd environment.

Tree files are YAML, JSON or CUE. With --db, renders are recorded in a
SQLite render log and an identical proof rendered with identical layout
is served from the log without recompiling.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0])
		},
	}

	addLayoutFlags(cmd, &opts.LayoutOptions)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&opts.Database, "db", "", "render log database path")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions, path string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	layout := opts.options()
	if err := layout.Validate(); err != nil {
		return formatter.FailCode(ExitCommandError, ErrCodeInvalidOptions, err)
	}

	root, err := LoadTree(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	slog.Debug("tree loaded", "path", path, "root", root.Type)

	r := &renderer{opts: layout, source: path}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return formatter.FailCode(ExitCommandError, ErrCodeStore, err)
		}
		defer st.Close()

		r.store = st
		r.ids = opts.ids
	}

	proofs, err := r.renderDocument(cmd.Context(), root)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	text := joinProofs(proofs)
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(text), 0o644); err != nil {
			return formatter.FailCode(ExitCommandError, ErrCodeWriteFailed, fmt.Errorf("writing output file: %w", err))
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(RenderResult{Source: path, Output: opts.Output, Proofs: proofs})
	}

	if opts.Output != "" {
		fmt.Fprintf(formatter.Writer, "✓ Rendered %d proof(s) to %s\n", len(proofs), opts.Output)
		return nil
	}
	_, err = io.WriteString(formatter.Writer, text)
	return err
}
