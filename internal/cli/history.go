package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/ndfmt/internal/ir"
	"github.com/roach88/ndfmt/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List renders recorded in a render log",
		Long: `List the renders recorded by "render --db", newest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "render log database path (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of renders to list (0 for all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.FailCode(ExitCommandError, ErrCodeStore, err)
	}
	defer st.Close()

	renders, err := st.ListRenders(cmd.Context(), opts.Limit)
	if err != nil {
		return formatter.FailCode(ExitCommandError, ErrCodeStore, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(renders)
	}

	if len(renders) == 0 {
		fmt.Fprintln(formatter.Writer, "No renders recorded")
		return nil
	}
	return writeHistoryTable(formatter, renders)
}

func writeHistoryTable(formatter *OutputFormatter, renders []ir.Render) error {
	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tSOURCE\tPROOF\tLINES\tDEPTH\tTREE")
	for _, r := range renders {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
			r.Seq, r.Source, r.ProofIndex, r.LineCount, r.MaxDepth, shortHash(r.TreeHash))
	}
	return tw.Flush()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
