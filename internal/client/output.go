package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type tableWriter struct {
	w *tabwriter.Writer
}

func newTableWriter(out io.Writer) *tableWriter {
	return &tableWriter{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
}

func (t *tableWriter) row(cells ...string) {
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t *tableWriter) flush() error {
	return t.w.Flush()
}

// print writes v as indented JSON when --json is set and renders table
// otherwise.
func (a *App) print(cmd *cobra.Command, v any, table func(w *tableWriter)) error {
	out := cmd.OutOrStdout()

	if a.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := newTableWriter(out)
	table(w)
	return w.flush()
}
