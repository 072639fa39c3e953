package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/securecheck/securecheck-webserver/internal/models"
)

// printQueryResult prints a result as an aligned table.
func printQueryResult(out io.Writer, result *models.QueryResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(result.Columns, "\t"))

	separators := make([]string, len(result.Columns))
	for i, col := range result.Columns {
		separators[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range result.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n(%d rows)\n", len(result.Rows))
	return nil
}
