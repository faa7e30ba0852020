// Package render formats query results for terminal output.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sadopc/sqlrepl/internal/adapter"
)

// Format identifies an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

// Result writes res to w in the given format.
func Result(w io.Writer, res *adapter.Result, format Format) error {
	if format == FormatCSV {
		return CSV(w, res)
	}
	return Table(w, res)
}

// Table writes res as a bordered grid with a row-count footer. Statements
// that produce no row set print their status message instead.
func Table(w io.Writer, res *adapter.Result) error {
	if len(res.Columns) == 0 {
		_, err := fmt.Fprintln(w, res.Message)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(res.Columns))
	for i, col := range res.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range res.Rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d rows)\n", len(res.Rows))
	return err
}

// CSV writes res as CSV with a header row. Statements that produce no row
// set print their status message instead.
func CSV(w io.Writer, res *adapter.Result) error {
	if len(res.Columns) == 0 {
		_, err := fmt.Fprintln(w, res.Message)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return err
	}
	for _, row := range res.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ResultString renders res to a string, for front ends that print whole
// blocks at once.
func ResultString(res *adapter.Result, format Format) string {
	var b strings.Builder
	if err := Result(&b, res, format); err != nil {
		return err.Error()
	}
	return strings.TrimRight(b.String(), "\n")
}
