package varprog

import (
	"io"
	"strings"

	"src.pless.dev/pkg/wcwidth"
)

// maxTableWidth is the width of tables when the width of the terminal is not
// known.
const maxTableWidth = 80

type rowWriter interface {
	writeRows(w io.Writer, header []string, rows [][]string) error
}

// tableWriter writes an aligned table with a header, clipping each line to
// width columns.
type tableWriter struct{ width int }

func (tw tableWriter) writeRows(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if cw := wcwidth.Of(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	var sb strings.Builder
	for _, row := range append([][]string{header}, rows...) {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
			} else {
				line.WriteString(wcwidth.Force(cell, widths[i]+2))
			}
		}
		sb.WriteString(strings.TrimRight(wcwidth.Trim(line.String(), tw.width), " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// tsvWriter writes tab-separated rows without a header. Tabs and newlines in
// cells are escaped.
type tsvWriter struct{}

var tsvEscaper = strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`)

func (tsvWriter) writeRows(w io.Writer, _ []string, rows [][]string) error {
	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(tsvEscaper.Replace(cell))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
