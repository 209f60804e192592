// Package export renders task lists as CSV or Markdown tables.
package export

import (
	"fmt"
	"strings"

	"github.com/hibi-cli/hibi/internal/core/task"
)

// Format selects an export output format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f == FormatCSV || f == FormatMarkdown
}

var header = []string{"Title", "Genre", "Start", "End", "Status", "Created", "Memo", "Carried Over"}

// CSV renders tasks as comma-separated rows with every field quoted and
// CRLF line endings.
func CSV(tasks []task.Task) string {
	var b strings.Builder
	writeCSVRow(&b, header)
	for _, t := range tasks {
		writeCSVRow(&b, row(t))
	}
	return b.String()
}

// Markdown renders tasks as a Markdown table.
func Markdown(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
	for _, t := range tasks {
		cells := row(t)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

// Render dispatches on format.
func Render(tasks []task.Task, format Format) (string, error) {
	switch format {
	case FormatCSV:
		return CSV(tasks), nil
	case FormatMarkdown:
		return Markdown(tasks), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func row(t task.Task) []string {
	carried := ""
	if t.CarriedOver {
		carried = "*"
	}
	return []string{
		t.Title,
		t.Genre,
		t.ScheduledStart,
		t.ScheduledEnd(),
		string(t.Status),
		t.CreatedAt.Format("2006/01/02 15:04"),
		t.Memo,
		carried,
	}
}

// writeCSVRow quotes every field, doubling embedded quotes, and
// terminates the row with CRLF.
func writeCSVRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
