package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/brandlens/brandlens/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatResult renders one availability result as a table.
func (f *TableFormatter) FormatResult(result *core.AvailabilityResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(titleLine(result))
	t.AppendHeader(table.Row{"Source", "Name", "Status", "Notes"})

	for _, row := range resultRows(result) {
		t.AppendRow(table.Row{row.Source, row.Name, row.Status, row.Notes})
	}

	rendered := t.Render()

	if result.Trademark != nil && len(result.Trademark.Records) > 0 {
		var sb strings.Builder
		sb.WriteString(rendered)
		sb.WriteString("\n\nRegistros:\n")
		for _, record := range result.Trademark.Records {
			sb.WriteString("  • " + recordLine(record) + "\n")
		}
		rendered = strings.TrimRight(sb.String(), "\n")
	}

	return rendered, nil
}

func titleLine(result *core.AvailabilityResult) string {
	if result.NclClass != nil {
		return fmt.Sprintf("%s (classe %d)", result.Name, *result.NclClass)
	}
	return result.Name
}
