package output

import (
	"fmt"
	"strings"

	"github.com/brandlens/brandlens/internal/core"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatResult renders one availability result as Markdown.
func (f *MarkdownFormatter) FormatResult(result *core.AvailabilityResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", escapeMarkdownCell(titleLine(result))))
	sb.WriteString("| Source | Name | Status | Notes |\n")
	sb.WriteString("|--------|------|--------|-------|\n")

	for _, row := range resultRows(result) {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			escapeMarkdownCell(row.Source),
			escapeMarkdownCell(row.Name),
			escapeMarkdownCell(row.Status),
			escapeMarkdownCell(row.Notes),
		))
	}

	if result.Trademark != nil && len(result.Trademark.Records) > 0 {
		sb.WriteString("\n**Registros**:\n")
		for _, record := range result.Trademark.Records {
			sb.WriteString("- " + escapeMarkdownCell(recordLine(record)) + "\n")
		}
	}

	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
