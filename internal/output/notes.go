package output

import (
	"fmt"
	"strings"

	"github.com/brandlens/brandlens/internal/core"
	"github.com/brandlens/brandlens/internal/core/trademark"
)

// resultRow is one rendered line: the trademark outcome or one handle
// variant.
type resultRow struct {
	Source string
	Name   string
	Status string
	Notes  string
}

func resultRows(result *core.AvailabilityResult) []resultRow {
	if result == nil {
		return nil
	}

	rows := []resultRow{}
	if result.Trademark != nil {
		rows = append(rows, trademarkRow(result.Name, result.Trademark))
	}
	if result.Handle != nil {
		rows = append(rows, handleRows(result.Handle)...)
	}
	return rows
}

func trademarkRow(name string, tm *core.TrademarkResult) resultRow {
	notes := strings.TrimSpace(tm.Details)
	if len(tm.Records) > 0 {
		active := "no active records"
		if trademark.IsActive(tm.Records) {
			active = "active records"
		}
		notes = strings.TrimSpace(notes + " (" + active + ")")
	}

	return resultRow{
		Source: string(core.SourceTrademark),
		Name:   name,
		Status: string(tm.Status),
		Notes:  notes,
	}
}

func handleRows(handle *core.HandleResult) []resultRow {
	if handle.Status == core.HandleMultiple {
		rows := make([]resultRow, 0, len(handle.Variations))
		for _, variation := range handle.Variations {
			rows = append(rows, handleRow(&variation))
		}
		return rows
	}
	return []resultRow{handleRow(handle)}
}

func handleRow(handle *core.HandleResult) resultRow {
	name := handle.Variant
	if name != "" {
		name = "@" + name
	}

	notes := []string{}
	if handle.Message != "" {
		notes = append(notes, handle.Message)
	}
	if handle.Profile != nil && handle.Profile.Name != "" {
		notes = append(notes, handle.Profile.Name)
	}

	return resultRow{
		Source: string(core.SourceHandle),
		Name:   name,
		Status: string(handle.Status),
		Notes:  strings.Join(notes, "; "),
	}
}

func recordLine(record core.TrademarkRecord) string {
	return fmt.Sprintf("%s, processo %s (%s)", record.BrandName, record.ProcessNumber, record.Situation)
}
