package trademark

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brandlens/brandlens/internal/core"
)

// maxRecords caps extraction; the registry paginates anyway and twenty rows
// is more than any rendering surface shows.
const maxRecords = 20

// minProcessDigits is the shortest digit sequence accepted as a registry
// process number.
const minProcessDigits = 8

// Explicit "nothing found" phrases the registry renders instead of a table.
var noResultsPhrases = []string{
	"Nenhum registro encontrado",
	"Não foram encontrados",
	"Nenhum resultado foi encontrado",
}

// Situation-column stems. A cell containing one of these is taken as the
// row's legal situation.
var situationKeywords = []string{
	"arquivad",
	"vigor",
	"extint",
	"conferid",
	"pedido",
	"registro",
}

// Stems that mark a process as no longer in force.
var extinguishedKeywords = []string{
	"arquivad",
	"extint",
	"indeferid",
	"cancelad",
	"expirad",
}

// HasNoResultsMarker reports whether the results markup carries one of the
// registry's explicit empty-result phrases.
func HasNoResultsMarker(html string) bool {
	for _, phrase := range noResultsPhrases {
		if strings.Contains(html, phrase) {
			return true
		}
	}
	return false
}

// ExtractRecords pulls candidate registry rows out of results markup. The
// legacy tables have no stable ids or classes, so extraction is heuristic:
// any row with at least three cells, one of which contains the searched name
// case-insensitively, is a candidate; rows without a plausible process number
// are discarded.
func ExtractRecords(html, name string) ([]core.TrademarkRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	var records []core.TrademarkRecord

	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return true
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})

		if !anyContains(texts, needle) {
			return true
		}

		process := processNumber(texts)
		if process == "" {
			return true
		}

		records = append(records, core.TrademarkRecord{
			BrandName:     brandName(texts, needle, name),
			ProcessNumber: process,
			Situation:     situation(texts),
		})
		return len(records) < maxRecords
	})

	return records, nil
}

// IsActive reports whether any extracted record is still in force. A record
// counts as active unless its situation matches a known extinguished stem.
func IsActive(records []core.TrademarkRecord) bool {
	for _, record := range records {
		lower := strings.ToLower(record.Situation)
		extinguished := false
		for _, stem := range extinguishedKeywords {
			if strings.Contains(lower, stem) {
				extinguished = true
				break
			}
		}
		if !extinguished {
			return true
		}
	}
	return false
}

func anyContains(texts []string, needle string) bool {
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	return false
}

// processNumber returns the raw text of the first cell whose digits form a
// sequence long enough to be a process number. The raw cell text is kept:
// registry numbers embed dots and dashes that users expect to see.
func processNumber(texts []string) string {
	for _, text := range texts {
		digits := 0
		for _, r := range text {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= minProcessDigits {
			return text
		}
	}
	return ""
}

func brandName(texts []string, needle, fallback string) string {
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), needle) {
			return text
		}
	}
	return fallback
}

func situation(texts []string) string {
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, stem := range situationKeywords {
			if strings.Contains(lower, stem) {
				return text
			}
		}
	}
	// Fall back to the last non-trivial cell; the legacy layout keeps the
	// situation in the trailing columns.
	for i := len(texts) - 1; i >= 0; i-- {
		if len(texts[i]) > 2 {
			return texts[i]
		}
	}
	return "Status não identificado"
}
