package trademark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/internal/core"
)

const resultsTableHTML = `
<html><body>
<table id="tabela_resultados">
  <tr><th>Número</th><th>Marca</th><th>Classe</th><th>Situação</th></tr>
  <tr>
    <td>912345678</td>
    <td>ACME</td>
    <td>NCL(11) 35</td>
    <td>Registro de marca em vigor</td>
  </tr>
  <tr>
    <td>900011223</td>
    <td>SuperAcme Ltda</td>
    <td>NCL(11) 42</td>
    <td>Pedido arquivado</td>
  </tr>
  <tr>
    <td>123</td>
    <td>Acme Curta</td>
    <td>NCL(11) 9</td>
    <td>Em vigor</td>
  </tr>
  <tr>
    <td>955555555</td>
    <td>Outra Marca</td>
    <td>NCL(11) 3</td>
    <td>Registro</td>
  </tr>
</table>
</body></html>`

func TestExtractRecords(t *testing.T) {
	records, err := ExtractRecords(resultsTableHTML, "acme")
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, core.TrademarkRecord{
		BrandName:     "ACME",
		ProcessNumber: "912345678",
		Situation:     "Registro de marca em vigor",
	}, records[0])

	// Substring matches are kept on purpose: a similar registered mark is
	// exactly what the user needs to see.
	require.Equal(t, "SuperAcme Ltda", records[1].BrandName)
	require.Equal(t, "900011223", records[1].ProcessNumber)
	require.Equal(t, "Pedido arquivado", records[1].Situation)
}

func TestExtractRecordsDiscardsRowsWithoutProcessNumber(t *testing.T) {
	html := `<table><tr><td>Acme</td><td>12345</td><td>Em vigor</td></tr></table>`
	records, err := ExtractRecords(html, "acme")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestExtractRecordsKeepsRawProcessCellText(t *testing.T) {
	html := `<table><tr><td> 912.345.678-0 </td><td>Acme</td><td>Registro</td></tr></table>`
	records, err := ExtractRecords(html, "acme")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "912.345.678-0", records[0].ProcessNumber)
}

func TestExtractRecordsSituationFallsBackToLastCell(t *testing.T) {
	html := `<table><tr><td>912345678</td><td>Acme</td><td>Alguma coisa</td></tr></table>`
	records, err := ExtractRecords(html, "acme")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Alguma coisa", records[0].Situation)
}

func TestExtractRecordsCapsAtTwenty(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<table>")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "<tr><td>9%08d</td><td>Acme %d</td><td>Registro</td></tr>", i, i)
	}
	sb.WriteString("</table>")

	records, err := ExtractRecords(sb.String(), "acme")
	require.NoError(t, err)
	require.Len(t, records, maxRecords)
}

func TestExtractRecordsIgnoresNarrowRows(t *testing.T) {
	html := `<table><tr><td>912345678</td><td>Acme</td></tr></table>`
	records, err := ExtractRecords(html, "acme")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestHasNoResultsMarker(t *testing.T) {
	require.True(t, HasNoResultsMarker("<body>Nenhum registro encontrado</body>"))
	require.True(t, HasNoResultsMarker("<body>Não foram encontrados resultados</body>"))
	require.False(t, HasNoResultsMarker("<body><table></table></body>"))
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name    string
		records []core.TrademarkRecord
		want    bool
	}{
		{
			name: "empty",
			want: false,
		},
		{
			name: "in force",
			records: []core.TrademarkRecord{
				{Situation: "Registro de marca em vigor"},
			},
			want: true,
		},
		{
			name: "all extinguished",
			records: []core.TrademarkRecord{
				{Situation: "Pedido arquivado"},
				{Situation: "Registro extinto"},
				{Situation: "Pedido indeferido"},
			},
			want: false,
		},
		{
			name: "one active among extinguished",
			records: []core.TrademarkRecord{
				{Situation: "Registro extinto"},
				{Situation: "Pedido de registro"},
			},
			want: true,
		},
		{
			name: "unrecognized situation counts as active",
			records: []core.TrademarkRecord{
				{Situation: "Status não identificado"},
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsActive(tc.records))
		})
	}
}
