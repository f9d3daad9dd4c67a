package ingesting

import (
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// ParsedSheet é o resultado da leitura das linhas de dados de uma planilha classificada
type ParsedSheet struct {
	Kind      domain.RecordKind
	Layout    ColumnLayout
	Revenue   []domain.RevenueRecord
	Financial []domain.FinancialEntry
	Skipped   int
}

func (p ParsedSheet) Count() int {
	if p.Kind == domain.RecordKindFinancial {
		return len(p.Financial)
	}
	return len(p.Revenue)
}

// Parse converte as linhas de dados (sem o cabeçalho) em registros.
// Linhas sem cliente, ou com valor inválido para o tipo, são descartadas.
func Parse(kind domain.RecordKind, header []string, rows [][]string) ParsedSheet {
	layout := ResolveLayout(kind, header)
	parsed := ParsedSheet{Kind: kind, Layout: layout}

	switch {
	case kind.IsRevenue():
		parsed.Revenue = make([]domain.RevenueRecord, 0, len(rows))
		for _, row := range rows {
			record, ok := parseRevenueRow(kind, layout, row)
			if !ok {
				parsed.Skipped++
				continue
			}
			parsed.Revenue = append(parsed.Revenue, record)
		}
	case kind == domain.RecordKindFinancial:
		parsed.Financial = make([]domain.FinancialEntry, 0, len(rows))
		for _, row := range rows {
			entry, ok := parseFinancialRow(layout, row)
			if !ok {
				parsed.Skipped++
				continue
			}
			parsed.Financial = append(parsed.Financial, entry)
		}
	default:
		parsed.Skipped = len(rows)
	}

	return parsed
}

func parseRevenueRow(kind domain.RecordKind, layout ColumnLayout, row []string) (domain.RevenueRecord, bool) {
	record := domain.RevenueRecord{
		Kind:       kind,
		Client:     layout.cell(row, FieldClient),
		Amount:     ParseAmount(layout.cell(row, FieldAmount)),
		OccurredOn: layout.cell(row, FieldDate),
	}

	if record.Client == "" || !record.Amount.IsPositive() {
		return domain.RevenueRecord{}, false
	}
	return record, true
}

func parseFinancialRow(layout ColumnLayout, row []string) (domain.FinancialEntry, bool) {
	entry := domain.FinancialEntry{
		Status:         layout.cell(row, FieldStatus),
		OccurredOn:     layout.cell(row, FieldDate),
		Client:         layout.cell(row, FieldClient),
		Account:        layout.cell(row, FieldAccount),
		Category:       layout.cell(row, FieldCategory),
		Amount:         ParseAmount(layout.cell(row, FieldAmount)),
		RunningBalance: ParseAmount(layout.cell(row, FieldBalance)),
	}

	if entry.Client == "" || entry.Amount.IsZero() {
		return domain.FinancialEntry{}, false
	}
	return entry, true
}
