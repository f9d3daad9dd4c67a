package ingesting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "1000", want: "1000"},
		{raw: "1500.75", want: "1500.75"},
		{raw: "R$ 250.50", want: "250.5"},
		{raw: "-320.10", want: "-320.1"},
		{raw: " 42 ", want: "42"},
		{raw: "12.", want: "12"},
		{raw: ".5", want: "0.5"},
		{raw: "10-20", want: "10"},
		{raw: "1.234.56", want: "1.234"},
		{raw: "abc", want: "0"},
		{raw: "", want: "0"},
		{raw: "--5", want: "0"},
		{raw: "-", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "esperado %s, obtido %s", tt.want, got)
		})
	}
}

func TestParse_ContractsDropsInvalidRows(t *testing.T) {
	header := []string{"Nome Cliente", "Valor Total", "Data"}
	rows := [][]string{
		{"Acme", "1000", "01/01/24"},
		{"", "500", "01/01/24"},
		{"Beta", "0", "01/01/24"},
	}

	parsed := Parse(domain.RecordKindContracts, header, rows)

	require.Len(t, parsed.Revenue, 1)
	assert.Equal(t, "Acme", parsed.Revenue[0].Client)
	assert.True(t, decimal.NewFromInt(1000).Equal(parsed.Revenue[0].Amount))
	assert.Equal(t, "01/01/24", parsed.Revenue[0].OccurredOn)
	assert.Equal(t, domain.RecordKindContracts, parsed.Revenue[0].Kind)
	assert.Equal(t, 2, parsed.Skipped)
	assert.Equal(t, 1, parsed.Count())
	assert.False(t, parsed.Layout.Positional)
}

func TestParse_NegativeRevenueIsDropped(t *testing.T) {
	parsed := Parse(domain.RecordKindSales,
		[]string{"Cliente Nome Fantasia", "Data", "Total da Nota Fiscal"},
		[][]string{{"Loja", "01/02/2024", "-10"}, {"  Loja B  ", "01/02/2024", "10"}},
	)

	require.Len(t, parsed.Revenue, 1)
	assert.Equal(t, "Loja B", parsed.Revenue[0].Client)
}

func TestParse_FinancialKeepsExpenses(t *testing.T) {
	header := []string{"Situacao", "Data", "Cliente", "Conta", "Categoria", "Valor", "Saldo"}
	rows := [][]string{
		{"Pago", "10/03/2024", "Fornecedor X", "Custos", "Despesa Direta", "-100", "900"},
		{"Recebido", "11/03/2024", "Cliente Y", "Receitas", "Vendas", "1000", "1900"},
		{"Pago", "12/03/2024", "Cliente Z", "Custos", "Aluguel", "0", "1900"},
		{"Pago", "12/03/2024", "", "Custos", "Aluguel", "-50", "1850"},
	}

	parsed := Parse(domain.RecordKindFinancial, header, rows)

	require.Len(t, parsed.Financial, 2)
	assert.Equal(t, "Fornecedor X", parsed.Financial[0].Client)
	assert.Equal(t, "Despesa Direta", parsed.Financial[0].Category)
	assert.Equal(t, "Custos", parsed.Financial[0].Account)
	assert.Equal(t, "Pago", parsed.Financial[0].Status)
	assert.True(t, decimal.NewFromInt(-100).Equal(parsed.Financial[0].Amount))
	assert.True(t, decimal.NewFromInt(900).Equal(parsed.Financial[0].RunningBalance))
	assert.Equal(t, 2, parsed.Skipped)
}

func TestParse_HeaderMappingHandlesReorderedColumns(t *testing.T) {
	header := []string{"Data", "Valor Total", "Observação", "Nome Cliente"}
	rows := [][]string{{"05/03/2024", "300", "ok", "Acme"}}

	parsed := Parse(domain.RecordKindContracts, header, rows)

	require.Len(t, parsed.Revenue, 1)
	assert.Equal(t, "Acme", parsed.Revenue[0].Client)
	assert.Equal(t, "05/03/2024", parsed.Revenue[0].OccurredOn)
	assert.True(t, decimal.NewFromInt(300).Equal(parsed.Revenue[0].Amount))
}

func TestParse_FallsBackToPositionalColumns(t *testing.T) {
	// nenhum alias de data, então o layout fixo é usado
	header := []string{"Nome Cliente", "Valor Total", "Quando"}
	rows := [][]string{{"Acme", "150", "05/03/2024"}}

	parsed := Parse(domain.RecordKindContracts, header, rows)

	assert.True(t, parsed.Layout.Positional)
	require.Len(t, parsed.Revenue, 1)
	assert.Equal(t, "05/03/2024", parsed.Revenue[0].OccurredOn)
}

func TestParse_ShortRowsReadMissingCellsAsEmpty(t *testing.T) {
	parsed := Parse(domain.RecordKindServices,
		[]string{"Cliente (Nome Fantasia)", "Data", "Valor Total"},
		[][]string{{"Acme", "05/03/2024"}, {"Beta"}},
	)

	assert.Empty(t, parsed.Revenue)
	assert.Equal(t, 2, parsed.Skipped)
}

func TestParse_UnknownKind(t *testing.T) {
	parsed := Parse(domain.RecordKindUnknown, []string{"a"}, [][]string{{"x"}, {"y"}})

	assert.Empty(t, parsed.Revenue)
	assert.Empty(t, parsed.Financial)
	assert.Equal(t, 2, parsed.Skipped)
}

func TestResolveLayout(t *testing.T) {
	t.Run("serviços usa cliente com parênteses e não rouba a coluna", func(t *testing.T) {
		layout := ResolveLayout(domain.RecordKindServices,
			[]string{"Cliente (Nome Fantasia)", "Competência", "Valor Total", "Valor"})

		assert.False(t, layout.Positional)
		assert.Equal(t, 0, layout.Columns[FieldClient])
		assert.Equal(t, 1, layout.Columns[FieldDate])
		assert.Equal(t, 2, layout.Columns[FieldAmount])
	})

	t.Run("financeiro com colunas opcionais ausentes", func(t *testing.T) {
		layout := ResolveLayout(domain.RecordKindFinancial,
			[]string{"Cliente", "Valor", "Data", "Situação"})

		assert.False(t, layout.Positional)
		assert.Equal(t, 0, layout.Columns[FieldClient])
		assert.Equal(t, 1, layout.Columns[FieldAmount])
		assert.Equal(t, 2, layout.Columns[FieldDate])
		assert.Equal(t, 3, layout.Columns[FieldStatus])
		_, hasBalance := layout.Columns[FieldBalance]
		assert.False(t, hasBalance)
	})

	t.Run("posições fixas", func(t *testing.T) {
		layout := PositionalLayout(domain.RecordKindFinancial)

		assert.True(t, layout.Positional)
		assert.Equal(t, 0, layout.Columns[FieldStatus])
		assert.Equal(t, 5, layout.Columns[FieldAmount])
		assert.Equal(t, 6, layout.Columns[FieldBalance])
	})
}
