package ingesting

import (
	"strings"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// Field é uma coluna lógica da planilha
type Field string

const (
	FieldClient   Field = "client"
	FieldAmount   Field = "amount"
	FieldDate     Field = "date"
	FieldStatus   Field = "status"
	FieldAccount  Field = "account"
	FieldCategory Field = "category"
	FieldBalance  Field = "balance"
)

type fieldSpec struct {
	field    Field
	aliases  []string // já normalizados com FoldText
	position int
	required bool
}

// ColumnLayout é o índice de coluna de cada campo já resolvido para uma planilha
type ColumnLayout struct {
	Columns    map[Field]int
	Positional bool
}

func (l ColumnLayout) cell(row []string, field Field) string {
	idx, ok := l.Columns[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var fieldSpecs = map[domain.RecordKind][]fieldSpec{
	domain.RecordKindContracts: {
		{field: FieldClient, aliases: []string{"nome cliente", "cliente"}, position: 0, required: true},
		{field: FieldAmount, aliases: []string{"valor total", "valor"}, position: 1, required: true},
		{field: FieldDate, aliases: []string{"data", "data inicio", "data do contrato"}, position: 2, required: true},
	},
	domain.RecordKindServices: {
		{field: FieldClient, aliases: []string{"cliente (nome fantasia)", "cliente nome fantasia", "cliente"}, position: 0, required: true},
		{field: FieldDate, aliases: []string{"data", "data de emissao", "data emissao", "competencia"}, position: 1, required: true},
		{field: FieldAmount, aliases: []string{"valor total", "valor"}, position: 2, required: true},
	},
	domain.RecordKindSales: {
		{field: FieldClient, aliases: []string{"cliente nome fantasia", "cliente"}, position: 0, required: true},
		{field: FieldDate, aliases: []string{"data", "data de emissao", "data emissao", "data da venda"}, position: 1, required: true},
		{field: FieldAmount, aliases: []string{"total da nota fiscal", "valor total", "total"}, position: 2, required: true},
	},
	domain.RecordKindFinancial: {
		{field: FieldStatus, aliases: []string{"situacao"}, position: 0},
		{field: FieldDate, aliases: []string{"data", "data de pagamento", "vencimento"}, position: 1, required: true},
		{field: FieldClient, aliases: []string{"cliente", "cliente/fornecedor", "fornecedor"}, position: 2, required: true},
		{field: FieldAccount, aliases: []string{"conta"}, position: 3},
		{field: FieldCategory, aliases: []string{"categoria"}, position: 4},
		{field: FieldAmount, aliases: []string{"valor"}, position: 5, required: true},
		{field: FieldBalance, aliases: []string{"saldo"}, position: 6},
	},
}

// PositionalLayout devolve as posições fixas de cada tipo de planilha
func PositionalLayout(kind domain.RecordKind) ColumnLayout {
	layout := ColumnLayout{Columns: map[Field]int{}, Positional: true}
	for _, spec := range fieldSpecs[kind] {
		layout.Columns[spec.field] = spec.position
	}
	return layout
}

// ResolveLayout mapeia os campos pelo nome do cabeçalho: primeiro igualdade exata,
// depois substring. Se algum campo obrigatório não for encontrado, usa as posições fixas.
func ResolveLayout(kind domain.RecordKind, header []string) ColumnLayout {
	specs, ok := fieldSpecs[kind]
	if !ok || len(header) == 0 {
		return PositionalLayout(kind)
	}

	folded := foldHeader(header)
	claimed := make(map[int]bool, len(folded))
	columns := make(map[Field]int, len(specs))

	match := func(exact bool) {
		for _, spec := range specs {
			if _, done := columns[spec.field]; done {
				continue
			}
			if idx := findColumn(folded, claimed, spec.aliases, exact); idx >= 0 {
				columns[spec.field] = idx
				claimed[idx] = true
			}
		}
	}
	match(true)
	match(false)

	for _, spec := range specs {
		if _, found := columns[spec.field]; spec.required && !found {
			return PositionalLayout(kind)
		}
	}

	return ColumnLayout{Columns: columns}
}

func findColumn(header []string, claimed map[int]bool, aliases []string, exact bool) int {
	for _, alias := range aliases {
		for idx, name := range header {
			if claimed[idx] || name == "" {
				continue
			}
			if exact && name == alias {
				return idx
			}
			if !exact && strings.Contains(name, alias) {
				return idx
			}
		}
	}
	return -1
}
