package ingesting

import (
	"strings"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

type classificationRule struct {
	kind    domain.RecordKind
	matches func(header string) bool
}

func containsAny(header string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(header, term) {
			return true
		}
	}
	return false
}

// A ordem importa: serviços e vendas compartilham "cliente nome fantasia".
var classificationRules = []classificationRule{
	{
		kind: domain.RecordKindContracts,
		matches: func(h string) bool {
			return strings.Contains(h, "nome cliente") &&
				strings.Contains(h, "valor total") &&
				!strings.Contains(h, "situacao")
		},
	},
	{
		kind: domain.RecordKindServices,
		matches: func(h string) bool {
			return containsAny(h, "cliente (nome fantasia)", "cliente nome fantasia") &&
				strings.Contains(h, "valor total")
		},
	},
	{
		kind: domain.RecordKindSales,
		matches: func(h string) bool {
			return strings.Contains(h, "cliente nome fantasia") &&
				strings.Contains(h, "total da nota fiscal")
		},
	},
	{
		kind: domain.RecordKindFinancial,
		matches: func(h string) bool {
			return strings.Contains(h, "situacao") &&
				containsAny(h, "categoria", "conta") &&
				containsAny(h, "saldo", "valor")
		},
	},
}

// Classify identifica o tipo da planilha a partir da linha de cabeçalho
func Classify(header []string) domain.RecordKind {
	joined := strings.Join(foldHeader(header), "|")

	for _, rule := range classificationRules {
		if rule.matches(joined) {
			return rule.kind
		}
	}

	return domain.RecordKindUnknown
}
