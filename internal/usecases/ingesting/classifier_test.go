package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   domain.RecordKind
	}{
		{
			name:   "contratos",
			header: []string{"Nome Cliente", "Valor Total", "Data"},
			want:   domain.RecordKindContracts,
		},
		{
			name:   "contratos com situação viram financeiro",
			header: []string{"Nome Cliente", "Valor Total", "Situacao", "Categoria"},
			want:   domain.RecordKindFinancial,
		},
		{
			name:   "serviços com parênteses",
			header: []string{"Cliente (Nome Fantasia)", "Data de Emissão", "Valor Total"},
			want:   domain.RecordKindServices,
		},
		{
			name:   "serviços sem parênteses",
			header: []string{"Cliente Nome Fantasia", "Data", "Valor Total"},
			want:   domain.RecordKindServices,
		},
		{
			name:   "vendas",
			header: []string{"Cliente Nome Fantasia", "Data", "Total da Nota Fiscal"},
			want:   domain.RecordKindSales,
		},
		{
			name:   "financeiro",
			header: []string{"Situacao", "Data", "Cliente", "Conta", "Categoria", "Valor", "Saldo"},
			want:   domain.RecordKindFinancial,
		},
		{
			name:   "financeiro com acentos e caixa alta",
			header: []string{"SITUAÇÃO", "Data", "Cliente", "Conta", "Valor"},
			want:   domain.RecordKindFinancial,
		},
		{
			name:   "financeiro exige valor ou saldo",
			header: []string{"Situacao", "Data", "Cliente", "Categoria"},
			want:   domain.RecordKindUnknown,
		},
		{
			name:   "desconhecido",
			header: []string{"Foo", "Bar"},
			want:   domain.RecordKindUnknown,
		},
		{
			name:   "cabeçalho vazio",
			header: nil,
			want:   domain.RecordKindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.header))
		})
	}
}

func TestClassify_IsPure(t *testing.T) {
	header := []string{"Nome Cliente", "Valor Total", "Data"}
	original := append([]string(nil), header...)

	first := Classify(header)
	second := Classify(header)

	assert.Equal(t, first, second)
	assert.Equal(t, original, header)
}

func TestFoldHeader(t *testing.T) {
	assert.Equal(t, []string{"situacao", "cliente (nome fantasia)"},
		foldHeader([]string{" Situação ", "Cliente  (Nome   Fantasia)"}))
}
