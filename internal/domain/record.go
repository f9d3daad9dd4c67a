package domain

import "github.com/shopspring/decimal"

// RecordKind identifica o tipo de planilha importada
type RecordKind string

const (
	RecordKindContracts RecordKind = "contracts"
	RecordKindServices  RecordKind = "services"
	RecordKindSales     RecordKind = "sales"
	RecordKindFinancial RecordKind = "financial"
	RecordKindUnknown   RecordKind = "unknown"
)

// RevenueKinds são os tipos que compartilham o formato de RevenueRecord
var RevenueKinds = []RecordKind{RecordKindContracts, RecordKindServices, RecordKindSales}

var recordKindLabels = map[RecordKind]string{
	RecordKindContracts: "Contratos",
	RecordKindServices:  "Faturamento Serviços",
	RecordKindSales:     "Vendas",
	RecordKindFinancial: "Extratos Financeiros",
	RecordKindUnknown:   "Erro",
}

func (k RecordKind) Label() string {
	if label, ok := recordKindLabels[k]; ok {
		return label
	}
	return recordKindLabels[RecordKindUnknown]
}

func (k RecordKind) IsRevenue() bool {
	return k == RecordKindContracts || k == RecordKindServices || k == RecordKindSales
}

func (k RecordKind) Valid() bool {
	return k.IsRevenue() || k == RecordKindFinancial
}

// RevenueRecord é uma linha de contrato, serviço ou venda
type RevenueRecord struct {
	Kind       RecordKind      `json:"kind"`
	Client     string          `json:"client"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredOn string          `json:"occurredOn"` // data como veio da planilha
	BatchID    string          `json:"batchId,omitempty"`
}

// FinancialEntry é uma linha de extrato. Valor positivo é receita, negativo é despesa.
type FinancialEntry struct {
	Status         string          `json:"status"`
	OccurredOn     string          `json:"occurredOn"`
	Client         string          `json:"client"`
	Account        string          `json:"account"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	BatchID        string          `json:"batchId,omitempty"`
}

// Snapshot agrupa todas as coleções lidas do banco para uma rodada de agregação
type Snapshot struct {
	Contracts []RevenueRecord
	Services  []RevenueRecord
	Sales     []RevenueRecord
	Financial []FinancialEntry
}

// Revenue retorna contratos, serviços e vendas em uma única coleção nova
func (s Snapshot) Revenue() []RevenueRecord {
	pooled := make([]RevenueRecord, 0, len(s.Contracts)+len(s.Services)+len(s.Sales))
	pooled = append(pooled, s.Contracts...)
	pooled = append(pooled, s.Services...)
	pooled = append(pooled, s.Sales...)
	return pooled
}

func (s Snapshot) ByKind(kind RecordKind) []RevenueRecord {
	switch kind {
	case RecordKindContracts:
		return s.Contracts
	case RecordKindServices:
		return s.Services
	case RecordKindSales:
		return s.Sales
	}
	return nil
}
