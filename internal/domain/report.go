package domain

import "github.com/shopspring/decimal"

// MonthlyRevenuePoint é um ponto da série de faturamento mensal
type MonthlyRevenuePoint struct {
	Period string          `json:"period"` // AAAA-MM
	Label  string          `json:"label"`  // Mar/2024
	Amount decimal.Decimal `json:"amount"`
}

// ClientRankingItem representa um cliente no ranking de faturamento
type ClientRankingItem struct {
	Position   int             `json:"position"`
	Client     string          `json:"client"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// MetricValue é um total com a variação percentual sobre a janela anterior
type MetricValue struct {
	Value  decimal.Decimal `json:"value"`
	Change float64         `json:"change"`
}

type DashboardMetrics struct {
	Services       MetricValue `json:"services"`
	Contracts      MetricValue `json:"contracts"`
	Sales          MetricValue `json:"sales"`
	Total          MetricValue `json:"total"`
	CurrentWindow  DateRange   `json:"currentWindow"`
	PreviousWindow DateRange   `json:"previousWindow"`
}

// KindTotal é o cartão de totais de um tipo de registro
type KindTotal struct {
	Kind   RecordKind      `json:"kind"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type Overview struct {
	Kinds []KindTotal     `json:"kinds"`
	Total decimal.Decimal `json:"total"`
}

// ExpenseGroup classifica uma despesa do extrato
type ExpenseGroup string

const (
	ExpenseDirect         ExpenseGroup = "direct"
	ExpenseOperational    ExpenseGroup = "operational"
	ExpenseNonOperational ExpenseGroup = "non_operational"
)

// BudgetLine compara realizado e previsto
type BudgetLine struct {
	Realized  decimal.Decimal `json:"realized"`
	Projected decimal.Decimal `json:"projected"`
}

type CategoryBreakdown struct {
	Category string          `json:"category"`
	Group    ExpenseGroup    `json:"group"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetSummary é o consolidado orçamentário dos extratos financeiros.
// Os valores previstos são multiplicadores sobre o realizado (ProjectionSynthetic).
type BudgetSummary struct {
	OpeningBalance         decimal.Decimal     `json:"openingBalance"`
	Revenue                BudgetLine          `json:"revenue"`
	DirectExpenses         BudgetLine          `json:"directExpenses"`
	OperationalExpenses    BudgetLine          `json:"operationalExpenses"`
	NonOperationalExpenses BudgetLine          `json:"nonOperationalExpenses"`
	TotalExpenses          BudgetLine          `json:"totalExpenses"`
	CashBalance            decimal.Decimal     `json:"cashBalance"`
	Categories             []CategoryBreakdown `json:"categories"`
	ProjectionSynthetic    bool                `json:"projectionSynthetic"`
}

// Option é um item de seleção do filtro do painel
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Periods  []Option `json:"periods"`
	Clients  []Option `json:"clients"`
	Selected Filter   `json:"selected"`
}
