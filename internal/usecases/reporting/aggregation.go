package reporting

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

const DefaultRankingLimit = 10

var (
	monthAbbreviations = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
	monthNames         = [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}

	hundred = decimal.NewFromInt(100)
)

const (
	allPeriodsLabel = "Todos os Períodos"
	allClientsLabel = "Todos os Clientes"
	noCategoryLabel = "Sem categoria"
)

// ProjectionFactors multiplicam o realizado para gerar os valores previstos do orçamento
type ProjectionFactors struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

func DefaultProjection() ProjectionFactors {
	return ProjectionFactors{
		Revenue: decimal.RequireFromString("1.1"),
		Expense: decimal.RequireFromString("0.9"),
	}
}

// Aggregator calcula os indicadores do painel. Nenhuma função altera as coleções recebidas.
type Aggregator struct {
	Window     domain.DateWindow
	Projection ProjectionFactors
}

func NewAggregator(cfg *config.Config) Aggregator {
	return Aggregator{
		Window: domain.DateWindow{
			MinYear: cfg.DateWindow.MinYear,
			MaxYear: cfg.DateWindow.MaxYear,
		},
		Projection: ProjectionFactors{
			Revenue: decimal.NewFromFloat(cfg.Projection.RevenueFactor),
			Expense: decimal.NewFromFloat(cfg.Projection.ExpenseFactor),
		},
	}
}

func (a Aggregator) matches(occurredOn, client string, filter domain.Filter) bool {
	if filter.HasClient() && strings.TrimSpace(client) != strings.TrimSpace(filter.Client) {
		return false
	}

	if !filter.RequiresDate() {
		return true
	}

	date, ok := a.Window.Normalize(occurredOn)
	if !ok {
		return false
	}
	if filter.HasPeriod() && domain.PeriodKey(date) != filter.Period {
		return false
	}

	return filter.DateRange.Contains(date)
}

// FilterRevenue aplica período, cliente e intervalo de datas (todos com AND).
// Registros sem cliente nunca entram.
func (a Aggregator) FilterRevenue(records []domain.RevenueRecord, filter domain.Filter) []domain.RevenueRecord {
	filtered := make([]domain.RevenueRecord, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record.Client) == "" {
			continue
		}
		if a.matches(record.OccurredOn, record.Client, filter) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (a Aggregator) FilterFinancial(entries []domain.FinancialEntry, filter domain.Filter) []domain.FinancialEntry {
	filtered := make([]domain.FinancialEntry, 0, len(entries))
	for _, entry := range entries {
		if a.matches(entry.OccurredOn, entry.Client, filter) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// MonthlyRevenue soma o faturamento por mês, em ordem crescente de período.
// Registros sem data válida nunca formam um mês.
func (a Aggregator) MonthlyRevenue(pooled []domain.RevenueRecord, filter domain.Filter) []domain.MonthlyRevenuePoint {
	buckets := make(map[string]decimal.Decimal)
	for _, record := range a.FilterRevenue(pooled, filter) {
		date, ok := a.Window.Normalize(record.OccurredOn)
		if !ok {
			continue
		}
		key := domain.PeriodKey(date)
		buckets[key] = buckets[key].Add(record.Amount)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]domain.MonthlyRevenuePoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, domain.MonthlyRevenuePoint{
			Period: key,
			Label:  monthlyLabel(key),
			Amount: buckets[key],
		})
	}

	return points
}

func monthlyLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s/%d", monthAbbreviations[t.Month()-1], t.Year())
}

func periodLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// ClientRanking agrupa por cliente e devolve os limit maiores.
// O percentual é sobre o total de todos os clientes, não só dos listados.
func (a Aggregator) ClientRanking(pooled []domain.RevenueRecord, filter domain.Filter, limit int) []domain.ClientRankingItem {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	grandTotal := decimal.Zero

	for _, record := range a.FilterRevenue(pooled, filter) {
		client := strings.TrimSpace(record.Client)
		if _, seen := totals[client]; !seen {
			order = append(order, client)
		}
		totals[client] = totals[client].Add(record.Amount)
		grandTotal = grandTotal.Add(record.Amount)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]].GreaterThan(totals[order[j]])
	})

	if len(order) > limit {
		order = order[:limit]
	}

	ranking := make([]domain.ClientRankingItem, 0, len(order))
	for i, client := range order {
		ranking = append(ranking, domain.ClientRankingItem{
			Position:   i + 1,
			Client:     client,
			Amount:     totals[client],
			Percentage: utils.Percentage(totals[client], grandTotal),
		})
	}

	return ranking
}

// PercentChange é a variação de prev para cur. Sem base anterior vale 100 se houve
// faturamento e 0 caso contrário.
func PercentChange(cur, prev decimal.Decimal) float64 {
	if prev.IsZero() {
		if cur.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(cur.Sub(prev).Div(prev).Mul(hundred).InexactFloat64())
}

// Metrics totaliza cada tipo na janela atual e compara com a janela anterior
func (a Aggregator) Metrics(snapshot domain.Snapshot, filter domain.Filter, now time.Time) domain.DashboardMetrics {
	currentFilter, previous := comparisonWindows(filter, now)
	previousFilter := domain.Filter{Period: domain.All, Client: filter.Client, DateRange: previous}

	metric := func(records []domain.RevenueRecord) (domain.MetricValue, decimal.Decimal) {
		cur := sumRevenue(a.FilterRevenue(records, currentFilter))
		prev := sumRevenue(a.FilterRevenue(records, previousFilter))
		return domain.MetricValue{Value: cur, Change: PercentChange(cur, prev)}, prev
	}

	services, prevServices := metric(snapshot.Services)
	contracts, prevContracts := metric(snapshot.Contracts)
	sales, prevSales := metric(snapshot.Sales)

	total := services.Value.Add(contracts.Value).Add(sales.Value)
	prevTotal := prevServices.Add(prevContracts).Add(prevSales)

	return domain.DashboardMetrics{
		Services:       services,
		Contracts:      contracts,
		Sales:          sales,
		Total:          domain.MetricValue{Value: total, Change: PercentChange(total, prevTotal)},
		CurrentWindow:  currentWindow(currentFilter),
		PreviousWindow: previous,
	}
}

// comparisonWindows devolve o filtro da janela atual e o intervalo da janela anterior.
// Só o intervalo completo gera uma anterior de mesmo tamanho terminando na véspera do início.
// Sem intervalo nem período a janela atual não tem data, então registros sem data contam.
func comparisonWindows(filter domain.Filter, now time.Time) (domain.Filter, domain.DateRange) {
	current := domain.Filter{Period: domain.All, Client: filter.Client}
	dates := filter.DateRange

	switch {
	case dates.Start != nil && dates.End != nil:
		start, end := dateOnly(*dates.Start), dateOnly(*dates.End)
		days := int(math.Ceil(end.Sub(start).Hours() / 24))
		previousEnd := start.AddDate(0, 0, -1)

		current.DateRange = rangeOf(start, end)
		return current, rangeOf(previousEnd.AddDate(0, 0, -days), previousEnd)
	case !dates.IsZero():
		current.DateRange = dates
	case filter.HasPeriod():
		if period, err := time.Parse("2006-01", filter.Period); err == nil {
			current.Period = filter.Period
			return current, previousMonth(period)
		}
	}

	return current, previousMonth(dateOnly(now))
}

func previousMonth(reference time.Time) domain.DateRange {
	start := utils.MonthStart(reference).AddDate(0, -1, 0)
	return rangeOf(start, utils.MonthEnd(start))
}

// currentWindow descreve a janela atual na resposta; vazia quando abrange todos os períodos
func currentWindow(current domain.Filter) domain.DateRange {
	if current.HasPeriod() {
		period, _ := time.Parse("2006-01", current.Period)
		return rangeOf(period, utils.MonthEnd(period))
	}
	return current.DateRange
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func rangeOf(start, end time.Time) domain.DateRange {
	return domain.DateRange{Start: &start, End: &end}
}

func sumRevenue(records []domain.RevenueRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}

// expenseGroups diz a quais grupos a despesa pertence, sem diferenciar acentos.
// Direta e operacional são independentes: uma linha com as duas palavras entra nos dois.
// Não operacional é apenas a linha sem nenhuma delas.
func expenseGroups(category, account string) []domain.ExpenseGroup {
	text := utils.FoldText(category) + "|" + utils.FoldText(account)

	groups := make([]domain.ExpenseGroup, 0, 2)
	if strings.Contains(text, "direta") {
		groups = append(groups, domain.ExpenseDirect)
	}
	if strings.Contains(text, "operacional") {
		groups = append(groups, domain.ExpenseOperational)
	}
	if len(groups) == 0 {
		groups = append(groups, domain.ExpenseNonOperational)
	}

	return groups
}

// Budget consolida os extratos. Somente período e intervalo de datas são aplicados.
func (a Aggregator) Budget(entries []domain.FinancialEntry, filter domain.Filter) domain.BudgetSummary {
	scope := domain.Filter{Period: filter.Period, Client: domain.All, DateRange: filter.DateRange}

	revenue := decimal.Zero
	groups := map[domain.ExpenseGroup]decimal.Decimal{
		domain.ExpenseDirect:         decimal.Zero,
		domain.ExpenseOperational:    decimal.Zero,
		domain.ExpenseNonOperational: decimal.Zero,
	}

	categoryTotals := make(map[string]*domain.CategoryBreakdown)
	categoryOrder := make([]string, 0)

	for _, entry := range a.FilterFinancial(entries, scope) {
		switch {
		case entry.Amount.IsPositive():
			revenue = revenue.Add(entry.Amount)
		case entry.Amount.IsNegative():
			expense := entry.Amount.Abs()
			memberships := expenseGroups(entry.Category, entry.Account)
			for _, group := range memberships {
				groups[group] = groups[group].Add(expense)
			}
			// no detalhamento a categoria aparece uma vez, no primeiro grupo
			group := memberships[0]

			category := strings.TrimSpace(entry.Category)
			if category == "" {
				category = noCategoryLabel
			}
			key := string(group) + "|" + category
			breakdown, ok := categoryTotals[key]
			if !ok {
				breakdown = &domain.CategoryBreakdown{Category: category, Group: group, Amount: decimal.Zero}
				categoryTotals[key] = breakdown
				categoryOrder = append(categoryOrder, key)
			}
			breakdown.Amount = breakdown.Amount.Add(expense)
		}
	}

	categories := make([]domain.CategoryBreakdown, 0, len(categoryOrder))
	for _, key := range categoryOrder {
		categories = append(categories, *categoryTotals[key])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	direct := a.expenseLine(groups[domain.ExpenseDirect])
	operational := a.expenseLine(groups[domain.ExpenseOperational])
	nonOperational := a.expenseLine(groups[domain.ExpenseNonOperational])

	totalExpenses := domain.BudgetLine{
		Realized:  direct.Realized.Add(operational.Realized).Add(nonOperational.Realized),
		Projected: direct.Projected.Add(operational.Projected).Add(nonOperational.Projected),
	}

	return domain.BudgetSummary{
		OpeningBalance: decimal.Zero,
		Revenue: domain.BudgetLine{
			Realized:  revenue,
			Projected: revenue.Mul(a.Projection.Revenue).Round(2),
		},
		DirectExpenses:         direct,
		OperationalExpenses:    operational,
		NonOperationalExpenses: nonOperational,
		TotalExpenses:          totalExpenses,
		CashBalance:            revenue.Sub(totalExpenses.Realized),
		Categories:             categories,
		ProjectionSynthetic:    true,
	}
}

func (a Aggregator) expenseLine(realized decimal.Decimal) domain.BudgetLine {
	return domain.BudgetLine{
		Realized:  realized,
		Projected: realized.Mul(a.Projection.Expense).Round(2),
	}
}

// AvailablePeriods lista os meses com dados, do mais recente para o mais antigo
func (a Aggregator) AvailablePeriods(pooled []domain.RevenueRecord) []domain.Option {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, record := range pooled {
		date, ok := a.Window.Normalize(record.OccurredOn)
		if !ok {
			continue
		}
		key := domain.PeriodKey(date)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	options := make([]domain.Option, 0, len(keys)+1)
	options = append(options, domain.Option{Value: domain.All, Label: allPeriodsLabel})
	for _, key := range keys {
		options = append(options, domain.Option{Value: key, Label: periodLabel(key)})
	}

	return options
}

// AvailableClients lista os clientes distintos em ordem alfabética
func (a Aggregator) AvailableClients(pooled []domain.RevenueRecord) []domain.Option {
	seen := make(map[string]struct{})
	clients := make([]string, 0)
	for _, record := range pooled {
		client := strings.TrimSpace(record.Client)
		if client == "" {
			continue
		}
		if _, exists := seen[client]; exists {
			continue
		}
		seen[client] = struct{}{}
		clients = append(clients, client)
	}

	sort.Strings(clients)

	options := make([]domain.Option, 0, len(clients)+1)
	options = append(options, domain.Option{Value: domain.All, Label: allClientsLabel})
	for _, client := range clients {
		options = append(options, domain.Option{Value: client, Label: client})
	}

	return options
}

// ResolveFilter volta para "all" o período ou cliente que não existe mais nas opções
func ResolveFilter(filter domain.Filter, periods, clients []domain.Option) domain.Filter {
	if filter.Period == "" || !hasOption(periods, filter.Period) {
		filter.Period = domain.All
	}

	filter.Client = strings.TrimSpace(filter.Client)
	if filter.Client == "" || !hasOption(clients, filter.Client) {
		filter.Client = domain.All
	}

	return filter
}

func hasOption(options []domain.Option, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// KindTotals monta os cartões de total e quantidade por tipo
func (a Aggregator) KindTotals(snapshot domain.Snapshot, filter domain.Filter) domain.Overview {
	overview := domain.Overview{
		Kinds: make([]domain.KindTotal, 0, len(domain.RevenueKinds)),
		Total: decimal.Zero,
	}

	for _, kind := range domain.RevenueKinds {
		filtered := a.FilterRevenue(snapshot.ByKind(kind), filter)
		amount := sumRevenue(filtered)

		overview.Kinds = append(overview.Kinds, domain.KindTotal{
			Kind:   kind,
			Label:  kind.Label(),
			Amount: amount,
			Count:  len(filtered),
		})
		overview.Total = overview.Total.Add(amount)
	}

	return overview
}
