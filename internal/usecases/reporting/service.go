package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

const snapshotCacheKey = "snapshot"

// Reporter expõe os indicadores do painel e do orçamento
type Reporter interface {
	FilterOptions(ctx context.Context, filter domain.Filter) (domain.FilterOptions, error)
	Overview(ctx context.Context, filter domain.Filter) (domain.Overview, error)
	MonthlyRevenue(ctx context.Context, filter domain.Filter) ([]domain.MonthlyRevenuePoint, error)
	ClientRanking(ctx context.Context, filter domain.Filter) ([]domain.ClientRankingItem, error)
	Metrics(ctx context.Context, filter domain.Filter) (domain.DashboardMetrics, error)
	Budget(ctx context.Context, filter domain.Filter) (domain.BudgetSummary, error)
	Invalidate()
}

type Service struct {
	recordRepo repository.RecordRepository
	aggregator Aggregator
	cache      *cache.Cache
	now        func() time.Time

	// generation muda a cada Invalidate; leitura iniciada antes não grava no cache
	mu         sync.Mutex
	generation uint64
}

func NewService(recordRepo repository.RecordRepository, cfg *config.Config) *Service {
	return &Service{
		recordRepo: recordRepo,
		aggregator: NewAggregator(cfg),
		cache:      cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval),
		now:        time.Now,
	}
}

// Invalidate descarta o snapshot em cache. Chamado depois de importações e exclusões.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cache.Delete(snapshotCacheKey)
}

// store grava o snapshot somente se nenhum Invalidate ocorreu desde o início da leitura
func (s *Service) store(snapshot domain.Snapshot, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return
	}
	s.cache.SetDefault(snapshotCacheKey, snapshot)
}

// Snapshot lê as quatro coleções em paralelo. Uma leitura com erro vira coleção vazia
// para que o painel continue respondendo.
func (s *Service) Snapshot(ctx context.Context) domain.Snapshot {
	if cached, found := s.cache.Get(snapshotCacheKey); found {
		return cached.(domain.Snapshot)
	}

	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	logger := log.ForContext(ctx)

	var (
		snapshot domain.Snapshot
		failed   bool
		mu       sync.Mutex
	)

	fail := func(err error, kind domain.RecordKind) {
		logger.WithError(err).WithFields(log.Fields{
			"record_kind": kind,
		}).Error("dashboard: erro ao carregar registros, usando coleção vazia")

		mu.Lock()
		failed = true
		mu.Unlock()
	}

	wg := sync.WaitGroup{}
	wg.Add(len(domain.RevenueKinds) + 1)

	revenue := make([][]domain.RevenueRecord, len(domain.RevenueKinds))
	for i, kind := range domain.RevenueKinds {
		go func(i int, kind domain.RecordKind) {
			defer wg.Done()
			records, err := s.recordRepo.ListRevenue(ctx, kind)
			if err != nil {
				fail(err, kind)
				return
			}
			revenue[i] = records
		}(i, kind)
	}

	go func() {
		defer wg.Done()
		entries, err := s.recordRepo.ListFinancial(ctx)
		if err != nil {
			fail(err, domain.RecordKindFinancial)
			return
		}
		snapshot.Financial = entries
	}()

	wg.Wait()

	snapshot.Contracts = revenue[0]
	snapshot.Services = revenue[1]
	snapshot.Sales = revenue[2]

	// não guarda resultado parcial
	if !failed {
		s.store(snapshot, generation)
	}

	return snapshot
}

// FilterOptions lista períodos e clientes e corrige a seleção que não existe mais
func (s *Service) FilterOptions(ctx context.Context, filter domain.Filter) (domain.FilterOptions, error) {
	if err := filter.Validate(); err != nil {
		return domain.FilterOptions{}, err
	}

	pooled := s.Snapshot(ctx).Revenue()
	periods := s.aggregator.AvailablePeriods(pooled)
	clients := s.aggregator.AvailableClients(pooled)

	return domain.FilterOptions{
		Periods:  periods,
		Clients:  clients,
		Selected: ResolveFilter(filter, periods, clients),
	}, nil
}

func (s *Service) Overview(ctx context.Context, filter domain.Filter) (domain.Overview, error) {
	if err := filter.Validate(); err != nil {
		return domain.Overview{}, err
	}
	return s.aggregator.KindTotals(s.Snapshot(ctx), filter), nil
}

func (s *Service) MonthlyRevenue(ctx context.Context, filter domain.Filter) ([]domain.MonthlyRevenuePoint, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.aggregator.MonthlyRevenue(s.Snapshot(ctx).Revenue(), filter), nil
}

func (s *Service) ClientRanking(ctx context.Context, filter domain.Filter) ([]domain.ClientRankingItem, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.aggregator.ClientRanking(s.Snapshot(ctx).Revenue(), filter, DefaultRankingLimit), nil
}

func (s *Service) Metrics(ctx context.Context, filter domain.Filter) (domain.DashboardMetrics, error) {
	if err := filter.Validate(); err != nil {
		return domain.DashboardMetrics{}, err
	}
	return s.aggregator.Metrics(s.Snapshot(ctx), filter, s.now()), nil
}

func (s *Service) Budget(ctx context.Context, filter domain.Filter) (domain.BudgetSummary, error) {
	if err := filter.Validate(); err != nil {
		return domain.BudgetSummary{}, err
	}
	return s.aggregator.Budget(s.Snapshot(ctx).Financial, filter), nil
}
