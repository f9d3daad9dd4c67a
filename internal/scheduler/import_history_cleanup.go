// Package scheduler contém os serviços de agendamento de manutenção da base
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

// FailedBatchPurger remove do histórico as importações com erro
type FailedBatchPurger interface {
	PurgeFailedBatches(ctx context.Context, before time.Time) (int64, error)
}

type ImportHistoryCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

type ImportHistoryCleanupService struct {
	scheduler           *gocron.Scheduler
	purger              FailedBatchPurger
	config              ImportHistoryCleanupConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemovedCount    int64
}

func NewImportHistoryCleanupService(purger FailedBatchPurger, cfg *config.Config) *ImportHistoryCleanupService {
	cleanupConfig := ImportHistoryCleanupConfig{
		CronSchedule:  cfg.ImportHistoryCleanup.CronSchedule,  // Default: 2h da manhã todos os dias
		RetentionDays: cfg.ImportHistoryCleanup.RetentionDays, // Default: 30 dias
		Enabled:       cfg.ImportHistoryCleanup.Enabled,       // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
	}).Info("Configuração da limpeza do histórico de importações carregada")

	return &ImportHistoryCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		purger:    purger,
		config:    cleanupConfig,
		now:       time.Now,
	}
}

func (s *ImportHistoryCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza do histórico de importações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza do histórico de importações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupFailedImports(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza do histórico de importações")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do histórico de importações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do histórico de importações")
		s.scheduler.Stop()
	}()

	return nil
}

// CleanupFailedImports apaga as importações com erro mais antigas que o período de retenção
func (s *ImportHistoryCleanupService) CleanupFailedImports(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza do histórico de importações já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var removed int64
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastRemovedCount = removed
		s.syncMutex.Unlock()
	}()

	retention := s.config.RetentionDays
	if retention <= 0 {
		retention = 30
	}
	before := s.now().AddDate(0, 0, -retention)

	removed, err := s.purger.PurgeFailedBatches(ctx, before)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"removed_count": removed,
		"before":        before.Format(time.DateOnly),
	}).Info("Limpeza do histórico de importações concluída")

	return nil
}

// TriggerManualSync executa a limpeza fora do agendamento
func (s *ImportHistoryCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Limpeza do histórico já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando limpeza manual do histórico de importações")
	go func() {
		if err := s.CleanupFailedImports(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual do histórico de importações")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ImportHistoryCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_removed_count":     s.lastRemovedCount,
	}
}
