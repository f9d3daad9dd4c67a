package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/api"
	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/scheduler"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logrus.SetLevel(logrus.InfoLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	recordRepo := repository.NewRecordRepository(pgConn, cfg.Import.InsertChunkSize)
	batchRepo := repository.NewImportBatchRepository(pgConn)

	reportingService := reporting.NewService(recordRepo, cfg)
	importService := ingesting.NewService(recordRepo, batchRepo, pgConn, reportingService, cfg)
	authenticator := authenticating.NewService(cfg)

	cleanupService := scheduler.NewImportHistoryCleanupService(importService, cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do histórico de importações")
	}

	server, err := api.New(cfg, api.Dependencies{
		Database:      pgConn,
		Reporter:      reportingService,
		Importer:      importService,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			ImportHistoryCleanup: cleanupService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do binário ser encontrado em go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
