package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler"
	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	Database      handler.Pinger
	Reporter      reporting.Reporter
	Importer      ingesting.Importer
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Reporter == nil || deps.Importer == nil || deps.Authenticator == nil {
		return nil, fmt.Errorf("api: reporter, importer e authenticator são obrigatórios")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Imports(deps.Importer, config.Import.MaxFileSizeBytes())...),
		router.WithRoutes(handler.Dashboard(deps.Reporter)...),
		router.WithRoutes(handler.Budget(deps.Reporter)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
