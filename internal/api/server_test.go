package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	ingestingmocks "github.com/vfg2006/revenue-dashboard-api/internal/usecases/ingesting/mocks"
	reportingmocks "github.com/vfg2006/revenue-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testServer(t *testing.T) (*Server, *reportingmocks.MockReporter, *authenticating.Service) {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:5173"}},
		Auth:   config.Auth{Secret: "segredo-de-teste"},
		Import: config.Import{MaxFileSizeMB: 1},
	}

	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	authenticator := authenticating.NewService(cfg)

	srv, err := New(cfg, Dependencies{
		Reporter:      reporter,
		Importer:      ingestingmocks.NewMockImporter(ctrl),
		Authenticator: authenticator,
	})
	require.NoError(t, err)

	return srv, reporter, authenticator
}

func TestServer_MiddlewareChain(t *testing.T) {
	srv, reporter, authenticator := testServer(t)

	viewerToken, err := authenticator.GenerateToken("viewer@empresa.com", "Viewer", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	t.Run("healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("preflight não exige token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/overview", nil)
		req.Header.Set("Origin", "http://localhost:5173")

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("visualizador acessa o painel", func(t *testing.T) {
		reporter.EXPECT().Overview(gomock.Any(), domain.NewFilter()).Return(domain.Overview{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		req.Header.Set("Authorization", "Bearer "+viewerToken)

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("visualizador não acessa o orçamento", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/budget", nil)
		req.Header.Set("Authorization", "Bearer "+viewerToken)

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Dependencies{})
	assert.Error(t, err)
}
