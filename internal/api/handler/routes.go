package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Imports(service ingesting.Importer, maxFileSize int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports",
			Method:      http.MethodPost,
			Handler:     ImportFiles(service, maxFileSize),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/imports",
			Method:      http.MethodGet,
			Handler:     ListImports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/imports/stats",
			Method:      http.MethodGet,
			Handler:     GetImportStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/imports/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/monthly-revenue",
			Method:      http.MethodGet,
			Handler:     GetMonthlyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/ranking",
			Method:      http.MethodGet,
			Handler:     GetClientRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Budget(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budget",
			Method:      http.MethodGet,
			Handler:     GetBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
