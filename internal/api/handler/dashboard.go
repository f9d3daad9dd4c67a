package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

// filteredHandler valida o filtro da query e responde com o resultado de fetch
func filteredHandler[T any](name string, fetch func(ctx context.Context, filter domain.Filter) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseFilter(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("dashboard: filtro inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": filter.Period,
			"client": filter.Client,
		}).Debugf("dashboard: calculando %s", name)

		result, err := fetch(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Errorf("dashboard: erro ao calcular %s", name)
			writeServiceError(w, err, apiErrors.ErrInvalidFormat)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func GetFilterOptions(service reporting.Reporter) http.Handler {
	return filteredHandler("opções de filtro", service.FilterOptions)
}

func GetOverview(service reporting.Reporter) http.Handler {
	return filteredHandler("totais por tipo", service.Overview)
}

func GetMonthlyRevenue(service reporting.Reporter) http.Handler {
	return filteredHandler("faturamento mensal", service.MonthlyRevenue)
}

func GetClientRanking(service reporting.Reporter) http.Handler {
	return filteredHandler("ranking de clientes", service.ClientRanking)
}

func GetMetrics(service reporting.Reporter) http.Handler {
	return filteredHandler("métricas", service.Metrics)
}

func GetBudget(service reporting.Reporter) http.Handler {
	return filteredHandler("orçamento", service.Budget)
}
