package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("http: erro ao enviar resposta")
	}
}

// writeServiceError usa o código do erro de importação quando houver
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	code := fallback
	var importErr *ingesting.ImportError
	if errors.As(err, &importErr) && importErr.Code != "" {
		code = importErr.Code
	}

	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// parseFilter lê period, client, start e end da query string
func parseFilter(r *http.Request) (domain.Filter, error) {
	query := r.URL.Query()
	filter := domain.NewFilter()

	if period := strings.TrimSpace(query.Get("period")); period != "" {
		filter.Period = period
	}
	if client := strings.TrimSpace(query.Get("client")); client != "" {
		filter.Client = client
	}

	start, err := utils.ParseDate(strings.TrimSpace(query.Get("start")))
	if err != nil {
		return filter, domain.ErrInvalidDateRange
	}
	end, err := utils.ParseDate(strings.TrimSpace(query.Get("end")))
	if err != nil {
		return filter, domain.ErrInvalidDateRange
	}
	filter.DateRange = domain.DateRange{Start: start, End: end}

	return filter, filter.Validate()
}
