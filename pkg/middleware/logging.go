package middleware

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

// CorrelationIDHeader propaga o ID de correlação entre o painel e a API
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequest = 500 * time.Millisecond

// LoggingMiddleware registra o fim de cada requisição com o filtro do painel
// ou o tamanho do envio de planilhas
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := requestFields(r)
			fields["correlation_id"] = correlationID
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()

			logger := log.L.WithFields(fields)
			switch {
			case lrw.statusCode >= 500:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= 400:
				logger.Warn("Requisição finalizada com aviso")
			case elapsed > slowRequest:
				logger.Warn("Requisição lenta")
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

// requestFields monta os campos do log conforme a rota
func requestFields(r *http.Request) log.Fields {
	fields := log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"remote_addr": r.RemoteAddr,
		"user_agent":  r.UserAgent(),
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/imports":
		fields["upload_bytes"] = r.ContentLength
	case strings.HasPrefix(r.URL.Path, "/v1/dashboard"), strings.HasPrefix(r.URL.Path, "/v1/budget"):
		query := r.URL.Query()
		for _, key := range []string{"period", "client", "start", "end"} {
			if value := strings.TrimSpace(query.Get(key)); value != "" {
				fields[key] = value
			}
		}
	}

	return fields
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte um panic do handler em 500 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"error":       err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
