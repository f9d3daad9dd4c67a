package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

const (
	uploadField     = "files"
	multipartMemory = 32 << 20
)

// ImportFiles recebe um ou mais arquivos no campo "files" e importa cada um
func ImportFiles(service ingesting.Importer, maxFileSize int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			logger.WithError(err).Warn("imports: requisição multipart inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie os arquivos no campo files (multipart/form-data)", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		headers := r.MultipartForm.File[uploadField]
		if len(headers) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado", nil)
			return
		}

		files := make([]ingesting.UploadedFile, 0, len(headers))
		for _, header := range headers {
			file, err := readUpload(header, maxFileSize)
			if err != nil {
				logger.WithError(err).WithField("file_name", header.Filename).Error("imports: erro ao ler arquivo enviado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo "+header.Filename, nil)
				return
			}
			files = append(files, file)
		}

		results := service.ImportFiles(r.Context(), files)

		failed := 0
		for _, result := range results {
			if result.Error != "" {
				failed++
			}
		}

		logger.WithFields(log.Fields{
			"record_count": len(results),
			"failed":       failed,
		}).Info("imports: upload processado")

		writeJSON(w, http.StatusOK, map[string]any{
			"results":  results,
			"imported": len(results) - failed,
			"failed":   failed,
		})
	})
}

// readUpload não carrega o conteúdo de arquivos acima do limite; o serviço os rejeita pelo tamanho
func readUpload(header *multipart.FileHeader, maxFileSize int64) (ingesting.UploadedFile, error) {
	file := ingesting.UploadedFile{Name: header.Filename, Size: header.Size}
	if maxFileSize > 0 && header.Size > maxFileSize {
		return file, nil
	}

	f, err := header.Open()
	if err != nil {
		return file, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return file, err
	}
	file.Content = content

	return file, nil
}

func ListImports(service ingesting.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		batches, err := service.ListBatches(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("imports: erro ao listar importações")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		if batches == nil {
			batches = []*domain.ImportBatch{}
		}

		writeJSON(w, http.StatusOK, batches)
	})
}

func GetImportStats(service ingesting.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("imports: erro ao calcular estatísticas")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

// DeleteImport remove a importação e as linhas gravadas por ela
func DeleteImport(service ingesting.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteBatch(r.Context(), id); err != nil {
			logger.WithError(err).WithField("batch_id", id).Warn("imports: erro ao excluir importação")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
