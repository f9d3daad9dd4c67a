package ingesting

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
	"golang.org/x/crypto/blake2b"
)

// UploadedFile é um arquivo recebido no upload
type UploadedFile struct {
	Name    string
	Size    int64
	Content []byte
}

type Importer interface {
	ImportFiles(ctx context.Context, files []UploadedFile) []domain.ImportResult
	ListBatches(ctx context.Context) ([]*domain.ImportBatch, error)
	DeleteBatch(ctx context.Context, id string) error
	Stats(ctx context.Context) (domain.ImportStats, error)
	PurgeFailedBatches(ctx context.Context, before time.Time) (int64, error)
}

// Transactor abre transações no banco
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// CacheInvalidator descarta dados agregados depois de mudanças na base
type CacheInvalidator interface {
	Invalidate()
}

type Service struct {
	recordRepo  repository.RecordRepository
	batchRepo   repository.ImportBatchRepository
	transactor  Transactor
	invalidator CacheInvalidator
	cfg         config.Import
	now         func() time.Time
	generateID  func() (string, error)
}

func NewService(
	recordRepo repository.RecordRepository,
	batchRepo repository.ImportBatchRepository,
	transactor Transactor,
	invalidator CacheInvalidator,
	cfg *config.Config,
) Importer {
	return &Service{
		recordRepo:  recordRepo,
		batchRepo:   batchRepo,
		transactor:  transactor,
		invalidator: invalidator,
		cfg:         cfg.Import,
		now:         time.Now,
		generateID:  utils.GenerateID,
	}
}

// ImportFiles processa os arquivos um após o outro. A falha de um arquivo
// vira uma importação com erro no histórico e não interrompe os demais.
func (s *Service) ImportFiles(ctx context.Context, files []UploadedFile) []domain.ImportResult {
	logger := log.ForContext(ctx)
	results := make([]domain.ImportResult, 0, len(files))
	imported := 0

	for _, file := range files {
		batch, err := s.importFile(ctx, file)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"file_name": file.Name,
			}).Warn("imports: falha ao importar arquivo")

			failed := s.recordFailure(ctx, batch, err)
			results = append(results, domain.ImportResult{Batch: failed, Error: err.Error()})
			continue
		}

		imported++
		logger.WithFields(log.Fields{
			"batch_id":     batch.ID,
			"file_name":    batch.FileName,
			"record_kind":  batch.Kind,
			"record_count": batch.RecordCount,
		}).Info("imports: arquivo importado com sucesso")

		results = append(results, domain.ImportResult{Batch: batch})
	}

	if imported > 0 {
		s.invalidate()
	}

	return results
}

func (s *Service) importFile(ctx context.Context, file UploadedFile) (domain.ImportBatch, error) {
	batch := domain.ImportBatch{
		FileName:   file.Name,
		Kind:       domain.RecordKindUnknown,
		SizeLabel:  utils.SizeLabel(file.Size),
		ImportedOn: s.now(),
	}

	id, err := s.generateID()
	if err != nil {
		return batch, errors.Wrap(err, "erro ao gerar id da importação")
	}
	batch.ID = id

	if limit := s.cfg.MaxFileSizeBytes(); limit > 0 && file.Size > limit {
		return batch, NewFileImportError(ErrFileTooLarge, apiErrors.ErrFileTooLarge, file.Name, "")
	}

	if !SupportedExtension(file.Name) {
		return batch, NewFileImportError(ErrUnsupportedFormat, apiErrors.ErrUnsupportedFile, file.Name, "")
	}

	sum := blake2b.Sum256(file.Content)
	batch.Checksum = hex.EncodeToString(sum[:])

	sheet, err := ReadWorkbook(file.Name, file.Content)
	if err != nil {
		return batch, NewFileImportError(err, apiErrors.ErrInvalidFormat, file.Name, "")
	}

	kind := Classify(sheet.Header)
	if kind == domain.RecordKindUnknown {
		return batch, NewFileImportError(ErrUnrecognizedSheet, apiErrors.ErrUnrecognizedSheet, file.Name, "")
	}

	if s.cfg.RejectDuplicates {
		existing, err := s.batchRepo.FindSuccessfulByChecksum(ctx, batch.Checksum)
		if err != nil {
			return batch, errors.Wrap(err, "erro ao verificar importações anteriores")
		}
		if existing != nil {
			return batch, NewFileImportError(ErrDuplicateFile, apiErrors.ErrDuplicateFile, file.Name, existing.ID)
		}
	}

	parsed := Parse(kind, sheet.Header, sheet.Rows)

	log.ForContext(ctx).WithFields(log.Fields{
		"file_name":   file.Name,
		"record_kind": kind,
		"positional":  parsed.Layout.Positional,
		"valid_rows":  parsed.Count(),
		"skipped":     parsed.Skipped,
	}).Debug("imports: planilha interpretada")

	batch.Kind = kind
	batch.KindLabel = kind.Label()
	batch.Status = domain.BatchStatusSuccess
	batch.RecordCount = parsed.Count()

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.batchRepo.Create(ctx, tx, &batch); err != nil {
			return err
		}
		if kind == domain.RecordKindFinancial {
			return s.recordRepo.InsertFinancial(ctx, tx, batch.ID, parsed.Financial)
		}
		return s.recordRepo.InsertRevenue(ctx, tx, kind, batch.ID, parsed.Revenue)
	})
	if err != nil {
		return batch, NewFileImportError(ErrPersistRecords, apiErrors.ErrDatabaseOperation, file.Name, err.Error())
	}

	return batch, nil
}

// recordFailure grava a importação com erro para aparecer no histórico
func (s *Service) recordFailure(ctx context.Context, batch domain.ImportBatch, cause error) domain.ImportBatch {
	message := cause.Error()
	batch.Kind = domain.RecordKindUnknown
	batch.KindLabel = batch.Kind.Label()
	batch.Status = domain.BatchStatusError
	batch.RecordCount = 0
	batch.ErrorMessage = &message

	if batch.ID == "" {
		return batch
	}

	if err := s.batchRepo.Create(ctx, nil, &batch); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"batch_id":  batch.ID,
			"file_name": batch.FileName,
		}).Error("imports: erro ao registrar importação com falha")
	}

	return batch
}

func (s *Service) ListBatches(ctx context.Context) ([]*domain.ImportBatch, error) {
	batches, err := s.batchRepo.List(ctx)
	if err != nil {
		return nil, NewImportError(ErrListBatches, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return batches, nil
}

// DeleteBatch remove a importação e somente as linhas gravadas por ela
func (s *Service) DeleteBatch(ctx context.Context, id string) error {
	if id == "" {
		return NewImportError(ErrBatchIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return NewImportError(ErrDeleteBatch, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if batch == nil {
		return NewImportError(ErrBatchNotFound, apiErrors.ErrImportNotFound, id)
	}

	var removed int64
	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if batch.Kind.Valid() {
			n, err := s.recordRepo.DeleteByBatch(ctx, tx, batch.Kind, batch.ID)
			if err != nil {
				return err
			}
			removed = n
		}
		return s.batchRepo.Delete(ctx, tx, batch.ID)
	})
	if err != nil {
		return NewImportError(ErrDeleteBatch, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"batch_id":      batch.ID,
		"record_kind":   batch.Kind,
		"removed_count": removed,
	}).Info("imports: importação excluída")

	s.invalidate()

	return nil
}

func (s *Service) Stats(ctx context.Context) (domain.ImportStats, error) {
	batches, err := s.ListBatches(ctx)
	if err != nil {
		return domain.ImportStats{}, err
	}

	var stats domain.ImportStats
	for _, batch := range batches {
		switch batch.Status {
		case domain.BatchStatusSuccess:
			stats.Successful++
			stats.TotalRecords += batch.RecordCount
		case domain.BatchStatusError:
			stats.Failed++
		}
	}

	return stats, nil
}

// PurgeFailedBatches apaga do histórico as importações com erro anteriores a before
func (s *Service) PurgeFailedBatches(ctx context.Context, before time.Time) (int64, error) {
	removed, err := s.batchRepo.DeleteFailedBefore(ctx, before)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao limpar histórico de importações")
	}
	return removed, nil
}

func (s *Service) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}
