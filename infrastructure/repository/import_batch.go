package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const (
	importedFilesTable = "imported_files"
)

var importBatchColumns = []string{
	"id",
	"file_name",
	"record_kind",
	"size_label",
	"COALESCE(checksum, '')",
	"imported_at",
	"status",
	"record_count",
	"error_message",
}

type ImportBatchRepository interface {
	Create(ctx context.Context, tx *sql.Tx, batch *domain.ImportBatch) error
	List(ctx context.Context) ([]*domain.ImportBatch, error)
	GetByID(ctx context.Context, id string) (*domain.ImportBatch, error)
	FindSuccessfulByChecksum(ctx context.Context, checksum string) (*domain.ImportBatch, error)
	Delete(ctx context.Context, tx *sql.Tx, id string) error
	DeleteFailedBefore(ctx context.Context, before time.Time) (int64, error)
}

type importBatchRepository struct {
	conn *postgres.Connection
}

func NewImportBatchRepository(conn *postgres.Connection) ImportBatchRepository {
	return &importBatchRepository{
		conn: conn,
	}
}

func (r *importBatchRepository) execer(tx *sql.Tx) execer {
	if tx != nil {
		return tx
	}
	return r.conn
}

func (r *importBatchRepository) Create(ctx context.Context, tx *sql.Tx, batch *domain.ImportBatch) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(importedFilesTable).
		Columns(
			"id",
			"file_name",
			"record_kind",
			"size_label",
			"checksum",
			"imported_at",
			"status",
			"record_count",
			"error_message",
		).
		Values(
			batch.ID,
			batch.FileName,
			string(batch.Kind),
			batch.SizeLabel,
			batch.Checksum,
			batch.ImportedOn,
			string(batch.Status),
			batch.RecordCount,
			batch.ErrorMessage,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.execer(tx).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateBatchID
		}
		return fmt.Errorf("erro ao inserir importação: %w", err)
	}

	return nil
}

func (r *importBatchRepository) List(ctx context.Context) ([]*domain.ImportBatch, error) {
	query, args, err := squirrel.
		Select(importBatchColumns...).
		From(importedFilesTable).
		OrderBy("imported_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.ImportBatch, 0)
	for rows.Next() {
		batch, err := scanImportBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear importação: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}

func (r *importBatchRepository) GetByID(ctx context.Context, id string) (*domain.ImportBatch, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *importBatchRepository) FindSuccessfulByChecksum(ctx context.Context, checksum string) (*domain.ImportBatch, error) {
	return r.getOne(ctx, squirrel.Eq{
		"checksum": checksum,
		"status":   string(domain.BatchStatusSuccess),
	})
}

func (r *importBatchRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.ImportBatch, error) {
	query, args, err := squirrel.
		Select(importBatchColumns...).
		From(importedFilesTable).
		Where(where).
		OrderBy("imported_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	batch, err := scanImportBatch(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear importação: %w", err)
	}

	return batch, nil
}

func (r *importBatchRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	query, args, err := squirrel.
		Delete(importedFilesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.execer(tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao excluir importação: %w", err)
	}

	return nil
}

// DeleteFailedBefore remove do histórico as importações com erro anteriores à data
func (r *importBatchRepository) DeleteFailedBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(importedFilesTable).
		Where(squirrel.Eq{"status": string(domain.BatchStatusError)}).
		Where(squirrel.Lt{"imported_at": before}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir importações com erro: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas excluídas: %w", err)
	}

	return affected, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanImportBatch(row scanner) (*domain.ImportBatch, error) {
	var (
		batch        domain.ImportBatch
		kind         string
		status       string
		errorMessage sql.NullString
	)

	err := row.Scan(
		&batch.ID,
		&batch.FileName,
		&kind,
		&batch.SizeLabel,
		&batch.Checksum,
		&batch.ImportedOn,
		&status,
		&batch.RecordCount,
		&errorMessage,
	)
	if err != nil {
		return nil, err
	}

	batch.Kind = domain.RecordKind(kind)
	batch.KindLabel = batch.Kind.Label()
	batch.Status = domain.BatchStatus(status)
	if errorMessage.Valid {
		batch.ErrorMessage = &errorMessage.String
	}

	return &batch, nil
}
