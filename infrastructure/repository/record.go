// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const (
	financialTable     = "financial_statements"
	defaultInsertChunk = 500
)

var revenueTables = map[domain.RecordKind]string{
	domain.RecordKindContracts: "contracts",
	domain.RecordKindServices:  "services",
	domain.RecordKindSales:     "sales",
}

func tableFor(kind domain.RecordKind) (string, error) {
	if kind == domain.RecordKindFinancial {
		return financialTable, nil
	}
	table, ok := revenueTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRecordKind, kind)
	}
	return table, nil
}

type RecordRepository interface {
	InsertRevenue(ctx context.Context, tx *sql.Tx, kind domain.RecordKind, batchID string, records []domain.RevenueRecord) error
	InsertFinancial(ctx context.Context, tx *sql.Tx, batchID string, entries []domain.FinancialEntry) error
	ListRevenue(ctx context.Context, kind domain.RecordKind) ([]domain.RevenueRecord, error)
	ListFinancial(ctx context.Context) ([]domain.FinancialEntry, error)
	DeleteByBatch(ctx context.Context, tx *sql.Tx, kind domain.RecordKind, batchID string) (int64, error)
}

type recordRepository struct {
	conn      *postgres.Connection
	chunkSize int
}

func NewRecordRepository(conn *postgres.Connection, chunkSize int) RecordRepository {
	if chunkSize <= 0 {
		chunkSize = defaultInsertChunk
	}
	return &recordRepository{
		conn:      conn,
		chunkSize: chunkSize,
	}
}

func (r *recordRepository) execer(tx *sql.Tx) execer {
	if tx != nil {
		return tx
	}
	return r.conn
}

func (r *recordRepository) InsertRevenue(ctx context.Context, tx *sql.Tx, kind domain.RecordKind, batchID string, records []domain.RevenueRecord) error {
	if len(records) == 0 {
		return nil
	}

	table, ok := revenueTables[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRecordKind, kind)
	}

	for start := 0; start < len(records); start += r.chunkSize {
		end := min(start+r.chunkSize, len(records))

		query := squirrel.StatementBuilder.
			Insert(table).
			Columns("cliente", "valor", "data", "imported_file_id").
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range records[start:end] {
			query = query.Values(record.Client, record.Amount, record.OccurredOn, batchID)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := r.execer(tx).ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao inserir registros em %s: %w", table, err)
		}
	}

	return nil
}

func (r *recordRepository) InsertFinancial(ctx context.Context, tx *sql.Tx, batchID string, entries []domain.FinancialEntry) error {
	if len(entries) == 0 {
		return nil
	}

	for start := 0; start < len(entries); start += r.chunkSize {
		end := min(start+r.chunkSize, len(entries))

		query := squirrel.StatementBuilder.
			Insert(financialTable).
			Columns("situacao", "data", "cliente", "conta", "categoria", "valor", "saldo", "imported_file_id").
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range entries[start:end] {
			query = query.Values(
				entry.Status,
				entry.OccurredOn,
				entry.Client,
				entry.Account,
				entry.Category,
				entry.Amount,
				entry.RunningBalance,
				batchID,
			)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := r.execer(tx).ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao inserir extratos financeiros: %w", err)
		}
	}

	return nil
}

func (r *recordRepository) ListRevenue(ctx context.Context, kind domain.RecordKind) ([]domain.RevenueRecord, error) {
	table, ok := revenueTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecordKind, kind)
	}

	query, args, err := squirrel.
		Select("cliente", "valor", "data", "COALESCE(imported_file_id, '')").
		From(table).
		OrderBy("id ASC").
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

	records := make([]domain.RevenueRecord, 0)
	for rows.Next() {
		record := domain.RevenueRecord{Kind: kind}
		if err := rows.Scan(&record.Client, &record.Amount, &record.OccurredOn, &record.BatchID); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de %s: %w", table, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *recordRepository) ListFinancial(ctx context.Context) ([]domain.FinancialEntry, error) {
	query, args, err := squirrel.
		Select(
			"situacao",
			"data",
			"cliente",
			"conta",
			"categoria",
			"valor",
			"saldo",
			"COALESCE(imported_file_id, '')",
		).
		From(financialTable).
		OrderBy("id ASC").
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

	entries := make([]domain.FinancialEntry, 0)
	for rows.Next() {
		var entry domain.FinancialEntry
		err := rows.Scan(
			&entry.Status,
			&entry.OccurredOn,
			&entry.Client,
			&entry.Account,
			&entry.Category,
			&entry.Amount,
			&entry.RunningBalance,
			&entry.BatchID,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear extrato financeiro: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// DeleteByBatch remove apenas as linhas gravadas pela importação informada
func (r *recordRepository) DeleteByBatch(ctx context.Context, tx *sql.Tx, kind domain.RecordKind, batchID string) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"imported_file_id": batchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.execer(tx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir registros de %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas excluídas: %w", err)
	}

	return affected, nil
}
