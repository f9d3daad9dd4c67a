package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &postgres.Connection{DB: db}, mock
}

func TestRecordRepository_InsertRevenueInChunks(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRecordRepository(conn, 2)

	records := []domain.RevenueRecord{
		{Client: "A", Amount: decimal.NewFromInt(10), OccurredOn: "01/03/2024"},
		{Client: "B", Amount: decimal.NewFromInt(20), OccurredOn: "02/03/2024"},
		{Client: "C", Amount: decimal.NewFromInt(30), OccurredOn: "03/03/2024"},
	}

	mock.ExpectExec(`INSERT INTO sales \(cliente,valor,data,imported_file_id\) VALUES \(\$1,\$2,\$3,\$4\),\(\$5,\$6,\$7,\$8\)`).
		WithArgs("A", sqlmock.AnyArg(), "01/03/2024", "lote1", "B", sqlmock.AnyArg(), "02/03/2024", "lote1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO sales \(cliente,valor,data,imported_file_id\) VALUES \(\$1,\$2,\$3,\$4\)$`).
		WithArgs("C", sqlmock.AnyArg(), "03/03/2024", "lote1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertRevenue(context.Background(), nil, domain.RecordKindSales, "lote1", records)

	require.NoError(t, err)
}

func TestRecordRepository_InsertRevenueRejectsUnknownKind(t *testing.T) {
	conn, _ := newMockConnection(t)
	repo := NewRecordRepository(conn, 0)

	err := repo.InsertRevenue(context.Background(), nil, domain.RecordKindFinancial, "lote1",
		[]domain.RevenueRecord{{Client: "A", Amount: decimal.NewFromInt(1)}})

	assert.ErrorIs(t, err, ErrUnknownRecordKind)
}

func TestRecordRepository_InsertFinancialInsideTransaction(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRecordRepository(conn, 500)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO financial_statements \(situacao,data,cliente,conta,categoria,valor,saldo,imported_file_id\)`).
		WithArgs("Pago", "10/03/2024", "Fornecedor", "Custos", "Despesa Direta", sqlmock.AnyArg(), sqlmock.AnyArg(), "lote1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return repo.InsertFinancial(context.Background(), tx, "lote1", []domain.FinancialEntry{{
			Status:         "Pago",
			OccurredOn:     "10/03/2024",
			Client:         "Fornecedor",
			Account:        "Custos",
			Category:       "Despesa Direta",
			Amount:         decimal.NewFromInt(-100),
			RunningBalance: decimal.NewFromInt(900),
		}})
	})

	require.NoError(t, err)
}

func TestRecordRepository_ListRevenue(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRecordRepository(conn, 0)

	rows := sqlmock.NewRows([]string{"cliente", "valor", "data", "imported_file_id"}).
		AddRow("Acme", "1500.75", "05/03/2024", "lote1").
		AddRow("Beta", "20", "45354", "")

	mock.ExpectQuery(`SELECT cliente, valor, data, COALESCE\(imported_file_id, ''\) FROM contracts ORDER BY id ASC`).
		WillReturnRows(rows)

	records, err := repo.ListRevenue(context.Background(), domain.RecordKindContracts)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.RecordKindContracts, records[0].Kind)
	assert.Equal(t, "Acme", records[0].Client)
	assert.True(t, decimal.RequireFromString("1500.75").Equal(records[0].Amount))
	assert.Equal(t, "lote1", records[0].BatchID)
	assert.Equal(t, "45354", records[1].OccurredOn)
}

func TestRecordRepository_ListFinancialError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRecordRepository(conn, 0)

	mock.ExpectQuery(`FROM financial_statements`).WillReturnError(errors.New("tabela inexistente"))

	_, err := repo.ListFinancial(context.Background())

	assert.ErrorContains(t, err, "tabela inexistente")
}

func TestRecordRepository_DeleteByBatch(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRecordRepository(conn, 0)

	mock.ExpectExec(`DELETE FROM services WHERE imported_file_id = \$1`).
		WithArgs("lote1").
		WillReturnResult(sqlmock.NewResult(0, 7))

	removed, err := repo.DeleteByBatch(context.Background(), nil, domain.RecordKindServices, "lote1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)

	_, err = repo.DeleteByBatch(context.Background(), nil, domain.RecordKindUnknown, "lote1")
	assert.ErrorIs(t, err, ErrUnknownRecordKind)
}
