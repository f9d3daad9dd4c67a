package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

var revenueTables = []string{"contracts", "services", "sales"}

const createImportedFiles = `
CREATE TABLE IF NOT EXISTS imported_files (
	id            VARCHAR(21) PRIMARY KEY,
	file_name     TEXT NOT NULL,
	record_kind   VARCHAR(20) NOT NULL,
	size_label    VARCHAR(20) NOT NULL,
	checksum      VARCHAR(64),
	imported_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	status        VARCHAR(10) NOT NULL,
	record_count  INTEGER NOT NULL DEFAULT 0,
	error_message TEXT
)`

// a data fica como texto porque vem da planilha em formatos variados
const createRevenueTable = `
CREATE TABLE IF NOT EXISTS %s (
	id               SERIAL PRIMARY KEY,
	cliente          TEXT NOT NULL,
	valor            NUMERIC(15,2) NOT NULL,
	data             TEXT NOT NULL DEFAULT '',
	imported_file_id VARCHAR(21) REFERENCES imported_files(id) ON DELETE CASCADE
)`

const createFinancialStatements = `
CREATE TABLE IF NOT EXISTS financial_statements (
	id               SERIAL PRIMARY KEY,
	situacao         TEXT NOT NULL DEFAULT '',
	data             TEXT NOT NULL DEFAULT '',
	cliente          TEXT NOT NULL DEFAULT '',
	conta            TEXT NOT NULL DEFAULT '',
	categoria        TEXT NOT NULL DEFAULT '',
	valor            NUMERIC(15,2) NOT NULL,
	saldo            NUMERIC(15,2) NOT NULL DEFAULT 0,
	imported_file_id VARCHAR(21) REFERENCES imported_files(id) ON DELETE CASCADE
)`

func createTables(ctx context.Context, tx *sql.Tx) error {
	statements := []string{createImportedFiles}
	for _, table := range revenueTables {
		statements = append(statements, fmt.Sprintf(createRevenueTable, table))
	}
	statements = append(statements, createFinancialStatements)

	for _, table := range append(revenueTables, "financial_statements") {
		statements = append(statements,
			"CREATE INDEX IF NOT EXISTS idx_"+table+"_imported_file ON "+table+" (imported_file_id)")
	}
	statements = append(statements,
		"CREATE INDEX IF NOT EXISTS idx_imported_files_checksum ON imported_files (checksum)")

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// addChecksumToImportedFiles atualiza bases criadas antes da verificação de duplicidade
func addChecksumToImportedFiles(ctx context.Context, tx *sql.Tx) error {
	var columnExists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'imported_files'
			AND column_name = 'checksum'
		)
	`).Scan(&columnExists)
	if err != nil {
		return err
	}

	if columnExists {
		logrus.Info("Coluna checksum já existe na tabela imported_files")
		return nil
	}

	_, err = tx.ExecContext(ctx, "ALTER TABLE imported_files ADD COLUMN checksum VARCHAR(64)")
	return err
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createTables(ctx, tx); err != nil {
			return err
		}
		return addChecksumToImportedFiles(ctx, tx)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar migração, transação revertida")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
