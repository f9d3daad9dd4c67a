package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

var (
	ErrUnknownRecordKind = errors.New("tipo de registro desconhecido")
	ErrDuplicateBatchID  = errors.New("id de importação já existe")
)

// execer é satisfeito tanto por *sql.Tx quanto pela conexão
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
