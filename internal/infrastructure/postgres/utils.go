package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// Querier operaciones comunes a *pgxpool.Pool y pgx.Tx; los repos reciben uno u otro.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// callStatus ejecuta una función almacenada que devuelve una fila con la columna status.
func callStatus(ctx context.Context, q Querier, name, query string, args ...any) (entity.ProcedureStatus, error) {
	var raw string
	if err := q.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return entity.ParseProcedureStatus(raw), nil
}

// execBatch envía un INSERT por fila en un único round-trip y devuelve el total de filas afectadas.
func execBatch(ctx context.Context, q Querier, name, query string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, args := range rows {
		batch.Queue(query, args...)
	}
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	var affected int64
	for range rows {
		tag, err := br.Exec()
		if err != nil {
			return affected, fmt.Errorf("%s: %w", name, err)
		}
		affected += tag.RowsAffected()
	}
	return affected, nil
}
