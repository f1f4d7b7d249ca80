package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/evcharge-admin-api/internal/application/evse"
	"github.com/jhoicas/evcharge-admin-api/internal/application/location"
	"github.com/jhoicas/evcharge-admin-api/internal/application/merchant"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var (
	_ evse.TxRunner     = (*TxRunner)(nil)
	_ location.TxRunner = (*TxRunner)(nil)
	_ merchant.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunEVSERegistration ejecuta fn con repos de EVSE y conectores atados a la tx.
func (r *TxRunner) RunEVSERegistration(ctx context.Context, fn func(
	evseRepo repository.EVSERepository,
	connectorRepo repository.ConnectorRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewEVSERepository(tx), NewConnectorRepository(tx))
	})
}

// RunLocationRegistration ejecuta fn con el repo de ubicaciones atado a la tx.
func (r *TxRunner) RunLocationRegistration(ctx context.Context, fn func(locationRepo repository.LocationRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewLocationRepository(tx))
	})
}

// RunCPOUpdate ejecuta fn con el repo de CPOs atado a la tx.
func (r *TxRunner) RunCPOUpdate(ctx context.Context, fn func(cpoRepo repository.CPORepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewCPORepository(tx))
	})
}

// inTx hace Commit si fn devuelve nil; en cualquier otro caso Rollback.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
