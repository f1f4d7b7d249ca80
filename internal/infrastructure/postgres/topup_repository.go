package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.TopupRepository = (*TopupRepo)(nil)

// TopupRepo recargas (topup_logs) y saldo del CPO.
type TopupRepo struct {
	q Querier
}

// NewTopupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTopupRepository(q Querier) *TopupRepo {
	return &TopupRepo{q: q}
}

// Topup acredita amount mediante web_admin_topup. current_balance es NULL si la función rechazó la recarga.
func (r *TopupRepo) Topup(ctx context.Context, cpoOwnerID int64, amount decimal.Decimal) (entity.TopupResult, error) {
	var raw string
	var balance decimal.NullDecimal
	err := r.q.QueryRow(ctx, `SELECT status, current_balance FROM web_admin_topup($1, $2)`, cpoOwnerID, amount).
		Scan(&raw, &balance)
	if err != nil {
		return entity.TopupResult{}, fmt.Errorf("topup: %w", err)
	}
	return entity.TopupResult{Status: entity.ParseProcedureStatus(raw), CurrentBalance: balance.Decimal}, nil
}

// ListVoidable recargas TOPUP no anuladas creadas después de since.
func (r *TopupRepo) ListVoidable(ctx context.Context, cpoOwnerID int64, since time.Time) ([]*entity.Topup, error) {
	query := `
		SELECT t.id, o.id, t.reference_number, t.amount, t.type, COALESCE(t.payment_type, ''), t.date_created
		FROM topup_logs t
		INNER JOIN cpo_owners o ON o.user_id = t.user_id
		WHERE o.id = $1
		AND t.date_created > $2
		AND t.type = $3
		AND t.void_id IS NULL
		ORDER BY t.date_created DESC`
	rows, err := r.q.Query(ctx, query, cpoOwnerID, since, entity.TopupTypeTopup)
	if err != nil {
		return nil, fmt.Errorf("list topups: %w", err)
	}
	defer rows.Close()
	var list []*entity.Topup
	for rows.Next() {
		var t entity.Topup
		if err := rows.Scan(&t.ID, &t.CPOOwnerID, &t.ReferenceNumber, &t.Amount, &t.Type, &t.PaymentType, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan topup: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Void anula la recarga mediante web_admin_void_topup.
func (r *TopupRepo) Void(ctx context.Context, referenceID string) (entity.VoidResult, error) {
	var raw string
	var balance decimal.NullDecimal
	var reference *string
	err := r.q.QueryRow(ctx, `SELECT status, current_balance, reference_number FROM web_admin_void_topup($1)`, referenceID).
		Scan(&raw, &balance, &reference)
	if err != nil {
		return entity.VoidResult{}, fmt.Errorf("void topup: %w", err)
	}
	return entity.VoidResult{
		Status:          entity.ParseProcedureStatus(raw),
		CurrentBalance:  balance.Decimal,
		ReferenceNumber: deref(reference),
	}, nil
}
