package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.RFIDRepository = (*RFIDRepo)(nil)

// RFIDRepo tarjetas rfid_cards.
type RFIDRepo struct {
	q Querier
}

// NewRFIDRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRFIDRepository(q Querier) *RFIDRepo {
	return &RFIDRepo{q: q}
}

// Add asigna una tarjeta al CPO mediante web_admin_add_rfid.
func (r *RFIDRepo) Add(ctx context.Context, cpoOwnerID int64, tag string) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "add rfid", `SELECT status FROM web_admin_add_rfid($1, $2)`, cpoOwnerID, tag)
}

// ExistingTags devuelve cuáles de tags ya están registradas.
func (r *RFIDRepo) ExistingTags(ctx context.Context, tags []string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT rfid_card_tag FROM rfid_cards WHERE rfid_card_tag = ANY($1)`, tags)
	if err != nil {
		return nil, fmt.Errorf("list rfid tags: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan rfid tag: %w", err)
		}
		out = append(out, tag)
	}
	return out, rows.Err()
}

// BulkInsert emite tarjetas físicas sin asignar con saldo cero.
func (r *RFIDRepo) BulkInsert(ctx context.Context, cpoOwnerID int64, tags []string) error {
	query := `
		INSERT INTO rfid_cards (
			rfid_card_tag, cpo_owner_id, user_driver_id, balance, is_charging,
			rfid_type, rfid_status, date_created, date_modified
		) VALUES ($1, $2, NULL, 0, false, $3, $4, NOW(), NOW())`
	rows := make([][]any, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []any{tag, cpoOwnerID, entity.RFIDTypePhysical, entity.RFIDStatusUnassigned})
	}
	_, err := execBatch(ctx, r.q, "insert rfid cards", query, rows)
	return err
}
