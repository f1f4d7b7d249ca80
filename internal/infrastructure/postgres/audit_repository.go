package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo bitácora admin_audit_trails; solo inserta.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Record agrega una entrada.
func (r *AuditRepo) Record(ctx context.Context, e entity.AuditTrail) error {
	query := `
		INSERT INTO admin_audit_trails (admin_id, cpo_id, action, remarks, date_created, date_modified)
		VALUES ($1, $2, $3, $4, NOW(), NOW())`
	if _, err := r.q.Exec(ctx, query, e.AdminID, e.CPOID, e.Action, e.Remarks); err != nil {
		return fmt.Errorf("insert audit trail: %w", err)
	}
	return nil
}
