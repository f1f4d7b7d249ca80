package repository

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// AuditRepository puerto de la bitácora de administración (append-only).
type AuditRepository interface {
	Record(ctx context.Context, entry entity.AuditTrail) error
}
