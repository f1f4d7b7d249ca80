package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo vocabularios fijos (tablas de solo lectura).
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador.
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

func (r *ReferenceRepo) PaymentTypes(ctx context.Context) ([]entity.ReferenceItem, error) {
	return r.list(ctx, "payment_types", `SELECT id, code, description FROM payment_types ORDER BY id`)
}

func (r *ReferenceRepo) Capabilities(ctx context.Context) ([]entity.ReferenceItem, error) {
	return r.list(ctx, "capabilities", `SELECT id, code, description FROM capabilities ORDER BY id`)
}

func (r *ReferenceRepo) ConnectorTypes(ctx context.Context) ([]entity.ReferenceItem, error) {
	return r.list(ctx, "connector_types", `SELECT id, code, description FROM connector_types ORDER BY id`)
}

func (r *ReferenceRepo) Facilities(ctx context.Context) ([]entity.ReferenceItem, error) {
	return r.list(ctx, "facilities", `SELECT id, code, description FROM facilities ORDER BY id`)
}

func (r *ReferenceRepo) ParkingTypes(ctx context.Context) ([]entity.ReferenceItem, error) {
	return r.list(ctx, "parking_types", `SELECT id, code, description FROM parking_types ORDER BY id`)
}

func (r *ReferenceRepo) ParkingRestrictions(ctx context.Context) ([]entity.ReferenceItem, error) {
	return r.list(ctx, "parking_restrictions", `SELECT id, code, description FROM parking_restrictions ORDER BY id`)
}

func (r *ReferenceRepo) list(ctx context.Context, table, query string) ([]entity.ReferenceItem, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var list []entity.ReferenceItem
	for rows.Next() {
		var it entity.ReferenceItem
		var description *string
		if err := rows.Scan(&it.ID, &it.Code, &description); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		it.Description = deref(description)
		list = append(list, it)
	}
	return list, rows.Err()
}
