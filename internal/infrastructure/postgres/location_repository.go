package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, cpo_owner_id, name, address, address_lat, address_lng, city, region, postal_code,
		COALESCE(images, '[]'::jsonb), date_created, date_modified`

// LocationRepo implementación de LocationRepository (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create inserta la ubicación y devuelve su id. images se guarda como jsonb.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) (int64, error) {
	query := `
		INSERT INTO cpo_locations
			(cpo_owner_id, name, address, address_lat, address_lng, city, region, postal_code, images, date_created, date_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id`
	images := l.Images
	if images == nil {
		images = []string{}
	}
	var id int64
	err := r.q.QueryRow(ctx, query,
		l.CPOOwnerID, l.Name, l.Address, l.Lat, l.Lng, l.City, l.Region, l.PostalCode, images,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert location: %w", err)
	}
	l.ID = id
	return id, nil
}

// AddFacilities asocia facilidades a la ubicación.
func (r *LocationRepo) AddFacilities(ctx context.Context, locationID int64, facilityIDs []int64) (int64, error) {
	rows := make([][]any, 0, len(facilityIDs))
	for _, id := range facilityIDs {
		rows = append(rows, []any{id, locationID})
	}
	return execBatch(ctx, r.q, "insert location facilities",
		`INSERT INTO cpo_location_facilities (facility_id, cpo_location_id) VALUES ($1, $2)`, rows)
}

// AddParkingTypes asocia tipos de estacionamiento con su etiqueta.
func (r *LocationRepo) AddParkingTypes(ctx context.Context, assocs []entity.ParkingTypeAssoc) (int64, error) {
	rows := make([][]any, 0, len(assocs))
	for _, a := range assocs {
		rows = append(rows, []any{a.ParkingTypeID, a.LocationID, a.Tag})
	}
	return execBatch(ctx, r.q, "insert location parking types",
		`INSERT INTO cpo_location_parking_types (parking_type_id, cpo_location_id, tag) VALUES ($1, $2, $3)`, rows)
}

// AddParkingRestrictions asocia restricciones de estacionamiento.
func (r *LocationRepo) AddParkingRestrictions(ctx context.Context, locationID int64, restrictionIDs []int64) (int64, error) {
	rows := make([][]any, 0, len(restrictionIDs))
	for _, id := range restrictionIDs {
		rows = append(rows, []any{id, locationID})
	}
	return execBatch(ctx, r.q, "insert location parking restrictions",
		`INSERT INTO cpo_location_parking_restrictions (parking_restriction_code_id, cpo_location_id) VALUES ($1, $2)`, rows)
}

// Bind vincula la ubicación al CPO.
func (r *LocationRepo) Bind(ctx context.Context, cpoOwnerID, locationID int64) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "bind location", `SELECT status FROM web_admin_bind_location($1, $2)`, cpoOwnerID, locationID)
}

// Unbind desvincula la ubicación del CPO.
func (r *LocationRepo) Unbind(ctx context.Context, cpoOwnerID, locationID int64) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "unbind location", `SELECT status FROM web_admin_unbind_location($1, $2)`, cpoOwnerID, locationID)
}

// List ubicaciones paginadas.
func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM cpo_locations ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return scanLocations(rows)
}

// Count total de ubicaciones.
func (r *LocationRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cpo_locations`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return total, nil
}

// ListUnbound ubicaciones sin CPO.
func (r *LocationRepo) ListUnbound(ctx context.Context) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM cpo_locations WHERE cpo_owner_id IS NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list unbound locations: %w", err)
	}
	return scanLocations(rows)
}

// ListForCPO ubicaciones del CPO seguidas de las no vinculadas.
func (r *LocationRepo) ListForCPO(ctx context.Context, cpoOwnerID int64) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + `
		FROM cpo_locations
		WHERE cpo_owner_id = $1 OR cpo_owner_id IS NULL
		ORDER BY cpo_owner_id IS NULL, id`
	rows, err := r.q.Query(ctx, query, cpoOwnerID)
	if err != nil {
		return nil, fmt.Errorf("list locations for cpo: %w", err)
	}
	return scanLocations(rows)
}

// SearchByName name ya llega en minúsculas.
func (r *LocationRepo) SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + `
		FROM cpo_locations
		WHERE LOWER(name) LIKE $1
		ORDER BY id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]*entity.Location, error) {
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		var city, region, postal *string
		if err := rows.Scan(
			&l.ID, &l.CPOOwnerID, &l.Name, &l.Address, &l.Lat, &l.Lng, &city, &region, &postal,
			&l.Images, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		l.City, l.Region, l.PostalCode = deref(city), deref(region), deref(postal)
		list = append(list, &l)
	}
	return list, rows.Err()
}
