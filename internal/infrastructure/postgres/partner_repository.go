package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo socios comerciales (company_partner_details).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// List socios registrados.
func (r *PartnerRepo) List(ctx context.Context) ([]*entity.CompanyPartnerDetails, error) {
	query := `
		SELECT id, company_name, party_id, COALESCE(country_code, ''), account_status, date_created
		FROM company_partner_details
		ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyPartnerDetails
	for rows.Next() {
		var p entity.CompanyPartnerDetails
		if err := rows.Scan(&p.ID, &p.CompanyName, &p.PartyID, &p.CountryCode, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListPartyIDs todos los party ids emitidos.
func (r *PartnerRepo) ListPartyIDs(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT party_id FROM company_partner_details`)
	if err != nil {
		return nil, fmt.Errorf("list party ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan party id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserta el socio como ACTIVE. Un party id ya emitido por otra petición concurrente
// se reporta como PARTY_ID_EXISTS.
func (r *PartnerRepo) Create(ctx context.Context, d *entity.CompanyPartnerDetails) (int64, error) {
	query := `
		INSERT INTO company_partner_details (company_name, party_id, country_code, account_status, date_created, date_modified)
		VALUES ($1, $2, $3, 'ACTIVE', NOW(), NOW())
		RETURNING id`
	var id int64
	if err := r.q.QueryRow(ctx, query, d.CompanyName, d.PartyID, d.CountryCode).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NewStatusError(entity.StatusPartyIDExists.String())
		}
		return 0, fmt.Errorf("insert partner: %w", err)
	}
	d.ID = id
	return id, nil
}

// UpdateCountryCode actualiza el país del socio.
func (r *PartnerRepo) UpdateCountryCode(ctx context.Context, id int64, countryCode string) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE company_partner_details SET country_code = $1, date_modified = NOW() WHERE id = $2`, countryCode, id)
	if err != nil {
		return 0, fmt.Errorf("update partner: %w", err)
	}
	return tag.RowsAffected(), nil
}
