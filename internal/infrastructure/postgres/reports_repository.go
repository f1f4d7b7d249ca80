package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var (
	_ repository.ReportsRepository        = (*ReportsRepo)(nil)
	_ repository.UserManagementRepository = (*UserManagementRepo)(nil)
)

// ReportsRepo consultas agregadas del tablero (read-only).
type ReportsRepo struct {
	q Querier
}

// NewReportsRepository construye el adaptador.
func NewReportsRepository(q Querier) *ReportsRepo {
	return &ReportsRepo{q: q}
}

func (r *ReportsRepo) TotalCPOs(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cpo_owners`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count cpos: %w", err)
	}
	return total, nil
}

func (r *ReportsRepo) RFIDInfo(ctx context.Context) (entity.RFIDInfo, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM rfid_cards WHERE rfid_status = 'ACTIVE'),
			(SELECT COUNT(*) FROM rfid_cards WHERE rfid_status = 'UNASSIGNED'),
			(SELECT COUNT(*) FROM rfid_cards),
			(SELECT MAX(date_assigned) FROM rfid_cards WHERE rfid_status = 'ACTIVE'),
			(SELECT MAX(date_created) FROM rfid_cards WHERE rfid_status = 'UNASSIGNED'),
			(SELECT MAX(date_created) FROM rfid_cards)`
	var i entity.RFIDInfo
	err := r.q.QueryRow(ctx, query).Scan(
		&i.TotalAssigned, &i.TotalUnassigned, &i.Total, &i.AssignedAsOf, &i.UnassignedAsOf, &i.TotalAsOf,
	)
	if err != nil {
		return i, fmt.Errorf("rfid info: %w", err)
	}
	return i, nil
}

func (r *ReportsRepo) EVSEInfo(ctx context.Context) (entity.EVSEInfo, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM evse WHERE cpo_location_id IS NOT NULL),
			(SELECT COUNT(*) FROM evse WHERE cpo_location_id IS NULL),
			(SELECT COUNT(*) FROM evse),
			(SELECT MAX(date_created) FROM evse WHERE cpo_location_id IS NOT NULL),
			(SELECT MAX(date_created) FROM evse WHERE cpo_location_id IS NULL),
			(SELECT MAX(date_created) FROM evse)`
	var i entity.EVSEInfo
	err := r.q.QueryRow(ctx, query).Scan(
		&i.TotalAssigned, &i.TotalUnassigned, &i.Total, &i.AssignedAsOf, &i.UnassignedAsOf, &i.TotalAsOf,
	)
	if err != nil {
		return i, fmt.Errorf("evse info: %w", err)
	}
	return i, nil
}

func (r *ReportsRepo) LocationInfo(ctx context.Context) (entity.LocationInfo, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM cpo_locations WHERE cpo_owner_id IS NOT NULL),
			(SELECT COUNT(*) FROM cpo_locations WHERE cpo_owner_id IS NULL),
			(SELECT COUNT(*) FROM cpo_locations),
			(SELECT MAX(date_created) FROM cpo_locations)`
	var i entity.LocationInfo
	if err := r.q.QueryRow(ctx, query).Scan(&i.TotalAssigned, &i.TotalUnassigned, &i.Total, &i.TotalAsOf); err != nil {
		return i, fmt.Errorf("location info: %w", err)
	}
	return i, nil
}

// TopupInfo sumas sin filas se reportan como cero.
func (r *ReportsRepo) TopupInfo(ctx context.Context) (entity.TopupInfo, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM topup_logs WHERE type = 'TOPUP'),
			(SELECT COALESCE(SUM(amount), 0) FROM topup_logs WHERE type = 'VOID'),
			(SELECT COALESCE(SUM(amount), 0) FROM topup_logs WHERE type = 'TOPUP' AND payment_type = 'CARD'),
			(SELECT COALESCE(SUM(amount), 0) FROM topup_logs WHERE type = 'TOPUP' AND payment_type = 'MAYA'),
			(SELECT MAX(date_created) FROM topup_logs WHERE type = 'TOPUP')`
	var i entity.TopupInfo
	err := r.q.QueryRow(ctx, query).Scan(&i.TotalSales, &i.TotalVoids, &i.TotalCardSales, &i.TotalMayaSales, &i.SalesAsOf)
	if err != nil {
		return i, fmt.Errorf("topup info: %w", err)
	}
	return i, nil
}

// UserManagementRepo alta de sub-administradores.
type UserManagementRepo struct {
	q Querier
}

// NewUserManagementRepository construye el adaptador.
func NewUserManagementRepository(q Querier) *UserManagementRepo {
	return &UserManagementRepo{q: q}
}

// AddSubUser llama a web_admin_add_sub_user con los nueve privilegios en orden fijo.
func (r *UserManagementRepo) AddSubUser(ctx context.Context, u entity.SubUser) (entity.ProcedureStatus, error) {
	p := u.Privileges
	return callStatus(ctx, r.q, "add sub user",
		`SELECT status FROM web_admin_add_sub_user($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		u.Username, u.PasswordHash, u.Role,
		p.Reports, p.CPOs, p.Locations, p.EVSEs, p.CustomerService,
		p.UserManagement, p.AccountSettings, p.RFIDUserAccounts, p.Topups,
	)
}
