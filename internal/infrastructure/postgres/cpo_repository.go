package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var _ repository.CPORepository = (*CPORepo)(nil)

// cpoOwnerColumns columnas de cpo_owners que UpdateFields puede escribir; username vive en users.
var cpoOwnerColumns = map[string]string{
	entity.CPOFieldOwnerName:     "cpo_owner_name",
	entity.CPOFieldContactName:   "contact_name",
	entity.CPOFieldContactNumber: "contact_number",
	entity.CPOFieldContactEmail:  "contact_email",
}

const cpoSelect = `
	SELECT o.id, o.user_id, o.party_id, o.cpo_owner_name, o.contact_name, o.contact_number,
		o.contact_email, u.username, u.user_status, o.date_created
	FROM cpo_owners o
	INNER JOIN users u ON o.user_id = u.id`

// CPORepo implementación de CPORepository (usable con pool o tx).
type CPORepo struct {
	q Querier
}

// NewCPORepository construye el adaptador. Pasar pool o tx (Querier).
func NewCPORepository(q Querier) *CPORepo {
	return &CPORepo{q: q}
}

// List CPOs paginados.
func (r *CPORepo) List(ctx context.Context, limit, offset int) ([]*entity.CPO, error) {
	rows, err := r.q.Query(ctx, cpoSelect+` ORDER BY o.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cpos: %w", err)
	}
	return scanCPOs(rows)
}

// Count total de CPOs.
func (r *CPORepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cpo_owners`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count cpos: %w", err)
	}
	return total, nil
}

// SearchByName name ya llega en minúsculas.
func (r *CPORepo) SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.CPO, error) {
	query := cpoSelect + ` WHERE LOWER(o.cpo_owner_name) LIKE $1 ORDER BY o.id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search cpos: %w", err)
	}
	return scanCPOs(rows)
}

// Register crea usuario y CPO mediante web_admin_register_cpo.
func (r *CPORepo) Register(ctx context.Context, c entity.NewCPO) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "register cpo",
		`SELECT status FROM web_admin_register_cpo($1, $2, $3, $4, $5, $6, $7)`,
		c.PartyID, c.CPOOwnerName, c.ContactName, c.ContactNumber, c.ContactEmail, c.Username, c.PasswordHash,
	)
}

// CheckRegister consulta si value está disponible para field.
func (r *CPORepo) CheckRegister(ctx context.Context, field, value string) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "check register cpo", `SELECT status FROM web_admin_check_register_cpo($1, $2)`, field, value)
}

// FieldTaken indica si otro CPO ya usa value en field.
func (r *CPORepo) FieldTaken(ctx context.Context, field, value string, excludeID int64) (bool, error) {
	var query string
	if field == entity.CPOFieldUsername {
		query = `
			SELECT EXISTS (
				SELECT 1 FROM users u
				WHERE u.username = $1
				AND u.id IS DISTINCT FROM (SELECT user_id FROM cpo_owners WHERE id = $2)
			)`
	} else {
		column, ok := cpoOwnerColumns[field]
		if !ok {
			return false, fmt.Errorf("campo %q: %w", field, domain.ErrInvalidInput)
		}
		query = `SELECT EXISTS (SELECT 1 FROM cpo_owners WHERE ` + column + ` = $1 AND id <> $2)`
	}
	var taken bool
	if err := r.q.QueryRow(ctx, query, value, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check %s: %w", field, err)
	}
	return taken, nil
}

// UpdateFields arma el UPDATE con columnas de la lista permitida y valores parametrizados.
// Devuelve filas afectadas de cpo_owners, o de users si solo cambió el username.
func (r *CPORepo) UpdateFields(ctx context.Context, id int64, fields map[string]string) (int64, error) {
	for field := range fields {
		if _, ok := cpoOwnerColumns[field]; !ok && field != entity.CPOFieldUsername {
			return 0, fmt.Errorf("campo %q: %w", field, domain.ErrInvalidInput)
		}
	}

	var sets []string
	var args []any
	for _, field := range entity.CPOUpdatableFields {
		value, ok := fields[field]
		if !ok || field == entity.CPOFieldUsername {
			continue
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", cpoOwnerColumns[field], len(args)))
	}

	var affected int64
	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf(`UPDATE cpo_owners SET %s, date_modified = NOW() WHERE id = $%d`,
			strings.Join(sets, ", "), len(args))
		tag, err := r.q.Exec(ctx, query, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, domain.ErrDuplicate
			}
			return 0, fmt.Errorf("update cpo: %w", err)
		}
		affected = tag.RowsAffected()
	}

	if username, ok := fields[entity.CPOFieldUsername]; ok {
		tag, err := r.q.Exec(ctx, `
			UPDATE users SET username = $1
			FROM cpo_owners o
			WHERE o.user_id = users.id AND o.id = $2`, username, id)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, domain.ErrDuplicate
			}
			return 0, fmt.Errorf("update cpo username: %w", err)
		}
		if len(sets) == 0 {
			affected = tag.RowsAffected()
		}
	}
	return affected, nil
}

// SetUserStatus cambia el estado de la cuenta; solo usuarios con rol CPO_OWNER.
func (r *CPORepo) SetUserStatus(ctx context.Context, userID int64, status string) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE users SET user_status = $1 WHERE id = $2 AND role = $3 AND user_status <> $1`,
		status, userID, entity.RoleCPOOwner)
	if err != nil {
		return 0, fmt.Errorf("set user status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanCPOs(rows pgx.Rows) ([]*entity.CPO, error) {
	defer rows.Close()
	var list []*entity.CPO
	for rows.Next() {
		var c entity.CPO
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.PartyID, &c.CPOOwnerName, &c.ContactName, &c.ContactNumber,
			&c.ContactEmail, &c.Username, &c.UserStatus, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cpo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
