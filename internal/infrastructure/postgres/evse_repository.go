package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

var (
	_ repository.EVSERepository      = (*EVSERepo)(nil)
	_ repository.ConnectorRepository = (*ConnectorRepo)(nil)
)

const evseColumns = `uid, evse_code, evse_id, model, vendor, serial_number, box_serial_number,
		firmware_version, iccid, imsi, meter_serial_number, status, cpo_location_id, date_created`

// EVSERepo implementación de EVSERepository (usable con pool o tx).
type EVSERepo struct {
	q Querier
}

// NewEVSERepository construye el adaptador. Pasar pool o tx (Querier).
func NewEVSERepository(q Querier) *EVSERepo {
	return &EVSERepo{q: q}
}

// Register llama a web_admin_register_evse; el estado DUPLICATE_SERIAL lo decide la función.
func (r *EVSERepo) Register(ctx context.Context, e *entity.EVSE) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "register evse",
		`SELECT status FROM web_admin_register_evse($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.UID, e.Model, e.Vendor, e.SerialNumber, e.BoxSerialNumber, e.FirmwareVersion,
		e.ICCID, e.IMSI, e.MeterType, e.MeterSerialNumber, e.LocationID,
	)
}

// AddPaymentTypes asocia tipos de pago al EVSE.
func (r *EVSERepo) AddPaymentTypes(ctx context.Context, evseUID string, paymentTypeIDs []int64) error {
	rows := make([][]any, 0, len(paymentTypeIDs))
	for _, id := range paymentTypeIDs {
		rows = append(rows, []any{evseUID, id})
	}
	_, err := execBatch(ctx, r.q, "insert evse payment types",
		`INSERT INTO evse_payment_types (evse_uid, payment_type_id) VALUES ($1, $2)`, rows)
	return err
}

// AddCapabilities asocia capacidades al EVSE.
func (r *EVSERepo) AddCapabilities(ctx context.Context, evseUID string, capabilityIDs []int64) error {
	rows := make([][]any, 0, len(capabilityIDs))
	for _, id := range capabilityIDs {
		rows = append(rows, []any{id, evseUID})
	}
	_, err := execBatch(ctx, r.q, "insert evse capabilities",
		`INSERT INTO evse_capabilities (capability_id, evse_uid) VALUES ($1, $2)`, rows)
	return err
}

// Bind vincula el EVSE a la ubicación.
func (r *EVSERepo) Bind(ctx context.Context, locationID int64, evseUID string) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "bind evse", `SELECT status FROM web_admin_bind_evse($1, $2)`, locationID, evseUID)
}

// Unbind desvincula el EVSE de la ubicación.
func (r *EVSERepo) Unbind(ctx context.Context, locationID int64, evseUID string) (entity.ProcedureStatus, error) {
	return callStatus(ctx, r.q, "unbind evse", `SELECT status FROM web_admin_unbind_evse($1, $2)`, locationID, evseUID)
}

// List EVSE paginados; primero los vinculados, ordenados por ubicación.
func (r *EVSERepo) List(ctx context.Context, limit, offset int) ([]*entity.EVSE, error) {
	query := `SELECT ` + evseColumns + `
		FROM evse
		ORDER BY cpo_location_id IS NULL, cpo_location_id ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list evses: %w", err)
	}
	return scanEVSEs(rows)
}

// Count total de EVSE.
func (r *EVSERepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM evse`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count evses: %w", err)
	}
	return total, nil
}

// SearchBySerialNumber serialNumber ya llega en minúsculas.
func (r *EVSERepo) SearchBySerialNumber(ctx context.Context, serialNumber string, limit, offset int) ([]*entity.EVSE, error) {
	query := `SELECT ` + evseColumns + `
		FROM evse
		WHERE LOWER(serial_number) LIKE $1
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, "%"+serialNumber+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search evses: %w", err)
	}
	return scanEVSEs(rows)
}

func scanEVSEs(rows pgx.Rows) ([]*entity.EVSE, error) {
	defer rows.Close()
	var list []*entity.EVSE
	for rows.Next() {
		var e entity.EVSE
		var code, evseID, status *string
		if err := rows.Scan(
			&e.UID, &code, &evseID, &e.Model, &e.Vendor, &e.SerialNumber, &e.BoxSerialNumber,
			&e.FirmwareVersion, &e.ICCID, &e.IMSI, &e.MeterSerialNumber, &status, &e.LocationID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evse: %w", err)
		}
		e.EVSECode, e.EVSEID, e.Status = deref(code), deref(evseID), deref(status)
		list = append(list, &e)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ConnectorRepo conectores y franjas de un EVSE.
type ConnectorRepo struct {
	q Querier
}

// NewConnectorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConnectorRepository(q Querier) *ConnectorRepo {
	return &ConnectorRepo{q: q}
}

// AddConnectors inserta los conectores; el tipo de conector es el estándar y la tarifa "<n> KW-H".
func (r *ConnectorRepo) AddConnectors(ctx context.Context, connectors []entity.Connector) error {
	query := `
		INSERT INTO evse_connectors (
			evse_uid, connector_id, standard, format, power_type_id, max_voltage, max_amperage,
			max_electric_power, connector_type_id, rate_setting_id, status, date_created, date_modified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`
	rows := make([][]any, 0, len(connectors))
	for _, c := range connectors {
		rows = append(rows, []any{
			c.EVSEUID, c.ConnectorID, c.Standard, c.Format, c.PowerType, c.MaxVoltage, c.MaxAmperage,
			c.MaxElectricPower, c.Standard, fmt.Sprintf("%d KW-H", c.RateSetting), c.Status,
		})
	}
	_, err := execBatch(ctx, r.q, "insert evse connectors", query, rows)
	return err
}

// AddTimeslots inserta las franjas de capacidad.
func (r *ConnectorRepo) AddTimeslots(ctx context.Context, timeslots []entity.Timeslot) error {
	rows := make([][]any, 0, len(timeslots))
	for _, t := range timeslots {
		rows = append(rows, []any{t.EVSEUID, t.ConnectorID, t.SettingTimeslotID, t.Status})
	}
	_, err := execBatch(ctx, r.q, "insert evse timeslots",
		`INSERT INTO evse_timeslots (evse_uid, connector_id, setting_timeslot_id, status) VALUES ($1, $2, $3, $4)`, rows)
	return err
}
