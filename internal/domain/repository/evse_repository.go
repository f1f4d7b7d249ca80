package repository

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// EVSERepository define el puerto de persistencia para EVSE.
// Register, AddPaymentTypes y AddCapabilities se ejecutan dentro de la transacción del registro.
type EVSERepository interface {
	Register(ctx context.Context, evse *entity.EVSE) (entity.ProcedureStatus, error)
	AddPaymentTypes(ctx context.Context, evseUID string, paymentTypeIDs []int64) error
	AddCapabilities(ctx context.Context, evseUID string, capabilityIDs []int64) error
	Bind(ctx context.Context, locationID int64, evseUID string) (entity.ProcedureStatus, error)
	Unbind(ctx context.Context, locationID int64, evseUID string) (entity.ProcedureStatus, error)
	List(ctx context.Context, limit, offset int) ([]*entity.EVSE, error)
	Count(ctx context.Context) (int64, error)
	SearchBySerialNumber(ctx context.Context, serialNumber string, limit, offset int) ([]*entity.EVSE, error)
}

// ConnectorRepository persistencia de conectores y sus franjas.
type ConnectorRepository interface {
	AddConnectors(ctx context.Context, connectors []entity.Connector) error
	AddTimeslots(ctx context.Context, timeslots []entity.Timeslot) error
}

// ReferenceRepository vocabularios fijos usados por EVSE y ubicaciones.
type ReferenceRepository interface {
	PaymentTypes(ctx context.Context) ([]entity.ReferenceItem, error)
	Capabilities(ctx context.Context) ([]entity.ReferenceItem, error)
	ConnectorTypes(ctx context.Context) ([]entity.ReferenceItem, error)
	Facilities(ctx context.Context) ([]entity.ReferenceItem, error)
	ParkingTypes(ctx context.Context) ([]entity.ReferenceItem, error)
	ParkingRestrictions(ctx context.Context) ([]entity.ReferenceItem, error)
}
