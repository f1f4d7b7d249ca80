package repository

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para ubicaciones.
// Los Add* devuelven las filas afectadas.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) (int64, error)
	AddFacilities(ctx context.Context, locationID int64, facilityIDs []int64) (int64, error)
	AddParkingTypes(ctx context.Context, assocs []entity.ParkingTypeAssoc) (int64, error)
	AddParkingRestrictions(ctx context.Context, locationID int64, restrictionIDs []int64) (int64, error)
	Bind(ctx context.Context, cpoOwnerID, locationID int64) (entity.ProcedureStatus, error)
	Unbind(ctx context.Context, cpoOwnerID, locationID int64) (entity.ProcedureStatus, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Location, error)
	Count(ctx context.Context) (int64, error)
	ListUnbound(ctx context.Context) ([]*entity.Location, error)
	ListForCPO(ctx context.Context, cpoOwnerID int64) ([]*entity.Location, error)
	SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Location, error)
}
