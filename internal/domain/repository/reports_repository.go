package repository

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// ReportsRepository consultas agregadas del tablero.
type ReportsRepository interface {
	TotalCPOs(ctx context.Context) (int64, error)
	RFIDInfo(ctx context.Context) (entity.RFIDInfo, error)
	EVSEInfo(ctx context.Context) (entity.EVSEInfo, error)
	LocationInfo(ctx context.Context) (entity.LocationInfo, error)
	TopupInfo(ctx context.Context) (entity.TopupInfo, error)
}

// UserManagementRepository alta de sub-administradores.
type UserManagementRepository interface {
	AddSubUser(ctx context.Context, user entity.SubUser) (entity.ProcedureStatus, error)
}
