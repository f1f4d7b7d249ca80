package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// CPORepository define el puerto de persistencia para operadores (CPO) y su cuenta de usuario.
type CPORepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.CPO, error)
	Count(ctx context.Context) (int64, error)
	SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.CPO, error)
	Register(ctx context.Context, cpo entity.NewCPO) (entity.ProcedureStatus, error)
	CheckRegister(ctx context.Context, field, value string) (entity.ProcedureStatus, error)
	// FieldTaken indica si otro CPO (distinto de excludeID) ya usa value en field.
	FieldTaken(ctx context.Context, field, value string, excludeID int64) (bool, error)
	// UpdateFields aplica solo claves de entity.CPOUpdatableFields y devuelve filas afectadas.
	UpdateFields(ctx context.Context, id int64, fields map[string]string) (int64, error)
	SetUserStatus(ctx context.Context, userID int64, status string) (int64, error)
}

// RFIDRepository emisión de tarjetas RFID.
type RFIDRepository interface {
	Add(ctx context.Context, cpoOwnerID int64, tag string) (entity.ProcedureStatus, error)
	ExistingTags(ctx context.Context, tags []string) ([]string, error)
	BulkInsert(ctx context.Context, cpoOwnerID int64, tags []string) error
}

// TopupRepository recargas y anulaciones de saldo.
type TopupRepository interface {
	Topup(ctx context.Context, cpoOwnerID int64, amount decimal.Decimal) (entity.TopupResult, error)
	ListVoidable(ctx context.Context, cpoOwnerID int64, since time.Time) ([]*entity.Topup, error)
	Void(ctx context.Context, referenceID string) (entity.VoidResult, error)
}

// PartnerRepository socios comerciales y sus party ids.
type PartnerRepository interface {
	List(ctx context.Context) ([]*entity.CompanyPartnerDetails, error)
	ListPartyIDs(ctx context.Context) ([]string, error)
	Create(ctx context.Context, details *entity.CompanyPartnerDetails) (int64, error)
	UpdateCountryCode(ctx context.Context, id int64, countryCode string) (int64, error)
}
