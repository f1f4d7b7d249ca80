package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de saldo.
const (
	TopupTypeTopup = "TOPUP"
	TopupTypeVoid  = "VOID"
)

// VoidWindow ventana durante la cual una recarga puede anularse.
const VoidWindow = 60 * time.Minute

// Topup recarga registrada en topup_logs.
type Topup struct {
	ID              int64
	CPOOwnerID      int64
	ReferenceNumber string
	Amount          decimal.Decimal
	Type            string
	PaymentType     string
	CreatedAt       time.Time
}

// VoidableUntil instante límite para anular la recarga.
func (t Topup) VoidableUntil() time.Time {
	return t.CreatedAt.Add(VoidWindow)
}

// TopupResult resultado de web_admin_topup.
type TopupResult struct {
	Status         ProcedureStatus
	CurrentBalance decimal.Decimal
}

// VoidResult resultado de web_admin_void_topup.
type VoidResult struct {
	Status          ProcedureStatus
	CurrentBalance  decimal.Decimal
	ReferenceNumber string
}
