package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFIDInfo totales de tarjetas RFID.
type RFIDInfo struct {
	TotalAssigned   int64
	TotalUnassigned int64
	Total           int64
	AssignedAsOf    *time.Time
	UnassignedAsOf  *time.Time
	TotalAsOf       *time.Time
}

// EVSEInfo totales de equipos.
type EVSEInfo struct {
	TotalAssigned   int64
	TotalUnassigned int64
	Total           int64
	AssignedAsOf    *time.Time
	UnassignedAsOf  *time.Time
	TotalAsOf       *time.Time
}

// LocationInfo totales de ubicaciones.
type LocationInfo struct {
	TotalAssigned   int64
	TotalUnassigned int64
	Total           int64
	TotalAsOf       *time.Time
}

// TopupInfo sumas de recargas.
type TopupInfo struct {
	TotalSales     decimal.Decimal
	TotalVoids     decimal.Decimal
	TotalCardSales decimal.Decimal
	TotalMayaSales decimal.Decimal
	SalesAsOf      *time.Time
}

// Dashboard agregado del tablero.
type Dashboard struct {
	TotalCPOs int64
	RFID      RFIDInfo
	EVSE      EVSEInfo
	Location  LocationInfo
	Topup     TopupInfo
}
