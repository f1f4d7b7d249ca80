package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFIDInfoResponse totales de RFID.
type RFIDInfoResponse struct {
	TotalAssigned   int64      `json:"total_assigned_rfids"`
	TotalUnassigned int64      `json:"total_unassigned_rfids"`
	Total           int64      `json:"total_rfids"`
	AssignedAsOf    *time.Time `json:"effective_date_of_total_assigned_rfids"`
	UnassignedAsOf  *time.Time `json:"effective_date_of_total_unassigned_rfids"`
	TotalAsOf       *time.Time `json:"effective_date_of_total_rfids"`
}

// EVSEInfoResponse totales de EVSE.
type EVSEInfoResponse struct {
	TotalAssigned   int64      `json:"total_assigned_evses"`
	TotalUnassigned int64      `json:"total_unassigned_evses"`
	Total           int64      `json:"total_evses"`
	AssignedAsOf    *time.Time `json:"effective_date_of_total_assigned_evses"`
	UnassignedAsOf  *time.Time `json:"effective_date_of_total_unassigned_evses"`
	TotalAsOf       *time.Time `json:"effective_date_of_total_evses"`
}

// LocationInfoResponse totales de ubicaciones.
type LocationInfoResponse struct {
	TotalAssigned   int64      `json:"total_assigned_locations"`
	TotalUnassigned int64      `json:"total_unassigned_locations"`
	Total           int64      `json:"total_locations"`
	TotalAsOf       *time.Time `json:"effective_date_of_total_locations"`
}

// TopupInfoResponse sumas de recargas.
type TopupInfoResponse struct {
	TotalSales     decimal.Decimal `json:"total_topup_sales"`
	TotalVoids     decimal.Decimal `json:"total_void_topups"`
	TotalCardSales decimal.Decimal `json:"total_topup_card_sales"`
	TotalMayaSales decimal.Decimal `json:"total_topup_maya_sales"`
	SalesAsOf      *time.Time      `json:"effective_date_of_topup_sales"`
}

// DashboardResponse respuesta de GET /dashboard.
type DashboardResponse struct {
	TotalCPOs    int64                `json:"total_cpos"`
	RFIDInfo     RFIDInfoResponse     `json:"rfid_info"`
	EVSEInfo     EVSEInfoResponse     `json:"evse_info"`
	LocationInfo LocationInfoResponse `json:"location_info"`
	TopupInfo    TopupInfoResponse    `json:"topup_info"`
}
