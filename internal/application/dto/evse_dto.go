package dto

import "time"

// ConnectorRequest conector a registrar junto con su EVSE.
type ConnectorRequest struct {
	Standard         string  `json:"standard" validate:"required"`
	Format           string  `json:"format" validate:"required"`
	PowerType        string  `json:"power_type" validate:"required"`
	MaxVoltage       float64 `json:"max_voltage" validate:"required,gt=0"`
	MaxAmperage      float64 `json:"max_amperage" validate:"required,gt=0"`
	MaxElectricPower float64 `json:"max_electric_power" validate:"required,gt=0"`
	RateSetting      int     `json:"rate_setting" validate:"required,gt=0"`
}

// RegisterEVSERequest cuerpo de POST /evses.
type RegisterEVSERequest struct {
	Model             string             `json:"model" validate:"required"`
	Vendor            string             `json:"vendor" validate:"required"`
	SerialNumber      string             `json:"serial_number" validate:"required"`
	BoxSerialNumber   string             `json:"box_serial_number" validate:"required"`
	FirmwareVersion   string             `json:"firmware_version" validate:"required"`
	ICCID             string             `json:"iccid" validate:"required"`
	IMSI              string             `json:"imsi" validate:"required"`
	MeterType         string             `json:"meter_type" validate:"required"`
	MeterSerialNumber string             `json:"meter_serial_number" validate:"required"`
	KWH               int                `json:"kwh" validate:"required,gt=0"`
	LocationID        *int64             `json:"location_id" validate:"omitempty,gt=0"`
	Connectors        []ConnectorRequest `json:"connectors" validate:"required,min=1,dive"`
	PaymentTypes      []int64            `json:"payment_types" validate:"dive,gt=0"`
	Capabilities      []int64            `json:"capabilities" validate:"dive,gt=0"`
}

// BindEVSEParams parámetros de PATCH /evses/:action/:location_id/:evse_uid.
type BindEVSEParams struct {
	Action     string `params:"action" validate:"required,oneof=bind unbind"`
	LocationID int64  `params:"location_id" validate:"required,gt=0"`
	EVSEUID    string `params:"evse_uid" validate:"required"`
}

// SearchEVSEParams parámetros de GET /evses/search/:serial_number/:limit/:offset.
type SearchEVSEParams struct {
	SerialNumber string `params:"serial_number" validate:"required"`
	Limit        int    `params:"limit" validate:"min=0,max=500"`
	Offset       int    `params:"offset" validate:"min=0"`
}

// EVSEResponse EVSE en listados.
type EVSEResponse struct {
	UID               string    `json:"uid"`
	EVSECode          string    `json:"evse_code"`
	EVSEID            string    `json:"evse_id"`
	Model             string    `json:"model"`
	Vendor            string    `json:"vendor"`
	SerialNumber      string    `json:"serial_number"`
	BoxSerialNumber   string    `json:"box_serial_number"`
	FirmwareVersion   string    `json:"firmware_version"`
	ICCID             string    `json:"iccid"`
	IMSI              string    `json:"imsi"`
	MeterSerialNumber string    `json:"meter_serial_number"`
	Status            string    `json:"status"`
	CPOLocationID     *int64    `json:"cpo_location_id"`
	DateCreated       time.Time `json:"date_created"`
}

// EVSEListResponse respuesta de GET /evses.
type EVSEListResponse struct {
	EVSEs         []EVSEResponse `json:"evses"`
	TotalReturned int            `json:"total_evses_returned"`
	Total         int64          `json:"total_evses"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
}

// EVSEDefaultsResponse vocabularios para el formulario de EVSE.
type EVSEDefaultsResponse struct {
	PaymentTypes   []ReferenceItemResponse `json:"payment_types"`
	Capabilities   []ReferenceItemResponse `json:"capabilities"`
	ConnectorTypes []ReferenceItemResponse `json:"connector_types"`
}
