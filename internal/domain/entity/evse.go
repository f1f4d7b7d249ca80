package entity

import "time"

// Estados de conectores y timeslots al registrarse.
const (
	ConnectorStatusAvailable = "AVAILABLE"
	TimeslotStatusOnline     = "ONLINE"
)

// EVSE equipo de carga. LocationID nil = no vinculado a ninguna ubicación.
type EVSE struct {
	UID               string
	EVSECode          string
	EVSEID            string
	Model             string
	Vendor            string
	SerialNumber      string
	BoxSerialNumber   string
	FirmwareVersion   string
	ICCID             string
	IMSI              string
	MeterType         string
	MeterSerialNumber string
	Status            string
	LocationID        *int64
	CreatedAt         time.Time
}

// Connector pertenece a un único EVSE; ConnectorID es la posición 1..N dentro del EVSE.
type Connector struct {
	EVSEUID          string
	ConnectorID      int
	Standard         string
	Format           string
	PowerType        string
	MaxVoltage       float64
	MaxAmperage      float64
	MaxElectricPower float64
	RateSetting      int // kWh; se persiste como "<n> KW-H"
	Status           string
}

// Timeslot franja de capacidad de un par (EVSE, conector).
type Timeslot struct {
	EVSEUID           string
	ConnectorID       int
	SettingTimeslotID int
	Status            string
}

// ReferenceItem entrada de un vocabulario fijo (tipos de pago, capacidades, facilidades...).
type ReferenceItem struct {
	ID          int64
	Code        string
	Description string
}
