package entity

import "time"

// CPO operador de puntos de carga (merchant) con su usuario dueño.
type CPO struct {
	ID            int64
	UserID        int64
	PartyID       string
	CPOOwnerName  string
	ContactName   string
	ContactNumber string
	ContactEmail  string
	Username      string
	UserStatus    string
	CreatedAt     time.Time
}

// NewCPO datos de alta de un CPO. PasswordHash ya viene con bcrypt.
type NewCPO struct {
	PartyID       string
	CPOOwnerName  string
	ContactName   string
	ContactNumber string
	ContactEmail  string
	Username      string
	PasswordHash  string
}

// Campos actualizables de un CPO (claves aceptadas por UpdateCPOByID).
const (
	CPOFieldOwnerName     = "cpo_owner_name"
	CPOFieldContactName   = "contact_name"
	CPOFieldContactNumber = "contact_number"
	CPOFieldContactEmail  = "contact_email"
	CPOFieldUsername      = "username"
)

// CPOUpdatableFields en el orden en que se reportan.
var CPOUpdatableFields = []string{
	CPOFieldOwnerName, CPOFieldContactName, CPOFieldContactNumber, CPOFieldContactEmail, CPOFieldUsername,
}

// RFID
const (
	RFIDTypePhysical     = "PHYSICAL"
	RFIDStatusUnassigned = "UNASSIGNED"
	RFIDStatusActive     = "ACTIVE"
)

// RFIDCard tarjeta RFID emitida a un CPO.
type RFIDCard struct {
	Tag        string
	CPOOwnerID int64
	Type       string
	Status     string
	CreatedAt  time.Time
}

// CompanyPartnerDetails socio comercial con su party id emitido.
type CompanyPartnerDetails struct {
	ID          int64
	CompanyName string
	PartyID     string
	CountryCode string
	Status      string
	CreatedAt   time.Time
}
