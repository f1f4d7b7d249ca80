package entity

// ProcedureStatus resultado de una operación almacenada (función de PostgreSQL).
// El adaptador de persistencia traduce la cadena cruda una sola vez; los estados no listados se conservan tal cual.
type ProcedureStatus string

const (
	StatusSuccess                 ProcedureStatus = "SUCCESS"
	StatusDuplicateSerial         ProcedureStatus = "DUPLICATE_SERIAL"
	StatusEVSENotFound            ProcedureStatus = "EVSE_NOT_FOUND"
	StatusLocationNotFound        ProcedureStatus = "LOCATION_NOT_FOUND"
	StatusCPOOwnerNotFound        ProcedureStatus = "CPO_OWNER_NOT_FOUND"
	StatusCPOIDDoesNotExists      ProcedureStatus = "CPO_ID_DOES_NOT_EXISTS"
	StatusAlreadyBound            ProcedureStatus = "ALREADY_BINDED"
	StatusAlreadyUnbound          ProcedureStatus = "ALREADY_UNBINDED"
	StatusUsernameExists          ProcedureStatus = "USERNAME_EXISTS"
	StatusCPOOwnerNameExists      ProcedureStatus = "CPO_OWNER_NAME_EXISTS"
	StatusContactNameExists       ProcedureStatus = "CONTACT_NAME_EXISTS"
	StatusContactNumberExists     ProcedureStatus = "CONTACT_NUMBER_EXISTS"
	StatusContactEmailExists      ProcedureStatus = "CONTACT_EMAIL_EXISTS"
	StatusPartyIDExists           ProcedureStatus = "PARTY_ID_EXISTS"
	StatusRFIDExists              ProcedureStatus = "RFID_EXISTS"
	StatusReferenceIDNotFound     ProcedureStatus = "REFERENCE_ID_DOES_NOT_EXISTS"
	StatusAlreadyVoided           ProcedureStatus = "ALREADY_VOIDED"
	StatusInsufficientBalance     ProcedureStatus = "INSUFFICIENT_BALANCE"
	StatusInvalidAmount           ProcedureStatus = "INVALID_AMOUNT"
	StatusInvalidAction           ProcedureStatus = "INVALID_ACTION"
	StatusInvalidRequest          ProcedureStatus = "INVALID_REQUEST"
	StatusInvalidUsername         ProcedureStatus = "INVALID_USERNAME"
	StatusInvalidContactNumber    ProcedureStatus = "INVALID_CONTACT_NUMBER"
	StatusInvalidContactEmail     ProcedureStatus = "INVALID_CONTACT_EMAIL"
	StatusNoChangesApplied        ProcedureStatus = "NO_CHANGES_APPLIED"
	StatusPartyIDExhausted        ProcedureStatus = "PARTY_ID_EXHAUSTED"
	StatusParkingRestrictionsFail ProcedureStatus = "PARKING_RESTRICTIONS_NOT_ADDED"
)

// ParseProcedureStatus normaliza la cadena devuelta por el almacén.
func ParseProcedureStatus(raw string) ProcedureStatus {
	return ProcedureStatus(raw)
}

// IsSuccess indica si el estado es SUCCESS.
func (s ProcedureStatus) IsSuccess() bool { return s == StatusSuccess }

func (s ProcedureStatus) String() string { return string(s) }
