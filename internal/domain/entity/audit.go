package entity

// Resultados registrados en la bitácora.
const (
	AuditRemarkSuccess = "success"
	AuditRemarkFailed  = "failed"
)

// AuditTrail entrada inmutable de la bitácora de administración. CPOID nil = acción sin CPO sujeto.
type AuditTrail struct {
	AdminID int64
	CPOID   *int64
	Action  string
	Remarks string
}
