package evse

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de un EVSE dentro de una transacción, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	RunEVSERegistration(ctx context.Context, fn func(
		evseRepo repository.EVSERepository,
		connectorRepo repository.ConnectorRepository,
	) error) error
}
