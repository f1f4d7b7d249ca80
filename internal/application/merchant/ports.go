package merchant

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// TxRunner ejecuta las verificaciones de duplicados y la actualización de un CPO en una sola transacción.
type TxRunner interface {
	RunCPOUpdate(ctx context.Context, fn func(cpoRepo repository.CPORepository) error) error
}
