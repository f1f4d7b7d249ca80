package location

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// TxRunner ejecuta la inserción de la ubicación y sus asociaciones en una sola transacción.
type TxRunner interface {
	RunLocationRegistration(ctx context.Context, fn func(locationRepo repository.LocationRepository) error) error
}
