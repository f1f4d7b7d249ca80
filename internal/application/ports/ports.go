package ports

import (
	"context"
	"time"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// Geocoder define el puerto de salida hacia la pasarela de geocodificación.
// Devuelve el primer resultado; Components vacío significa dirección no encontrada.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*entity.GeocodedAddress, error)
}

// Mailer envío de correos salientes.
type Mailer interface {
	SendCPOCredentials(ctx context.Context, to, username, password string) error
}

// ReferenceCache caché de vocabularios de referencia. Get devuelve ok=false en un miss.
type ReferenceCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// DashboardPDFGenerator genera el reporte del tablero en PDF.
type DashboardPDFGenerator interface {
	GenerateDashboard(d *entity.Dashboard, generatedAt time.Time) ([]byte, error)
}

// ImageStore persiste imágenes subidas y devuelve el nombre almacenado.
type ImageStore interface {
	Save(ctx context.Context, originalName string, content []byte) (string, error)
}
