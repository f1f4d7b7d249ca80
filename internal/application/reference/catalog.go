// Package reference expone los vocabularios fijos (tipos de pago, capacidades, facilidades...)
// con lectura a través de caché.
package reference

import (
	"context"
	"time"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// Claves de caché.
const (
	KeyEVSEDefaults     = "reference:evse_defaults"
	KeyLocationDefaults = "reference:location_defaults"
)

// Catalog caso de uso de lectura de vocabularios.
type Catalog struct {
	repo  repository.ReferenceRepository
	cache ports.ReferenceCache
	ttl   time.Duration
}

// NewCatalog construye el catálogo. cache puede ser un caché no-op.
func NewCatalog(repo repository.ReferenceRepository, cache ports.ReferenceCache, ttl time.Duration) *Catalog {
	return &Catalog{repo: repo, cache: cache, ttl: ttl}
}

// EVSEDefaults tipos de pago, capacidades y tipos de conector.
func (c *Catalog) EVSEDefaults(ctx context.Context) (*dto.EVSEDefaultsResponse, error) {
	return cached(ctx, c, KeyEVSEDefaults, func(ctx context.Context) (*dto.EVSEDefaultsResponse, error) {
		paymentTypes, err := c.repo.PaymentTypes(ctx)
		if err != nil {
			return nil, err
		}
		capabilities, err := c.repo.Capabilities(ctx)
		if err != nil {
			return nil, err
		}
		connectorTypes, err := c.repo.ConnectorTypes(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.EVSEDefaultsResponse{
			PaymentTypes:   toItems(paymentTypes),
			Capabilities:   toItems(capabilities),
			ConnectorTypes: toItems(connectorTypes),
		}, nil
	})
}

// LocationDefaults facilidades, tipos y restricciones de estacionamiento.
func (c *Catalog) LocationDefaults(ctx context.Context) (*dto.LocationDefaultsResponse, error) {
	return cached(ctx, c, KeyLocationDefaults, func(ctx context.Context) (*dto.LocationDefaultsResponse, error) {
		facilities, err := c.repo.Facilities(ctx)
		if err != nil {
			return nil, err
		}
		parkingTypes, err := c.repo.ParkingTypes(ctx)
		if err != nil {
			return nil, err
		}
		restrictions, err := c.repo.ParkingRestrictions(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.LocationDefaultsResponse{
			Facilities:          toItems(facilities),
			ParkingTypes:        toItems(parkingTypes),
			ParkingRestrictions: toItems(restrictions),
		}, nil
	})
}

// cached lee key del caché; en un miss (o error del caché) carga desde load y guarda el resultado.
func cached[T any](ctx context.Context, c *Catalog, key string, load func(context.Context) (*T, error)) (*T, error) {
	var hit T
	if ok, err := c.cache.Get(ctx, key, &hit); err == nil && ok {
		return &hit, nil
	}
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, v, c.ttl)
	return v, nil
}

func toItems(items []entity.ReferenceItem) []dto.ReferenceItemResponse {
	out := make([]dto.ReferenceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ReferenceItemResponse{ID: it.ID, Code: it.Code, Description: it.Description})
	}
	return out
}
