// Package geocoding adaptador de la API de geocodificación de Google.
package geocoding

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/pkg/config"
	"github.com/jhoicas/evcharge-admin-api/pkg/logger"
)

const defaultBaseURL = "https://maps.googleapis.com"

var _ ports.Geocoder = (*GoogleClient)(nil)

// Estados de la API que no son error: ZERO_RESULTS equivale a dirección no encontrada.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	AddressComponents []struct {
		LongName  string   `json:"long_name"`
		ShortName string   `json:"short_name"`
		Types     []string `json:"types"`
	} `json:"address_components"`
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// GoogleClient implementa ports.Geocoder.
type GoogleClient struct {
	http   *resty.Client
	apiKey string
	log    *logger.Logger
}

// NewGoogleClient construye el cliente con reintentos.
func NewGoogleClient(cfg config.GeoConfig, log *logger.Logger) *GoogleClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &GoogleClient{http: client, apiKey: cfg.APIKey, log: log}
}

// Geocode devuelve el primer resultado. Sin resultados devuelve un GeocodedAddress vacío.
func (c *GoogleClient) Geocode(ctx context.Context, address string) (*entity.GeocodedAddress, error) {
	var body geocodeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("address", address).
		SetQueryParam("key", c.apiKey).
		SetResult(&body).
		Get("/maps/api/geocode/json")
	if err != nil {
		c.log.Error().Err(err).Str("address", address).Msg("geocodificación fallida")
		return nil, fmt.Errorf("geocode: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocode: HTTP %d", resp.StatusCode())
	}

	switch body.Status {
	case statusOK, statusZeroResults, "":
	default:
		c.log.Warn().Str("status", body.Status).Str("error_message", body.ErrorMessage).Msg("geocodificación rechazada")
		return nil, fmt.Errorf("geocode: %s %s", body.Status, body.ErrorMessage)
	}

	out := &entity.GeocodedAddress{}
	if len(body.Results) == 0 {
		return out, nil
	}
	first := body.Results[0]
	for _, ac := range first.AddressComponents {
		out.Components = append(out.Components, entity.AddressComponent{
			LongName:  ac.LongName,
			ShortName: ac.ShortName,
			Types:     ac.Types,
		})
	}
	out.FormattedAddress = first.FormattedAddress
	out.Lat = first.Geometry.Location.Lat
	out.Lng = first.Geometry.Location.Lng
	return out, nil
}
