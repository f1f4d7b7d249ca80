package geocoding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/geocoding"
	"github.com/jhoicas/evcharge-admin-api/pkg/config"
)

const cabuyaoJSON = `{
  "status": "OK",
  "results": [{
    "formatted_address": "Cabuyao, Laguna, Philippines",
    "geometry": {"location": {"lat": 14.27, "lng": 121.12}},
    "address_components": [
      {"long_name": "Cabuyao", "short_name": "Cabuyao", "types": ["locality", "political"]},
      {"long_name": "Calabarzon", "short_name": "Calabarzon", "types": ["administrative_area_level_1"]},
      {"long_name": "Philippines", "short_name": "PH", "types": ["country", "political"]}
    ]
  }]
}`

func newServer(t *testing.T, status int, body string) (*httptest.Server, *url.URL) {
	t.Helper()
	got := &url.URL{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = *r.URL
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestGeocode_PrimerResultado(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, cabuyaoJSON)
	c := geocoding.NewGoogleClient(config.GeoConfig{APIKey: "k1", BaseURL: srv.URL, TimeoutSec: 2}, nil)

	geo, err := c.Geocode(context.Background(), "Cabuyao, Laguna")
	require.NoError(t, err)
	assert.Equal(t, "/maps/api/geocode/json", got.Path)
	assert.Equal(t, "Cabuyao, Laguna", got.Query().Get("address"))
	assert.Equal(t, "k1", got.Query().Get("key"))

	assert.Len(t, geo.Components, 3)
	assert.Equal(t, "PH", geo.CountryCode())
	assert.Equal(t, "Cabuyao", geo.City())
	assert.Equal(t, "CAL", geo.Region())
	assert.InDelta(t, 121.12, geo.Lng, 1e-9)
}

func TestGeocode_SinResultados_DireccionVacia(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`)
	c := geocoding.NewGoogleClient(config.GeoConfig{BaseURL: srv.URL}, nil)

	geo, err := c.Geocode(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, geo.Components)
}

func TestGeocode_Rechazada_Error(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`)
	c := geocoding.NewGoogleClient(config.GeoConfig{BaseURL: srv.URL}, nil)

	_, err := c.Geocode(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}
