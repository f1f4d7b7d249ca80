package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	apphttp "github.com/jhoicas/evcharge-admin-api/internal/interfaces/http"
	"github.com/jhoicas/evcharge-admin-api/pkg/config"
	pkgjwt "github.com/jhoicas/evcharge-admin-api/pkg/jwt"
	"github.com/jhoicas/evcharge-admin-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdminID   = "42"
	testIssuer    = "evcharge-admin-test"
	testExpMin    = 60
)

// newApp crea una app Fiber con el ErrorHandler real.
func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop(), "test")})
}

// buildTestApp construye una aplicación mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := newApp()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"role":     apphttp.GetRole(c),
				"admin_id": apphttp.GetAdminID(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El administrador tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN debe poder acceder a ruta restringida a ADMIN")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "ADMIN", body["role"])
	assert.Equal(t, float64(42), body["admin_id"], "admin_id se guarda como entero")
}

// Caso 1b: uno de varios roles permitidos → HTTP 200.
func TestRequireRole_NOCAccedeRutaOperaciones(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdminNOC, entity.RoleAdminMarketing)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdminNOC))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: rol distinto al requerido → HTTP 403 con el sobre FORBIDDEN.
func TestRequireRole_ContabilidadBloqueadaEnRutaOperaciones(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdminNOC, entity.RoleAdminMarketing)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdminAccounting))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusForbidden, env.Status)
	assert.Equal(t, "FORBIDDEN", env.Message)
	assert.JSONEq(t, `[]`, string(env.Data))
}

// Caso 3: token sin claim de rol → HTTP 401 MISSING_ROLE.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", decodeEnvelope(t, resp).Message)
}

// Caso 4: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeEnvelope(t, resp).Message)
}

// Caso 5: token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeEnvelope(t, resp).Message)
}

// Caso 6: subject no numérico → HTTP 401.
func TestAuthMiddleware_SubjectNoNumerico_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, "not-a-number", entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_EsquemaDistintoBearer_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "Basic YWRtaW46YWRtaW4=")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// BasicAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestBasicAuth(t *testing.T) {
	app := newApp()
	app.Get("/defaults", apphttp.BasicAuth(config.BasicAuthConfig{Username: "svc", Password: "s3cret"}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/defaults", nil)
	req.SetBasicAuth("svc", "s3cret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/defaults", nil)
	req.SetBasicAuth("svc", "otra")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
