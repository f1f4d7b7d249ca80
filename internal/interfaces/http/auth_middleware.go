package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/jhoicas/evcharge-admin-api/pkg/config"
	"github.com/jhoicas/evcharge-admin-api/pkg/jwt"
)

// Locals keys para el administrador autenticado.
const (
	LocalAdminID = "admin_id"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y guarda admin_id y role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "MISSING_TOKEN")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "INVALID_TOKEN")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "MISSING_TOKEN")
		}
		subject, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "INVALID_TOKEN")
		}
		adminID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil || adminID <= 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "INVALID_TOKEN")
		}
		c.Locals(LocalAdminID, adminID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole deja pasar solo si el rol del token está entre los permitidos.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 MISSING_ROLE → token sin rol.
//   - 403 FORBIDDEN    → rol no permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "MISSING_ROLE")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "FORBIDDEN")
		}
		return c.Next()
	}
}

// BasicAuth protege los catálogos de referencia con usuario y contraseña fijos.
func BasicAuth(cfg config.BasicAuthConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{cfg.Username: cfg.Password},
		Unauthorized: func(*fiber.Ctx) error {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		},
	})
}

// GetAdminID devuelve el id del administrador (después del middleware de auth).
func GetAdminID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalAdminID).(int64)
	return id
}

// GetRole devuelve el rol del token (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
