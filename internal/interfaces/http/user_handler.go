package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
)

type userManagementService interface {
	AddSubUser(ctx context.Context, in dto.AddSubUserRequest) (string, error)
}

// UserManagementHandler alta de sub-administradores.
type UserManagementHandler struct {
	uc  userManagementService
	val *Validator
}

// NewUserManagementHandler construye el handler.
func NewUserManagementHandler(uc userManagementService, val *Validator) *UserManagementHandler {
	return &UserManagementHandler{uc: uc, val: val}
}

// AddSubUser godoc
// @Summary      Crear sub-administrador con permisos
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddSubUserRequest  true  "Usuario, rol y permisos"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /admin/api/v1/users/management [post]
func (h *UserManagementHandler) AddSubUser(c *fiber.Ctx) error {
	var in dto.AddSubUserRequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	status, err := h.uc.AddSubUser(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, status)
}
