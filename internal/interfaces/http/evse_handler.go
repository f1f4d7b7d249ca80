package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
)

// evseService contrato que el handler necesita de evse.UseCase.
type evseService interface {
	Register(ctx context.Context, adminID int64, in dto.RegisterEVSERequest) (string, error)
	Bind(ctx context.Context, adminID int64, action string, locationID int64, evseUID string) (string, error)
	List(ctx context.Context, page dto.PageRequest) (*dto.EVSEListResponse, error)
	SearchBySerialNumber(ctx context.Context, serialNumber string, page dto.PageRequest) ([]dto.EVSEResponse, error)
	Defaults(ctx context.Context) (*dto.EVSEDefaultsResponse, error)
}

// EVSEHandler maneja las peticiones HTTP de equipos de carga.
type EVSEHandler struct {
	uc  evseService
	val *Validator
}

// NewEVSEHandler construye el handler.
func NewEVSEHandler(uc evseService, val *Validator) *EVSEHandler {
	return &EVSEHandler{uc: uc, val: val}
}

// List godoc
// @Summary      Listar EVSEs
// @Tags         evses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(10)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope{data=dto.EVSEListResponse}
// @Router       /admin/api/v1/evses [get]
func (h *EVSEHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := h.val.bindQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Register godoc
// @Summary      Registrar EVSE con conectores, franjas, tipos de pago y capacidades
// @Tags         evses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEVSERequest  true  "Datos del EVSE"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /admin/api/v1/evses [post]
func (h *EVSEHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEVSERequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	status, err := h.uc.Register(c.UserContext(), GetAdminID(c), in)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// Bind godoc
// @Summary      Vincular o desvincular un EVSE de una ubicación
// @Tags         evses
// @Security     Bearer
// @Produce      json
// @Param        action       path  string  true  "bind | unbind"
// @Param        location_id  path  int     true  "ID de la ubicación"
// @Param        evse_uid     path  string  true  "UID del EVSE"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/evses/{action}/{location_id}/{evse_uid} [patch]
func (h *EVSEHandler) Bind(c *fiber.Ctx) error {
	var p dto.BindEVSEParams
	if err := h.val.bindParams(c, &p); err != nil {
		return err
	}
	status, err := h.uc.Bind(c.UserContext(), GetAdminID(c), p.Action, p.LocationID, p.EVSEUID)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// Defaults godoc
// @Summary      Vocabularios del formulario de EVSE
// @Tags         evses
// @Security     BasicAuth
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.EVSEDefaultsResponse}
// @Router       /admin/api/v1/evses/data/defaults [get]
func (h *EVSEHandler) Defaults(c *fiber.Ctx) error {
	out, err := h.uc.Defaults(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Search godoc
// @Summary      Buscar EVSEs por número de serie
// @Tags         evses
// @Security     Bearer
// @Produce      json
// @Param        serial_number  path  string  true  "Número de serie (parcial)"
// @Param        limit          path  int     true  "Límite"
// @Param        offset         path  int     true  "Offset"
// @Success      200  {object}  dto.Envelope{data=[]dto.EVSEResponse}
// @Router       /admin/api/v1/evses/search/{serial_number}/{limit}/{offset} [get]
func (h *EVSEHandler) Search(c *fiber.Ctx) error {
	var p dto.SearchEVSEParams
	if err := h.val.bindParams(c, &p); err != nil {
		return err
	}
	out, err := h.uc.SearchBySerialNumber(c.UserContext(), p.SerialNumber, dto.PageRequest{Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return err
	}
	return ok(c, out)
}
