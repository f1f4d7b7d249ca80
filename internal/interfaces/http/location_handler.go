package http

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
)

// formFieldImages campo multipart con las imágenes de POST /locations/upload.
const formFieldImages = "images"

type locationService interface {
	Register(ctx context.Context, adminID int64, in dto.RegisterLocationRequest) (dto.RegisterLocationResponse, error)
	Bind(ctx context.Context, adminID int64, action string, locationID, cpoOwnerID int64) (string, error)
	List(ctx context.Context, page dto.PageRequest) (*dto.LocationListResponse, error)
	ListUnbound(ctx context.Context) ([]dto.LocationResponse, error)
	ListForCPO(ctx context.Context, cpoOwnerID int64) ([]dto.LocationResponse, error)
	SearchByName(ctx context.Context, name string, page dto.PageRequest) ([]dto.LocationResponse, error)
	Defaults(ctx context.Context) (*dto.LocationDefaultsResponse, error)
	UploadImages(ctx context.Context, files []dto.UploadedImage) ([]string, error)
}

// LocationHandler maneja las peticiones HTTP de ubicaciones.
type LocationHandler struct {
	uc  locationService
	val *Validator
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc locationService, val *Validator) *LocationHandler {
	return &LocationHandler{uc: uc, val: val}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(10)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope{data=dto.LocationListResponse}
// @Router       /admin/api/v1/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
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

// ListUnbound godoc
// @Summary      Ubicaciones sin CPO
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.LocationResponse}
// @Router       /admin/api/v1/locations/unbinded [get]
func (h *LocationHandler) ListUnbound(c *fiber.Ctx) error {
	out, err := h.uc.ListUnbound(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

// ListForCPO godoc
// @Summary      Ubicaciones de un CPO más las no vinculadas
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        cpo_owner_id  path  int  true  "ID del CPO"
// @Success      200  {object}  dto.Envelope{data=[]dto.LocationResponse}
// @Router       /admin/api/v1/locations/{cpo_owner_id} [get]
func (h *LocationHandler) ListForCPO(c *fiber.Ctx) error {
	cpoOwnerID, err := paramID(c, "cpo_owner_id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListForCPO(c.UserContext(), cpoOwnerID)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Register godoc
// @Summary      Registrar ubicación (geocodifica la dirección)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterLocationRequest  true  "Datos de la ubicación"
// @Success      200   {object}  dto.Envelope{data=dto.RegisterLocationResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /admin/api/v1/locations [post]
func (h *LocationHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterLocationRequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), GetAdminID(c), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Upload godoc
// @Summary      Subir imágenes de ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        images  formData  file  true  "png, svg, jpg o jpeg"
// @Success      200  {object}  dto.Envelope{data=[]string}
// @Failure      422  {object}  dto.Envelope
// @Router       /admin/api/v1/locations/upload [post]
func (h *LocationHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return domain.NewValidationError(formFieldImages, "Please upload at least one image")
	}
	headers := form.File[formFieldImages]
	files := make([]dto.UploadedImage, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return err
		}
		files = append(files, dto.UploadedImage{Name: fh.Filename, Content: content})
	}
	names, err := h.uc.UploadImages(c.UserContext(), files)
	if err != nil {
		return err
	}
	return ok(c, names)
}

// Defaults godoc
// @Summary      Vocabularios del formulario de ubicación
// @Tags         locations
// @Security     BasicAuth
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.LocationDefaultsResponse}
// @Router       /admin/api/v1/locations/data/defaults [get]
func (h *LocationHandler) Defaults(c *fiber.Ctx) error {
	out, err := h.uc.Defaults(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Search godoc
// @Summary      Buscar ubicaciones por nombre
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        name    path  string  true  "Nombre (parcial)"
// @Param        limit   path  int     true  "Límite"
// @Param        offset  path  int     true  "Offset"
// @Success      200  {object}  dto.Envelope{data=[]dto.LocationResponse}
// @Router       /admin/api/v1/locations/search/{name}/{limit}/{offset} [get]
func (h *LocationHandler) Search(c *fiber.Ctx) error {
	var p dto.SearchLocationParams
	if err := h.val.bindParams(c, &p); err != nil {
		return err
	}
	out, err := h.uc.SearchByName(c.UserContext(), p.Name, dto.PageRequest{Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Bind godoc
// @Summary      Vincular o desvincular una ubicación de un CPO
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        action        path  string  true  "bind | unbind"
// @Param        location_id   path  int     true  "ID de la ubicación"
// @Param        cpo_owner_id  path  int     true  "ID del CPO"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/locations/{action}/{location_id}/{cpo_owner_id} [patch]
func (h *LocationHandler) Bind(c *fiber.Ctx) error {
	var p dto.BindLocationParams
	if err := h.val.bindParams(c, &p); err != nil {
		return err
	}
	status, err := h.uc.Bind(c.UserContext(), GetAdminID(c), p.Action, p.LocationID, p.CPOOwnerID)
	if err != nil {
		return err
	}
	return ok(c, status)
}
