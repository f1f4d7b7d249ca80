package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
)

type merchantService interface {
	ListCPOs(ctx context.Context, page dto.PageRequest) (*dto.CPOListResponse, error)
	RegisterCPO(ctx context.Context, adminID int64, in dto.RegisterCPORequest) (string, error)
	CheckRegisterCPO(ctx context.Context, field, value string) (string, error)
	SearchCPOByName(ctx context.Context, name string) ([]dto.CPOResponse, error)
	UpdateCPOByID(ctx context.Context, adminID, id int64, fields map[string]string) (string, error)
	ChangeCPOAccountStatus(ctx context.Context, adminID int64, action string, userID int64) (string, error)
	AddRFID(ctx context.Context, adminID, cpoOwnerID int64, tag string) (string, error)
	AddRFIDs(ctx context.Context, cpoOwnerID int64, tags []string) (string, error)
	Topup(ctx context.Context, adminID, cpoOwnerID int64, amount decimal.Decimal) (*dto.TopupResponse, error)
	GetTopups(ctx context.Context, cpoOwnerID int64) ([]dto.TopupLogResponse, error)
	VoidTopup(ctx context.Context, adminID int64, referenceID string) (*dto.VoidTopupResponse, error)
	ListCompanyPartnerDetails(ctx context.Context) ([]dto.CompanyPartnerResponse, error)
	RegisterCompanyPartnerDetails(ctx context.Context, adminID int64, in dto.CompanyPartnerRequest) (*dto.RegisterPartnerResponse, error)
	UpdateCompanyPartnerDetails(ctx context.Context, adminID, id int64, address string) (string, error)
}

// MerchantHandler maneja CPOs, tarjetas RFID, recargas y socios comerciales.
type MerchantHandler struct {
	uc  merchantService
	val *Validator
}

// NewMerchantHandler construye el handler.
func NewMerchantHandler(uc merchantService, val *Validator) *MerchantHandler {
	return &MerchantHandler{uc: uc, val: val}
}

// ────────────────────────────────────────────────────────────────────────────
// CPOs
// ────────────────────────────────────────────────────────────────────────────

// List godoc
// @Summary      Listar CPOs
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(10)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope{data=dto.CPOListResponse}
// @Router       /admin/api/v1/merchants [get]
func (h *MerchantHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := h.val.bindQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.ListCPOs(c.UserContext(), page)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Register godoc
// @Summary      Registrar CPO y enviar credenciales por correo
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCPORequest  true  "Datos del CPO"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /admin/api/v1/merchants [post]
func (h *MerchantHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCPORequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	status, err := h.uc.RegisterCPO(c.UserContext(), GetAdminID(c), in)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// Check godoc
// @Summary      Verificar disponibilidad de un campo de registro
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        type   path  string  true  "username | contact_number | contact_email | ..."
// @Param        value  path  string  true  "Valor a verificar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/check/{type}/{value} [get]
func (h *MerchantHandler) Check(c *fiber.Ctx) error {
	var p dto.CheckRegisterCPOParams
	if err := h.val.bindParams(c, &p); err != nil {
		return err
	}
	status, err := h.uc.CheckRegisterCPO(c.UserContext(), p.Type, p.Value)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// Search godoc
// @Summary      Buscar CPOs por nombre
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        cpo_owner_name  path  string  true  "Nombre (parcial)"
// @Success      200  {object}  dto.Envelope{data=[]dto.CPOResponse}
// @Router       /admin/api/v1/merchants/{cpo_owner_name} [get]
func (h *MerchantHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchCPOByName(c.UserContext(), c.Params("cpo_owner_name"))
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar datos de un CPO
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID del CPO"
// @Param        body  body  map[string]string  true  "Campos a modificar"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/{id} [patch]
func (h *MerchantHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	fields := map[string]string{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&fields); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Malformed JSON body")
		}
	}
	status, err := h.uc.UpdateCPOByID(c.UserContext(), GetAdminID(c), id, fields)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// ChangeAccountStatus godoc
// @Summary      Activar o desactivar la cuenta de un CPO
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        action   path  string  true  "activate | deactivate"
// @Param        user_id  path  int     true  "ID de usuario del CPO"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/{action}/{user_id} [patch]
func (h *MerchantHandler) ChangeAccountStatus(c *fiber.Ctx) error {
	var p dto.ChangeAccountStatusParams
	if err := h.val.bindParams(c, &p); err != nil {
		return err
	}
	status, err := h.uc.ChangeCPOAccountStatus(c.UserContext(), GetAdminID(c), p.Action, p.UserID)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// ────────────────────────────────────────────────────────────────────────────
// RFID y recargas
// ────────────────────────────────────────────────────────────────────────────

// AddRFID godoc
// @Summary      Asignar una tarjeta RFID a un CPO
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        cpo_owner_id   path  int     true  "ID del CPO"
// @Param        rfid_card_tag  path  string  true  "Tag de la tarjeta"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/rfid/{cpo_owner_id}/{rfid_card_tag} [post]
func (h *MerchantHandler) AddRFID(c *fiber.Ctx) error {
	cpoOwnerID, err := paramID(c, "cpo_owner_id")
	if err != nil {
		return err
	}
	status, err := h.uc.AddRFID(c.UserContext(), GetAdminID(c), cpoOwnerID, c.Params("rfid_card_tag"))
	if err != nil {
		return err
	}
	return ok(c, status)
}

// AddRFIDs godoc
// @Summary      Alta masiva de tarjetas RFID para un CPO
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cpo_owner_id  path  int                  true  "ID del CPO"
// @Param        body          body  dto.AddRFIDsRequest  true  "Tags"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/rfids/{cpo_owner_id} [post]
func (h *MerchantHandler) AddRFIDs(c *fiber.Ctx) error {
	cpoOwnerID, err := paramID(c, "cpo_owner_id")
	if err != nil {
		return err
	}
	var in dto.AddRFIDsRequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	status, err := h.uc.AddRFIDs(c.UserContext(), cpoOwnerID, in.RFIDs)
	if err != nil {
		return err
	}
	return ok(c, status)
}

// Topup godoc
// @Summary      Recargar saldo a un CPO
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cpo_owner_id  path  int               true  "ID del CPO"
// @Param        body          body  dto.TopupRequest  true  "Monto"
// @Success      200  {object}  dto.Envelope{data=dto.TopupResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/topup/{cpo_owner_id} [post]
func (h *MerchantHandler) Topup(c *fiber.Ctx) error {
	cpoOwnerID, err := paramID(c, "cpo_owner_id")
	if err != nil {
		return err
	}
	var in dto.TopupRequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Topup(c.UserContext(), GetAdminID(c), cpoOwnerID, in.Amount)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// Topups godoc
// @Summary      Recargas aún anulables de un CPO
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        cpo_owner_id  path  int  true  "ID del CPO"
// @Success      200  {object}  dto.Envelope{data=[]dto.TopupLogResponse}
// @Router       /admin/api/v1/merchants/topups/{cpo_owner_id} [get]
func (h *MerchantHandler) Topups(c *fiber.Ctx) error {
	cpoOwnerID, err := paramID(c, "cpo_owner_id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetTopups(c.UserContext(), cpoOwnerID)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// VoidTopup godoc
// @Summary      Anular una recarga
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        reference_id  path  string  true  "Referencia de la recarga"
// @Success      200  {object}  dto.Envelope{data=dto.VoidTopupResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/merchants/topups/void/{reference_id} [post]
func (h *MerchantHandler) VoidTopup(c *fiber.Ctx) error {
	out, err := h.uc.VoidTopup(c.UserContext(), GetAdminID(c), c.Params("reference_id"))
	if err != nil {
		return err
	}
	return ok(c, out)
}

// ────────────────────────────────────────────────────────────────────────────
// Socios comerciales
// ────────────────────────────────────────────────────────────────────────────

// ListPartners godoc
// @Summary      Listar socios comerciales
// @Tags         company_partner_details
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CompanyPartnerResponse}
// @Router       /admin/api/v1/company_partner_details [get]
func (h *MerchantHandler) ListPartners(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanyPartnerDetails(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

// RegisterPartner godoc
// @Summary      Registrar socio comercial y generar su party_id
// @Tags         company_partner_details
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanyPartnerRequest  true  "Empresa y dirección"
// @Success      200  {object}  dto.Envelope{data=dto.RegisterPartnerResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/company_partner_details [post]
func (h *MerchantHandler) RegisterPartner(c *fiber.Ctx) error {
	var in dto.CompanyPartnerRequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.RegisterCompanyPartnerDetails(c.UserContext(), GetAdminID(c), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

// UpdatePartner godoc
// @Summary      Actualizar país de un socio a partir de su dirección
// @Tags         company_partner_details
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                              true  "ID del socio"
// @Param        body  body  dto.UpdateCompanyPartnerRequest  true  "Dirección"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /admin/api/v1/company_partner_details/{id} [patch]
func (h *MerchantHandler) UpdatePartner(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateCompanyPartnerRequest
	if err := h.val.bindBody(c, &in); err != nil {
		return err
	}
	status, err := h.uc.UpdateCompanyPartnerDetails(c.UserContext(), GetAdminID(c), id, in.Address)
	if err != nil {
		return err
	}
	return ok(c, status)
}
