package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
)

type dashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	ExportDashboardPDF(ctx context.Context) ([]byte, error)
}

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc dashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc dashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get devuelve los totales de CPOs, RFIDs, EVSEs, ubicaciones y recargas.
// GET /admin/api/v1/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

// PDF descarga el mismo tablero como documento PDF.
// GET /admin/api/v1/dashboard/pdf
func (h *DashboardHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportDashboardPDF(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard.pdf"`)
	return c.Send(doc)
}
