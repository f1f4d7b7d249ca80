package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/pkg/config"
)

// APIPrefix prefijo común de todas las rutas de administración.
const APIPrefix = "/admin/api/v1"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EVSEUC       evseService
	LocationUC   locationService
	MerchantUC   merchantService
	DashboardUC  dashboardService
	UserMgmtUC   userManagementService
	Validator    *Validator
	JWTSecret    string
	BasicAuth    config.BasicAuthConfig
	UploadDir    string
	UploadPrefix string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	val := deps.Validator
	if val == nil {
		val = NewValidator()
	}
	api := app.Group(APIPrefix)

	auth := AuthMiddleware(deps.JWTSecret)
	basic := BasicAuth(deps.BasicAuth)
	operations := RequireRole(entity.RoleAdmin, entity.RoleAdminNOC, entity.RoleAdminMarketing)

	// EVSEs
	evseHandler := NewEVSEHandler(deps.EVSEUC, val)
	api.Get("/evses/data/defaults", basic, evseHandler.Defaults)
	api.Get("/evses/search/:serial_number/:limit/:offset", auth, operations, evseHandler.Search)
	api.Get("/evses", auth, operations, evseHandler.List)
	api.Post("/evses", auth, operations, evseHandler.Register)
	api.Patch("/evses/:action/:location_id/:evse_uid", auth, operations, evseHandler.Bind)

	// Locations (las rutas fijas antes que /locations/:cpo_owner_id)
	locationHandler := NewLocationHandler(deps.LocationUC, val)
	api.Get("/locations/data/defaults", basic, locationHandler.Defaults)
	api.Get("/locations/unbinded", auth, operations, locationHandler.ListUnbound)
	api.Get("/locations/search/:name/:limit/:offset", auth, RequireRole(entity.RoleAdminNOC, entity.RoleAdminMarketing), locationHandler.Search)
	api.Post("/locations/upload", auth, locationHandler.Upload)
	api.Get("/locations", auth, operations, locationHandler.List)
	api.Post("/locations", auth, operations, locationHandler.Register)
	api.Get("/locations/:cpo_owner_id", auth, operations, locationHandler.ListForCPO)
	api.Patch("/locations/:action/:location_id/:cpo_owner_id", auth, operations, locationHandler.Bind)

	// Merchants
	merchantHandler := NewMerchantHandler(deps.MerchantUC, val)
	merchants := api.Group("/merchants", auth, operations)
	merchants.Get("/", merchantHandler.List)
	merchants.Post("/", merchantHandler.Register)
	merchants.Get("/check/:type/:value", merchantHandler.Check)
	merchants.Get("/topups/:cpo_owner_id", merchantHandler.Topups)
	merchants.Post("/topups/void/:reference_id", merchantHandler.VoidTopup)
	merchants.Post("/topup/:cpo_owner_id", merchantHandler.Topup)
	merchants.Post("/rfid/:cpo_owner_id/:rfid_card_tag", merchantHandler.AddRFID)
	merchants.Post("/rfids/:cpo_owner_id", merchantHandler.AddRFIDs)
	merchants.Get("/:cpo_owner_name", merchantHandler.Search)
	merchants.Patch("/:action/:user_id", merchantHandler.ChangeAccountStatus)
	merchants.Patch("/:id", merchantHandler.Update)

	// Company partner details
	partners := api.Group("/company_partner_details", auth, operations)
	partners.Get("/", merchantHandler.ListPartners)
	partners.Post("/", merchantHandler.RegisterPartner)
	partners.Patch("/:id", merchantHandler.UpdatePartner)

	// Reports
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", auth, operations, dashboardHandler.Get)
	api.Get("/dashboard/pdf", auth, operations, dashboardHandler.PDF)

	// User management (cualquier token de administrador)
	userHandler := NewUserManagementHandler(deps.UserMgmtUC, val)
	api.Post("/users/management", auth, userHandler.AddSubUser)

	// Imágenes subidas
	if deps.UploadDir != "" && deps.UploadPrefix != "" {
		app.Static(deps.UploadPrefix, deps.UploadDir)
	}
}
