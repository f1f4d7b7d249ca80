package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/evcharge-admin-api/internal/application/audit"
	"github.com/jhoicas/evcharge-admin-api/internal/application/evse"
	"github.com/jhoicas/evcharge-admin-api/internal/application/location"
	"github.com/jhoicas/evcharge-admin-api/internal/application/merchant"
	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/internal/application/reference"
	"github.com/jhoicas/evcharge-admin-api/internal/application/reports"
	"github.com/jhoicas/evcharge-admin-api/internal/application/usermanagement"
	infracache "github.com/jhoicas/evcharge-admin-api/internal/infrastructure/cache"
	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/geocoding"
	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/evcharge-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/evcharge-admin-api/internal/interfaces/http"
	"github.com/jhoicas/evcharge-admin-api/pkg/config"
	"github.com/jhoicas/evcharge-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché de catálogos: Redis si REDIS_ADDR está definido, si no sin caché.
	var refCache ports.ReferenceCache = infracache.Nop{}
	if cfg.Redis.Addr != "" {
		client := infracache.NewRedisClient(cfg.Redis)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, catálogos sin caché")
		} else {
			refCache = infracache.NewRedisCache(client)
		}
	}

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de imágenes")
	}

	txRunner := postgres.NewTxRunner(pool)
	recorder := audit.NewRecorder(postgres.NewAuditRepository(pool), log)
	catalog := reference.NewCatalog(
		postgres.NewReferenceRepository(pool),
		refCache,
		time.Duration(cfg.Redis.TTLMinutes)*time.Minute,
	)
	geocoder := geocoding.NewGoogleClient(cfg.Geo, log)

	evseUC := evse.NewUseCase(txRunner, postgres.NewEVSERepository(pool), catalog, recorder)
	locationUC := location.NewUseCase(
		txRunner, postgres.NewLocationRepository(pool), geocoder, images,
		catalog, recorder, cfg.Upload.MaxFiles,
	)
	merchantUC := merchant.NewUseCase(merchant.Deps{
		TxRunner:    txRunner,
		CPORepo:     postgres.NewCPORepository(pool),
		RFIDRepo:    postgres.NewRFIDRepository(pool),
		TopupRepo:   postgres.NewTopupRepository(pool),
		PartnerRepo: postgres.NewPartnerRepository(pool),
		Geocoder:    geocoder,
		Mailer:      mail.NewSMTPMailer(cfg.SMTP),
		Recorder:    recorder,
	})
	// PDF: reporte del tablero
	dashboardUC := reports.NewDashboardUseCase(
		postgres.NewReportsRepository(pool),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
	)
	userMgmtUC := usermanagement.NewUseCase(postgres.NewUserManagementRepository(pool))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log, cfg.App.Env),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/admin/api/v1/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: httpRouter.APIPrefix,
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EV Charging Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EVSEUC:       evseUC,
		LocationUC:   locationUC,
		MerchantUC:   merchantUC,
		DashboardUC:  dashboardUC,
		UserMgmtUC:   userMgmtUC,
		Validator:    httpRouter.NewValidator(),
		JWTSecret:    cfg.JWT.Secret,
		BasicAuth:    cfg.BasicAuth,
		UploadDir:    cfg.Upload.Dir,
		UploadPrefix: "/images",
	})
	app.Use(httpRouter.NotFound)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

