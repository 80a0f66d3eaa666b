package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gardops/gardops-api/internal/application/asignacion"
	"github.com/gardops/gardops-api/internal/application/auth"
	"github.com/gardops/gardops-api/internal/application/usecase"
	infrapdf "github.com/gardops/gardops-api/internal/infrastructure/pdf"
	"github.com/gardops/gardops-api/internal/infrastructure/postgres"
	"github.com/gardops/gardops-api/internal/infrastructure/storage"
	httpRouter "github.com/gardops/gardops-api/internal/interfaces/http"
	"github.com/gardops/gardops-api/pkg/config"
	"github.com/gardops/gardops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	instalacionRepo := postgres.NewInstalacionRepository(pool)
	guardiaRepo := postgres.NewGuardiaRepository(pool)
	puestoRepo := postgres.NewPuestoRepository(pool)
	historialRepo := postgres.NewHistorialRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)
	tipoDocRepo := postgres.NewTipoDocumentoRepository(pool)
	plantillaRepo := postgres.NewPlantillaRepository(pool)
	pagoExtraRepo := postgres.NewPagoExtraRepository(pool)
	kpiRepo := postgres.NewKPIRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store, err := storage.NewLocalStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("directorio de documentos")
	}
	pdfGenerator := infrapdf.NewMarotoGenerator()

	clienteUC := usecase.NewClienteUseCase(clienteRepo, instalacionRepo)
	instalacionUC := usecase.NewInstalacionUseCase(instalacionRepo, clienteRepo, kpiRepo)
	guardiaUC := usecase.NewGuardiaUseCase(guardiaRepo)
	documentoUC := usecase.NewDocumentoUseCase(documentoRepo, tipoDocRepo, store)
	plantillaUC := usecase.NewPlantillaUseCase(plantillaRepo, guardiaRepo, clienteRepo, instalacionRepo, pdfGenerator)
	pagoExtraUC := usecase.NewPagoExtraUseCase(pagoExtraRepo, guardiaRepo)
	dashboardUC := usecase.NewDashboardUseCase(kpiRepo)
	asignacionSvc := asignacion.NewServicio(puestoRepo, guardiaRepo, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GardOps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:     clienteUC,
		InstalacionUC: instalacionUC,
		GuardiaUC:     guardiaUC,
		Asignacion:    asignacionSvc,
		HistorialRepo: historialRepo,
		DocumentoUC:   documentoUC,
		PlantillaUC:   plantillaUC,
		PagoExtraUC:   pagoExtraUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

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
