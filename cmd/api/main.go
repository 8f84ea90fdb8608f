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

	appanalytics "github.com/apelypenko/fueltrack-api/internal/application/analytics"
	"github.com/apelypenko/fueltrack-api/internal/application/auth"
	"github.com/apelypenko/fueltrack-api/internal/application/importing"
	"github.com/apelypenko/fueltrack-api/internal/application/ports"
	"github.com/apelypenko/fueltrack-api/internal/application/report"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
	infraai "github.com/apelypenko/fueltrack-api/internal/infrastructure/ai"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/memory"
	infrapdf "github.com/apelypenko/fueltrack-api/internal/infrastructure/pdf"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/postgres"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/apelypenko/fueltrack-api/internal/interfaces/http"
	"github.com/apelypenko/fueltrack-api/pkg/config"
	"github.com/apelypenko/fueltrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén de documentos: PostgreSQL en producción, memoria para
	// desarrollo local sin base de datos.
	var store repository.SnapshotStore
	switch cfg.Store.Driver {
	case "memory":
		store = memory.NewSnapshotStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		pgStore := postgres.NewSnapshotStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de documentos")
		}
		store = pgStore
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.PrimaryAdmin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err := authUC.EnsurePrimaryAdmin(); err != nil {
		log.Fatal().Err(err).Msg("sembrar administrador primario")
	}

	clientUC := usecase.NewClientUseCase(store)
	transactionUC := usecase.NewTransactionUseCase(store)
	userUC := usecase.NewUserUseCase(store)
	settingsUC := usecase.NewSettingsUseCase(store)
	dashboardUC := appanalytics.NewDashboardUseCase(store)
	importUC := importing.NewImportUseCase(store, spreadsheet.NewReader())
	exportUC := report.NewExportUseCase(store, spreadsheet.NewWriter(), infrapdf.NewInvoiceGenerator())
	backupUC := report.NewBackupUseCase(store, authUC)

	// Proveedor de insights según configuración.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	insightUC := usecase.NewInsightUseCase(store, llm)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // planillas y respaldos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FuelTrack Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      clientUC,
		TransactionUC: transactionUC,
		UserUC:        userUC,
		SettingsUC:    settingsUC,
		InsightUC:     insightUC,
		DashboardUC:   dashboardUC,
		ImportUC:      importUC,
		ExportUC:      exportUC,
		BackupUC:      backupUC,
		Store:         store,
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
