package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/analytics"
	"github.com/apelypenko/fueltrack-api/internal/application/auth"
	"github.com/apelypenko/fueltrack-api/internal/application/importing"
	"github.com/apelypenko/fueltrack-api/internal/application/report"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
	"github.com/apelypenko/fueltrack-api/internal/domain/access"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ClientUC      *usecase.ClientUseCase
	TransactionUC *usecase.TransactionUseCase
	UserUC        *usecase.UserUseCase
	SettingsUC    *usecase.SettingsUseCase
	InsightUC     *usecase.InsightUseCase
	DashboardUC   *analytics.DashboardUseCase
	ImportUC      *importing.ImportUseCase
	ExportUC      *report.ExportUseCase
	BackupUC      *report.BackupUseCase
	Store         repository.SnapshotStore
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, sesión protegida)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Clients: lectura para cualquier sesión, escritura con permiso.
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	manageClients := RequirePermission(deps.Store, access.CanManageClients)
	clients.Post("/", manageClients, clientHandler.Create)
	clients.Put("/:id", manageClients, clientHandler.Update)
	clients.Delete("/:id", manageClients, clientHandler.Delete)

	// Transactions: la proyección de costos se decide dentro del handler.
	txs := protected.Group("/transactions")
	txHandler := NewTransactionHandler(deps.TransactionUC, deps.Store)
	txs.Get("/", txHandler.List)
	manageTxs := RequirePermission(deps.Store, access.CanManageTransactions)
	txs.Post("/", manageTxs, txHandler.Create)
	txs.Put("/:id", manageTxs, txHandler.Update)
	txs.Delete("/:id", manageTxs, txHandler.Delete)

	// Users (solo con permiso de gestión de usuarios)
	users := protected.Group("/users", RequirePermission(deps.Store, access.CanManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Store)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Imports (escriben clientes y transacciones)
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC)
	imports.Post("/clients", manageClients, importHandler.Clients)
	imports.Post("/transactions", manageTxs, importHandler.Transactions)

	// Exports y respaldo (requieren permiso de exportación)
	reportHandler := NewReportHandler(deps.ExportUC, deps.BackupUC, deps.Store)
	canExport := RequirePermission(deps.Store, access.CanExport)
	exports := protected.Group("/exports", canExport)
	exports.Get("/transactions", reportHandler.TransactionsXLSX)
	exports.Get("/invoices/:clientId", reportHandler.ClientInvoicePDF)
	exports.Get("/consolidated", reportHandler.ConsolidatedPDF)
	protected.Get("/backup", canExport, reportHandler.Backup)
	protected.Post("/restore", canExport, reportHandler.Restore)

	// Insights IA
	insightHandler := NewInsightHandler(deps.InsightUC)
	protected.Post("/insights", insightHandler.Summarize)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/language", settingsHandler.Language)
	settings.Put("/language", settingsHandler.UpdateLanguage)
}
