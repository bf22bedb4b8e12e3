package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos/internal/application/auth"
	"github.com/jhoicas/caja-pos/internal/application/backup"
	"github.com/jhoicas/caja-pos/internal/application/checkout"
	"github.com/jhoicas/caja-pos/internal/application/reports"
	"github.com/jhoicas/caja-pos/internal/application/usecase"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	SettingsUC *usecase.SettingsUseCase
	CheckoutUC *checkout.UseCase
	ReportsUC  *reports.UseCase
	BackupUC   *backup.UseCase
	SaleRepo   repository.SaleRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; logout y me requieren token
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products: lectura para cualquier rol, mutaciones solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/alerts", productHandler.Alerts)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Patch("/:id/stock", adminOnly, productHandler.UpdateStock)

	// Sales: registrar y consultar (cualquier rol autenticado)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.SaleRepo)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)
	sales.Get("/range", saleHandler.Range)
	sales.Get("/daily", saleHandler.Daily)
	sales.Patch("/:id/receipt-printed", saleHandler.MarkReceiptPrinted)

	// Reports (solo admin)
	reportHandler := NewReportHandler(deps.ReportsUC)
	protected.Get("/reports", adminOnly, reportHandler.Build)

	// Settings (solo admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", adminOnly, settingsHandler.Get)
	protected.Put("/settings", adminOnly, settingsHandler.Save)

	// Backup (solo admin)
	backupHandler := NewBackupHandler(deps.BackupUC)
	protected.Get("/backup", adminOnly, backupHandler.Export)
	protected.Post("/backup", adminOnly, backupHandler.Import)
}
