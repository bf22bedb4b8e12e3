package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/caja-pos/internal/application/auth"
	"github.com/jhoicas/caja-pos/internal/application/backup"
	"github.com/jhoicas/caja-pos/internal/application/checkout"
	"github.com/jhoicas/caja-pos/internal/application/reports"
	"github.com/jhoicas/caja-pos/internal/application/usecase"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/infrastructure/localstore"
	httpRouter "github.com/jhoicas/caja-pos/internal/interfaces/http"
	"github.com/jhoicas/caja-pos/pkg/config"
	"github.com/jhoicas/caja-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio del almacén")
	}
	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	userRepo := localstore.NewUserRepository(store)
	productRepo := localstore.NewProductRepository(store)
	saleRepo := localstore.NewSaleRepository(store)
	settingsStore := localstore.NewSettingsStore(store)
	sessionStore := localstore.NewSessionStore(store)
	txRunner := localstore.NewTxRunner(store)

	if err := seedAdmin(userRepo); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario admin")
	}

	authUC := auth.NewUseCase(userRepo, sessionStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsStore)
	checkoutUC := checkout.NewUseCase(txRunner, productRepo)
	reportsUC := reports.NewUseCase(saleRepo, productRepo)
	backupUC := backup.NewUseCase(txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		ProductUC:  productUC,
		SettingsUC: settingsUC,
		CheckoutUC: checkoutUC,
		ReportsUC:  reportsUC,
		BackupUC:   backupUC,
		SaleRepo:   saleRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Apagado limpio: cerrar el listener y después el almacén (defer).
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.Shutdown()
	}()

	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}

// seedAdmin crea el usuario admin inicial cuando la colección está vacía,
// para poder entrar por primera vez. Cambiar la contraseña tras el primer login.
func seedAdmin(users *localstore.UserRepo) error {
	existing, err := users.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = users.Add(entity.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	})
	return err
}
