package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/negocio-api/internal/application/analytics"
	"github.com/tu-usuario/negocio-api/internal/application/auth"
	"github.com/tu-usuario/negocio-api/internal/application/sales"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
	"github.com/tu-usuario/negocio-api/internal/infrastructure/mongodb"
	"github.com/tu-usuario/negocio-api/internal/infrastructure/smtp"
	httpapi "github.com/tu-usuario/negocio-api/internal/interfaces/http"
	"github.com/tu-usuario/negocio-api/pkg/config"
	"github.com/tu-usuario/negocio-api/pkg/logger"
	"github.com/tu-usuario/negocio-api/pkg/storage"
)

const maxBodySize = 20 * 1024 * 1024 // tope de subida de archivos

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	deliveryRepo := mongodb.NewDeliveryRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	expenseRepo := mongodb.NewExpenseRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	mailer := smtp.NewMailer(cfg.SMTP)
	disk := storage.NewLocalDisk(cfg.Storage.Root)

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := sales.NewSaleUseCase(saleRepo)
	saleReportsUC := sales.NewReportsUseCase(saleRepo)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, mailer, log.Zerolog())
	inventoryReportsUC := analytics.NewInventoryReportsUseCase(productRepo)
	dashboardUC := analytics.NewDashboardUseCase(saleRepo, expenseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    maxBodySize,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpapi.NewErrorHandler(log.Zerolog(), cfg.App.Env),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpapi.Router(app, httpapi.RouterDeps{
		Auth:      httpapi.AuthMiddleware(cfg.JWT.Secret, userRepo),
		AuthH:     httpapi.NewAuthHandler(authUC),
		CustomerH: httpapi.NewCustomerHandler(customerUC),
		ProductH:  httpapi.NewProductHandler(productUC, inventoryReportsUC),
		SaleH:     httpapi.NewSaleHandler(saleUC, saleReportsUC),
		DeliveryH: httpapi.NewDeliveryHandler(deliveryUC),
		SupplierH: httpapi.NewSupplierHandler(supplierUC),
		SettingsH: httpapi.NewSettingsHandler(settingsUC),
		ExpenseH:  httpapi.NewExpenseHandler(expenseUC, dashboardUC),
		ContactH:  httpapi.NewContactHandler(contactUC),
		UploadH:   httpapi.NewUploadHandler(disk),
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
