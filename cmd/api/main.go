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
	appanalytics "github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/catalog"
	"github.com/jhoicas/Gestion-api/internal/application/notify"
	"github.com/jhoicas/Gestion-api/internal/application/orders"
	"github.com/jhoicas/Gestion-api/internal/application/party"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	accountRepo := postgres.NewAccountRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	positionRepo := postgres.NewJobPositionRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	categoryRepo := postgres.NewServiceCategoryRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	deliverableRepo := postgres.NewDeliverableRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	txTypeRepo := postgres.NewTransactionTypeRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	auditLogRepo := postgres.NewAuditLogRepository(pool)
	formRepo := postgres.NewFormResponseRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	orderTxRunner := postgres.NewOrderTxRunner(pool)
	billingTxRunner := postgres.NewBillingTxRunner(pool)

	// Casos de uso
	auditRec := audit.NewRecorder(auditLogRepo, log)
	authUC := auth.NewAuthUseCase(accountRepo, customerRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		ExpMinutes:        cfg.JWT.Expiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		Issuer:            cfg.JWT.Issuer,
	})
	customerUC := party.NewCustomerUseCase(customerRepo)
	employeeUC := party.NewEmployeeUseCase(employeeRepo, positionRepo)
	providerUC := party.NewProviderUseCase(providerRepo)
	catalogUC := catalog.NewCatalogUseCase(categoryRepo, serviceRepo, priceRepo, campaignRepo, cfg.Billing.DefaultCurrency)
	orderUC := orders.NewOrderUseCase(
		orderTxRunner, orderRepo, customerRepo, employeeRepo,
		serviceRepo, priceRepo, deliverableRepo, auditRec,
		cfg.Billing.DefaultCurrency,
	)
	deliverableUC := orders.NewDeliverableUseCase(deliverableRepo, orderRepo, employeeRepo, providerRepo)
	invoiceUC := billing.NewInvoiceUseCase(
		billingTxRunner, invoiceRepo, orderRepo, customerRepo,
		auditRec, cfg.Billing.InvoiceDueDays,
	)
	paymentUC := billing.NewPaymentUseCase(
		billingTxRunner, paymentRepo, invoiceRepo, orderRepo, customerRepo,
		methodRepo, txTypeRepo, notificationRepo, auditRec,
		cfg.Billing.DefaultCurrency,
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, orderRepo, customerRepo, serviceRepo, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	notificationUC := notify.NewNotificationUseCase(notificationRepo)
	formResponseUC := notify.NewFormResponseUseCase(formRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CustomerUC:     customerUC,
		EmployeeUC:     employeeUC,
		ProviderUC:     providerUC,
		CatalogUC:      catalogUC,
		OrderUC:        orderUC,
		DeliverableUC:  deliverableUC,
		InvoiceUC:      invoiceUC,
		PaymentUC:      paymentUC,
		PDFUC:          pdfUC,
		DashboardUC:    dashboardUC,
		NotificationUC: notificationUC,
		FormResponseUC: formResponseUC,
		AuditRecorder:  auditRec,
		JWTSecret:      cfg.JWT.Secret,
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

// mountSwagger publica la UI en /docs si el archivo de especificación existe.
// swagger.New entra en pánico cuando el archivo no está; sin él el server
// arranca igual y solo se pierde la UI.
func mountSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("especificación swagger no encontrada, UI /docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Gestión Pro API",
	}))
}
