package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/catalog"
	"github.com/jhoicas/Gestion-api/internal/application/notify"
	"github.com/jhoicas/Gestion-api/internal/application/orders"
	"github.com/jhoicas/Gestion-api/internal/application/party"
	"github.com/jhoicas/Gestion-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CustomerUC     *party.CustomerUseCase
	EmployeeUC     *party.EmployeeUseCase
	ProviderUC     *party.ProviderUseCase
	CatalogUC      *catalog.CatalogUseCase
	OrderUC        *orders.OrderUseCase
	DeliverableUC  *orders.DeliverableUseCase
	InvoiceUC      *billing.InvoiceUseCase
	PaymentUC      *billing.PaymentUseCase
	PDFUC          *billing.PDFUseCase
	DashboardUC    *analytics.DashboardUseCase
	NotificationUC *notify.NotificationUseCase
	FormResponseUC *notify.FormResponseUseCase
	AuditRecorder  *audit.Recorder
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y formulario de contacto (públicos)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	formHandler := NewFormResponseHandler(deps.FormResponseUC)
	api.Post("/form-responses", formHandler.Create)

	// Rutas protegidas (requieren Bearer Token o cookie)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Administración de cuentas
	accounts := protected.Group("/accounts", RequirePermission(permission.AccountsManage))
	accounts.Get("/", authHandler.ListAccounts)
	accounts.Put("/:id", authHandler.UpdateAccount)
	accounts.Delete("/:id", authHandler.DeleteAccount)

	// Terceros: clientes, empleados, cargos y proveedores
	partiesRead := RequirePermission(permission.PartiesRead)
	partiesWrite := RequirePermission(permission.PartiesWrite)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", partiesWrite, customerHandler.Create)
	customers.Get("/", partiesRead, customerHandler.List)
	customers.Get("/:id", partiesRead, customerHandler.GetByID)
	customers.Put("/:id", partiesWrite, customerHandler.Update)
	customers.Delete("/:id", partiesWrite, customerHandler.Delete)

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", partiesWrite, employeeHandler.Create)
	employees.Get("/", partiesRead, employeeHandler.List)
	employees.Get("/:id", partiesRead, employeeHandler.GetByID)
	employees.Put("/:id", partiesWrite, employeeHandler.Update)
	employees.Delete("/:id", partiesWrite, employeeHandler.Delete)

	positions := protected.Group("/job-positions")
	positions.Post("/", partiesWrite, employeeHandler.CreatePosition)
	positions.Get("/", partiesRead, employeeHandler.ListPositions)
	positions.Delete("/:id", partiesWrite, employeeHandler.DeletePosition)

	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", partiesWrite, providerHandler.Create)
	providers.Get("/", partiesRead, providerHandler.List)
	providers.Get("/:id", partiesRead, providerHandler.GetByID)
	providers.Put("/:id", partiesWrite, providerHandler.Update)
	providers.Delete("/:id", partiesWrite, providerHandler.Delete)

	// Catálogo: categorías, servicios, precios y campañas
	catalogRead := RequirePermission(permission.CatalogRead)
	catalogWrite := RequirePermission(permission.CatalogWrite)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)

	categories := protected.Group("/service-categories")
	categories.Post("/", catalogWrite, catalogHandler.CreateCategory)
	categories.Get("/", catalogRead, catalogHandler.ListCategories)
	categories.Delete("/:id", catalogWrite, catalogHandler.DeleteCategory)

	services := protected.Group("/services")
	services.Post("/", catalogWrite, catalogHandler.CreateService)
	services.Get("/", catalogRead, catalogHandler.ListServices)
	services.Get("/:id", catalogRead, catalogHandler.GetService)
	services.Put("/:id", catalogWrite, catalogHandler.UpdateService)
	services.Delete("/:id", catalogWrite, catalogHandler.DeleteService)
	services.Post("/:id/features", catalogWrite, catalogHandler.AddFeature)
	services.Delete("/:id/features/:featureID", catalogWrite, catalogHandler.RemoveFeature)
	services.Post("/:id/prices", catalogWrite, catalogHandler.AddPrice)
	services.Get("/:id/prices", catalogRead, catalogHandler.ListPrices)
	services.Get("/:id/current-price", catalogRead, catalogHandler.GetCurrentPrice)

	campaigns := protected.Group("/campaigns")
	campaigns.Post("/", catalogWrite, catalogHandler.CreateCampaign)
	campaigns.Get("/", catalogRead, catalogHandler.ListCampaigns)
	campaigns.Get("/:id", catalogRead, catalogHandler.GetCampaign)
	campaigns.Delete("/:id", catalogWrite, catalogHandler.DeleteCampaign)
	campaigns.Post("/:id/services/:serviceID", catalogWrite, catalogHandler.AddCampaignService)
	campaigns.Delete("/:id/services/:serviceID", catalogWrite, catalogHandler.RemoveCampaignService)

	// Pedidos y entregables
	ordersRead := RequirePermission(permission.OrdersRead, permission.OrdersReadOwn)
	ordersWrite := RequirePermission(permission.OrdersWrite)
	orderHandler := NewOrderHandler(deps.OrderUC)

	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", ordersWrite, orderHandler.Create)
	ordersGroup.Get("/", ordersRead, orderHandler.List)
	ordersGroup.Get("/:id", ordersRead, orderHandler.GetByID)
	ordersGroup.Put("/:id", ordersWrite, orderHandler.Update)
	ordersGroup.Delete("/:id", ordersWrite, orderHandler.Delete)
	ordersGroup.Post("/:id/items", ordersWrite, orderHandler.AddItem)

	deliverableHandler := NewDeliverableHandler(deps.DeliverableUC)
	ordersGroup.Get("/:id/deliverables", ordersRead, deliverableHandler.ListByOrder)

	orderItems := protected.Group("/order-items")
	orderItems.Put("/:id", ordersWrite, orderHandler.UpdateItem)
	orderItems.Delete("/:id", ordersWrite, orderHandler.DeleteItem)

	deliverables := protected.Group("/deliverables")
	deliverables.Post("/", ordersWrite, deliverableHandler.Create)
	deliverables.Get("/", RequirePermission(permission.OrdersRead), deliverableHandler.List)
	deliverables.Get("/:id", RequirePermission(permission.OrdersRead), deliverableHandler.GetByID)
	deliverables.Put("/:id", ordersWrite, deliverableHandler.Update)
	deliverables.Delete("/:id", ordersWrite, deliverableHandler.Delete)

	// Facturación y pagos
	billingRead := RequirePermission(permission.BillingRead, permission.BillingReadOwn)
	billingWrite := RequirePermission(permission.BillingWrite)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)

	invoices := protected.Group("/invoices")
	invoices.Post("/", billingWrite, invoiceHandler.Create)
	invoices.Get("/", billingRead, invoiceHandler.List)
	invoices.Get("/:id", billingRead, invoiceHandler.GetByID)
	invoices.Post("/:id/send", billingWrite, invoiceHandler.Send)
	invoices.Post("/:id/cancel", billingWrite, invoiceHandler.Cancel)
	invoices.Post("/:id/void", billingWrite, invoiceHandler.Void)
	invoices.Post("/:id/refresh", billingWrite, invoiceHandler.Refresh)
	invoices.Get("/:id/pdf", billingRead, invoiceHandler.PDF)
	invoices.Get("/:id/payments", RequirePermission(permission.BillingRead), paymentHandler.ListByInvoice)

	payments := protected.Group("/payments")
	payments.Post("/", billingWrite, paymentHandler.Create)
	payments.Put("/:id", billingWrite, paymentHandler.Update)
	payments.Delete("/:id", billingWrite, paymentHandler.Delete)

	protected.Get("/payment-methods", RequirePermission(permission.BillingRead), paymentHandler.ListMethods)
	protected.Get("/transaction-types", RequirePermission(permission.BillingRead), paymentHandler.ListTransactionTypes)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequirePermission(permission.DashboardView), dashboardHandler.Summary)

	// Notificaciones (cualquier cuenta autenticada ve las suyas)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Formulario de contacto (lectura y borrado protegidos)
	protected.Get("/form-responses", partiesRead, formHandler.List)
	protected.Delete("/form-responses/:id", partiesWrite, formHandler.Delete)

	// Auditoría
	auditHandler := NewAuditLogHandler(deps.AuditRecorder)
	protected.Get("/audit-logs", RequirePermission(permission.AuditRead), auditHandler.List)
}
