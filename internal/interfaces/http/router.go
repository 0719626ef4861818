package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// routePermissions es la tabla fija de roles por grupo de rutas. La clave
// ":write" cubre create/update/delete cuando difiere del permiso de lectura.
var routePermissions = map[string][]string{
	"customers":       {entity.RoleAdmin, entity.RoleStaff},
	"inventory":       {entity.RoleAdmin, entity.RoleStaff},
	"sales":           {entity.RoleAdmin, entity.RoleStaff},
	"sales:delete":    {entity.RoleAdmin},
	"deliveries":      {entity.RoleAdmin, entity.RoleStaff},
	"suppliers":       {entity.RoleAdmin, entity.RoleStaff},
	"suppliers:write": {entity.RoleAdmin},
	"settings":        {entity.RoleAdmin},
	"expenses":        {entity.RoleAdmin},
	"dashboard":       {entity.RoleAdmin},
	"uploads":         {entity.RoleAdmin, entity.RoleStaff},
}

func perm(key string) fiber.Handler {
	return RequireRole(routePermissions[key]...)
}

// RouterDeps agrupa los handlers y el middleware de autenticación del API.
type RouterDeps struct {
	Auth      fiber.Handler
	AuthH     *AuthHandler
	CustomerH *CustomerHandler
	ProductH  *ProductHandler
	SaleH     *SaleHandler
	DeliveryH *DeliveryHandler
	SupplierH *SupplierHandler
	SettingsH *SettingsHandler
	ExpenseH  *ExpenseHandler
	ContactH  *ContactHandler
	UploadH   *UploadHandler
}

// Router monta todas las rutas bajo el prefijo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", deps.AuthH.Signup)
	authGroup.Post("/signin", deps.AuthH.Signin)
	authGroup.Post("/request-password-reset", deps.AuthH.ForgotPassword)
	authGroup.Post("/reset-password", deps.AuthH.ResetPassword)
	authGroup.Post("/logout", deps.Auth, deps.AuthH.Logout)

	api.Post("/contact", deps.ContactH.Submit)

	customers := api.Group("/customers", deps.Auth, perm("customers"))
	customers.Get("/", deps.CustomerH.List)
	customers.Post("/", deps.CustomerH.Create)
	customers.Get("/overdue", deps.CustomerH.ListOverdue)
	customers.Get("/:id", deps.CustomerH.GetByID)
	customers.Put("/:id", deps.CustomerH.Update)
	customers.Delete("/:id", deps.CustomerH.Delete)

	inventory := api.Group("/inventory", deps.Auth, perm("inventory"))
	inventory.Get("/products", deps.ProductH.List)
	inventory.Post("/products", deps.ProductH.Create)
	inventory.Get("/low-stock", deps.ProductH.LowStock)
	inventory.Get("/out-of-stock", deps.ProductH.OutOfStock)
	inventory.Get("/expired", deps.ProductH.Expired)
	inventory.Get("/notifications", deps.ProductH.Notifications)
	inventory.Get("/products/:id", deps.ProductH.GetByID)
	inventory.Put("/products/:id", deps.ProductH.Update)
	inventory.Delete("/products/:id", deps.ProductH.Delete)

	salesGroup := api.Group("/sales", deps.Auth, perm("sales"))
	salesGroup.Get("/", deps.SaleH.List)
	salesGroup.Post("/", deps.SaleH.Create)
	salesGroup.Get("/summary/kpis", deps.SaleH.Summary)
	salesGroup.Get("/analytics", deps.SaleH.Analytics)
	salesGroup.Get("/top-customers", deps.SaleH.TopCustomers)
	salesGroup.Get("/top-products", deps.SaleH.TopProducts)
	salesGroup.Get("/pending-orders", deps.SaleH.PendingOrders)
	salesGroup.Put("/:id", deps.SaleH.Update)
	salesGroup.Patch("/:id/complete", deps.SaleH.Complete)
	salesGroup.Delete("/:id", perm("sales:delete"), deps.SaleH.Delete)

	deliveries := api.Group("/deliveries", deps.Auth, perm("deliveries"))
	deliveries.Get("/", deps.DeliveryH.List)
	deliveries.Post("/", deps.DeliveryH.Create)
	deliveries.Get("/:id", deps.DeliveryH.GetByID)
	deliveries.Put("/:id", deps.DeliveryH.Update)
	deliveries.Delete("/:id", deps.DeliveryH.Delete)

	suppliers := api.Group("/suppliers", deps.Auth, perm("suppliers"))
	suppliers.Get("/", deps.SupplierH.List)
	suppliers.Post("/", perm("suppliers:write"), deps.SupplierH.Create)
	suppliers.Get("/top-rated", deps.SupplierH.TopRated)
	suppliers.Get("/:id", deps.SupplierH.GetByID)
	suppliers.Put("/:id", perm("suppliers:write"), deps.SupplierH.Update)
	suppliers.Delete("/:id", perm("suppliers:write"), deps.SupplierH.Delete)

	settings := api.Group("/settings", deps.Auth, perm("settings"))
	settings.Get("/", deps.SettingsH.Get)
	settings.Post("/", deps.SettingsH.Upsert)

	expenses := api.Group("/expenses", deps.Auth, perm("expenses"))
	expenses.Get("/", deps.ExpenseH.List)
	expenses.Post("/", deps.ExpenseH.Create)

	api.Get("/dashboard/summary", deps.Auth, perm("dashboard"), deps.ExpenseH.DashboardSummary)

	api.Post("/uploads", deps.Auth, perm("uploads"), deps.UploadH.Upload)

	// Cualquier ruta no registrada responde JSON, nunca HTML.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("ruta no encontrada"))
	})
}
