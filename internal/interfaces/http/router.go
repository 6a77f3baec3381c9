package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rzahabc/employee-management-app/internal/application/auth"
	"github.com/rzahabc/employee-management-app/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	EmployeeUC *usecase.EmployeeUseCase
	SectorUC   *usecase.SectorUseCase
	SettingsUC *usecase.SettingsUseCase
}

// Router registra las rutas de la API bajo el prefijo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Employee Management API", "status": "running"})
	})
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Auth (público; no hay sesiones ni tokens)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Users (administración de cuentas)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)
	users.Put("/:id/role", userHandler.UpdateRole)

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Sectors
	sectors := api.Group("/sectors")
	sectorHandler := NewSectorHandler(deps.SectorUC)
	sectors.Post("/", sectorHandler.Create)
	sectors.Get("/", sectorHandler.List)
	sectors.Put("/:id", sectorHandler.Update)
	sectors.Delete("/:id", sectorHandler.Delete)

	// Settings (singleton, sin id en la ruta)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)
}
