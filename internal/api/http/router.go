package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leave-service/internal/api/http/handlers"
	"github.com/spec-kit/leave-service/internal/auth"
	"github.com/spec-kit/leave-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Leave          *handlers.LeaveHandler
	Employees      *handlers.EmployeesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	leave := app.Group("/leave-requests", cfg.AuthMiddleware.Handle)
	leave.Post("", auth.RequireRole(domain.RoleEmployee), cfg.Leave.Create)
	leave.Get("", auth.RequireRole(domain.RoleAdmin), cfg.Leave.ListAll)
	leave.Get("/mine", cfg.Leave.ListMine)
	leave.Patch("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Leave.Decide)
	leave.Delete("/:id", cfg.Leave.Cancel)

	app.Get("/leave-balances/mine", cfg.AuthMiddleware.Handle, cfg.Leave.MyBalances)

	app.Get("/employees", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Employees.List)
}
