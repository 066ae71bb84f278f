package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leave-service/internal/api/dto"
	"github.com/spec-kit/leave-service/internal/auth"
	"github.com/spec-kit/leave-service/internal/service"
	apperrors "github.com/spec-kit/leave-service/pkg/util"
)

// EmployeesHandler exposes the admin roster endpoint.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	users, err := h.service.List(c.Context(), claims)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewEmployeeResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
