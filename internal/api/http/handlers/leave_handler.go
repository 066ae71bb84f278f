package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leave-service/internal/api/dto"
	"github.com/spec-kit/leave-service/internal/auth"
	"github.com/spec-kit/leave-service/internal/domain"
	"github.com/spec-kit/leave-service/internal/service"
	apperrors "github.com/spec-kit/leave-service/pkg/util"
)

// LeaveHandler manages leave request endpoints.
type LeaveHandler struct {
	service *service.LeaveService
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: leaveService}
}

// Create POST /leave-requests.
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.LeaveType == "" || req.StartDate == "" || req.EndDate == "" {
		return apperrors.NewValidationError("leave_type, start_date, end_date required", nil)
	}

	request, err := h.service.Submit(c.Context(), claims, service.SubmitInput{
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewLeaveRequestResponse(request)})
}

// Decide PATCH /leave-requests/:id.
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	var req dto.DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	decision := domain.LeaveStatus(strings.ToUpper(strings.TrimSpace(req.Decision)))

	request, err := h.service.Decide(c.Context(), claims, c.Params("id"), decision, req.DecisionNote)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewLeaveRequestResponse(request)})
}

// Cancel DELETE /leave-requests/:id. Owner only, PENDING only.
func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	if err := h.service.Cancel(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListAll GET /leave-requests.
func (h *LeaveHandler) ListAll(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	status, err := service.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return err
	}

	requests, err := h.service.ListAll(c.Context(), claims, status)
	if err != nil {
		return err
	}
	items := make([]dto.LeaveRequestWithOwnerResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewLeaveRequestWithOwnerResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListMine GET /leave-requests/mine.
func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	status, err := service.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return err
	}

	requests, err := h.service.ListMine(c.Context(), claims, status)
	if err != nil {
		return err
	}
	items := make([]dto.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewLeaveRequestResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// MyBalances GET /leave-balances/mine.
func (h *LeaveHandler) MyBalances(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	balances, err := h.service.MyBalances(c.Context(), claims)
	if err != nil {
		return err
	}
	out := make(map[string]int, len(balances))
	for leaveType, days := range balances {
		out[string(leaveType)] = days
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"leave_balances": out}})
}
