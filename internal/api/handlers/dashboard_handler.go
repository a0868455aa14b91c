package handlers

import (
	"restoboard/domain"
	"restoboard/internal/api/presenters"
	"restoboard/pkg/dashboard"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetDashboard(c *fiber.Ctx) error
		SelectRestaurant(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
		validator        *validator.Validate
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService, validator *validator.Validate) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
		validator:        validator,
	}
}

func (h *dashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.dashboardService.Refresh(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) SelectRestaurant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SelectRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	res, err := h.dashboardService.SelectRestaurant(c.Context(), userID, req.RestaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
