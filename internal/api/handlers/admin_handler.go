package handlers

import (
	"restoboard/domain"
	"restoboard/internal/api/presenters"
	"restoboard/pkg/dashboard"
	"restoboard/pkg/feedback"
	"restoboard/pkg/restaurant"
	"restoboard/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetUsers(c *fiber.Ctx) error
		DeleteUserProfile(c *fiber.Ctx) error
		GetRestaurants(c *fiber.Ctx) error
		UpdateRestaurant(c *fiber.Ctx) error
		DeleteRestaurant(c *fiber.Ctx) error
		GetAllFeedback(c *fiber.Ctx) error
		RespondFeedback(c *fiber.Ctx) error
		GetStatistics(c *fiber.Ctx) error
	}

	adminHandler struct {
		userService       user.UserService
		restaurantService restaurant.RestaurantService
		feedbackService   feedback.FeedbackService
		dashboardService  dashboard.DashboardService
		validator         *validator.Validate
	}
)

func NewAdminHandler(
	userService user.UserService,
	restaurantService restaurant.RestaurantService,
	feedbackService feedback.FeedbackService,
	dashboardService dashboard.DashboardService,
	validator *validator.Validate,
) AdminHandler {
	return &adminHandler{
		userService:       userService,
		restaurantService: restaurantService,
		feedbackService:   feedbackService,
		dashboardService:  dashboardService,
		validator:         validator,
	}
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) DeleteUserProfile(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.userService.DeleteUserProfile(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProfile, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProfile)
}

func (h *adminHandler) GetRestaurants(c *fiber.Ctx) error {
	res, err := h.restaurantService.GetAllRestaurants(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *adminHandler) UpdateRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	req := new(domain.UpdateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRestaurant, err)
	}

	res, err := h.restaurantService.UpdateRestaurant(c.Context(), restaurantID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRestaurant)
}

func (h *adminHandler) DeleteRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")

	if err := h.restaurantService.DeleteRestaurant(c.Context(), restaurantID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRestaurant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRestaurant)
}

func (h *adminHandler) GetAllFeedback(c *fiber.Ctx) error {
	res, err := h.feedbackService.GetAllFeedback(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeedback)
}

func (h *adminHandler) RespondFeedback(c *fiber.Ctx) error {
	feedbackID := c.Params("id")
	req := new(domain.RespondFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRespondFeedback, err)
	}

	res, err := h.feedbackService.RespondFeedback(c.Context(), feedbackID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRespondFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRespondFeedback)
}

// GetStatistics always answers 200: the statistics payload carries its own
// error annotation when the counts could not be fetched.
func (h *adminHandler) GetStatistics(c *fiber.Ctx) error {
	res := h.dashboardService.Statistics(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}
