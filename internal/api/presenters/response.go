package presenters

import (
	"errors"
	"log"

	"restoboard/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse logs the raw error and exposes its text only when it is safe
// for API consumers: domain errors and input validation errors. Driver and
// infrastructure errors stay in the log.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		log.Printf("%s: %v", message, err)

		var domainErr *domain.Error
		var validationErrs validator.ValidationErrors
		if errors.As(err, &domainErr) || errors.As(err, &validationErrs) {
			res.Error = err.Error()
		}
	}
	return c.Status(code).JSON(res)
}
