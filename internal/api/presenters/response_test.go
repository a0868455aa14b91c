package presenters

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"restoboard/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, handler fiber.Handler) Response {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorResponseExposesDomainErrors(t *testing.T) {
	body := performRequest(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfile, domain.ErrUserNotFound)
	})

	assert.Equal(t, "error", body.Status)
	assert.Equal(t, domain.MessageFailedGetProfile, body.Message)
	assert.Equal(t, domain.ErrUserNotFound.Error(), body.Error)
}

func TestErrorResponseHidesInternalErrors(t *testing.T) {
	body := performRequest(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfile,
			errors.New("pq: password authentication failed for user \"restoboard\""))
	})

	assert.Equal(t, "error", body.Status)
	assert.Equal(t, domain.MessageFailedGetProfile, body.Message)
	assert.Empty(t, body.Error)
}
