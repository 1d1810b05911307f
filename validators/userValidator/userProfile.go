package userValidator

import (
	"strings"

	"trainhub/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProfileRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.FirstName)) > 100 {
			errors["first_name"] = "First name must be at most 100 characters long!"
		}
		if len(strings.TrimSpace(reqData.LastName)) > 100 {
			errors["last_name"] = "Last name must be at most 100 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
