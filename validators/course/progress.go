package courseValidator

import (
	"trainhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ProgressRequest is the progress report payload. WatchedSeconds is a
// pointer so a missing field is distinguishable from an explicit zero.
type ProgressRequest struct {
	WatchedSeconds *int `json:"watched_seconds" validate:"required,min=0"`
	Completed      bool `json:"completed"`
}

// UpdateVideoProgress validates the video ID parameter and the progress
// report body
func UpdateVideoProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "videoID"); !ok {
			return err
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "WatchedSeconds":
					if fieldErr.Tag() == "required" {
						errors["watched_seconds"] = "watched_seconds is required!"
					} else {
						errors["watched_seconds"] = "watched_seconds must not be negative!"
					}
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
