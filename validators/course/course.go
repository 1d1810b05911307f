package courseValidator

import (
	"strconv"
	"strings"

	"trainhub/config"
	"trainhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam validates a positive integer route parameter and stores it
// under the given locals key
func parseIDParam(c *fiber.Ctx, key string) (bool, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	c.Locals(key, uint(id))
	return true, nil
}

// parsePagination normalizes page/limit query parameters against the
// configured bounds
func parsePagination(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", config.AppConfig.DefaultPageSize)
	if limit < 1 {
		limit = config.AppConfig.DefaultPageSize
	}
	if limit > config.AppConfig.MaxPageSize {
		limit = config.AppConfig.MaxPageSize
	}

	return page, limit
}

func GetModuleDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "moduleID"); !ok {
			return err
		}
		return c.Next()
	}
}

func GetTrainingDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "trainingID"); !ok {
			return err
		}
		return c.Next()
	}
}

func GetVideoDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "videoID"); !ok {
			return err
		}
		return c.Next()
	}
}

// ModuleList validates the module listing query parameters
func ModuleList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := parsePagination(c)
		c.Locals("page", page)
		c.Locals("limit", limit)
		c.Locals("category", strings.TrimSpace(c.Query("category")))
		return c.Next()
	}
}

// ProgressList validates the progress listing filters
func ProgressList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := parsePagination(c)
		c.Locals("page", page)
		c.Locals("limit", limit)

		completed := strings.ToLower(strings.TrimSpace(c.Query("completed")))
		if completed != "" && completed != "true" && completed != "false" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"completed": "completed must be true or false!",
			})
		}
		c.Locals("completedFilter", completed)

		for _, key := range []string{"training_id", "module_id"} {
			value := strings.TrimSpace(c.Query(key))
			if value == "" {
				continue
			}
			id, err := strconv.Atoi(value)
			if err != nil || id <= 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					key: key + " must be a positive integer!",
				})
			}
			c.Locals(key, uint(id))
		}

		return c.Next()
	}
}

// CertificateList validates the certificate listing query parameters
func CertificateList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := parsePagination(c)
		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
