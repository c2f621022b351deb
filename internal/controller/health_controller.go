package controller

import (
	"notes-app-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	healthService service.IHealthService
}

func NewHealthController(healthService service.IHealthService) IHealthController {
	return &healthController{healthService: healthService}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	res, err := c.healthService.Check(ctx.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
	}
	return ctx.JSON(res)
}
