package controller

import (
	"github.com/gofiber/fiber/v2"

	"course-advisor-be/internal/dto"
	"course-advisor-be/internal/service"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	service service.IChatService
}

func NewHealthController(service service.IChatService) IHealthController {
	return &healthController{service: service}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health/v1", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:         "ok",
		ActiveSessions: c.service.ActiveSessionCount(),
	})
}
