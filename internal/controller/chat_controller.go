package controller

import (
	"github.com/gofiber/fiber/v2"

	"course-advisor-be/internal/constant"
	"course-advisor-be/internal/dto"
	"course-advisor-be/internal/pkg/serverutils"
	"course-advisor-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	ListCategories(ctx *fiber.Ctx) error
	GetCategoryDetails(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Chat)
	h.Get("/categories", c.ListCategories)
	h.Get("/categories/details", c.GetCategoryDetails)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sessionID := ctx.Get(constant.SessionIDHeader)

	res, err := c.service.Chat(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) ListCategories(ctx *fiber.Ctx) error {
	res := c.service.ListCategories(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *chatController) GetCategoryDetails(ctx *fiber.Ctx) error {
	res := c.service.GetCategoryDetails(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get category details", res))
}
