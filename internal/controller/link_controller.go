package controller

import (
	"heyrube-be/internal/dto"
	"heyrube-be/internal/pkg/serverutils"
	"heyrube-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILinkController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Graph(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type linkController struct {
	linkService service.ILinkService
}

func NewLinkController(linkService service.ILinkService) ILinkController {
	return &linkController{
		linkService: linkService,
	}
}

func (c *linkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/link/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("graph", c.Graph)
	h.Get("search", c.Search)
	h.Post("", c.Create)
	h.Delete("", c.Delete)
	h.Get(":nodeType/:nodeId", c.List)
}

func (c *linkController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.linkService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(serverutils.SuccessResponse("Success create link", res))
}

func (c *linkController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	nodeType := ctx.Params("nodeType")
	if nodeType != "entry" && nodeType != "journal" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "node type must be entry or journal")
	}
	nodeId, _ := uuid.Parse(ctx.Params("nodeId"))

	res, err := c.linkService.List(ctx.Context(), userId, nodeType, nodeId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get links", res))
}

func (c *linkController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.DeleteLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.linkService.Delete(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete link", nil))
}

func (c *linkController) Graph(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.linkService.Graph(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get graph", res))
}

func (c *linkController) Search(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "query is required")
	}
	limit := ctx.QueryInt("limit")

	res, err := c.linkService.Search(ctx.Context(), userId, query, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search nodes", res))
}
