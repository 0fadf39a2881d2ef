package controller

import (
	"heyrube-be/internal/dto"
	"heyrube-be/internal/pkg/serverutils"
	"heyrube-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEntryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Pin(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
}

type entryController struct {
	entryService service.IEntryService
}

func NewEntryController(entryService service.IEntryService) IEntryController {
	return &entryController{
		entryService: entryService,
	}
}

func (c *entryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/journal/v1/:journalId/entries")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	// Registered before :entryId so "reorder" is not taken for an id.
	h.Put("reorder", c.Reorder)
	h.Put(":entryId/pin", c.Pin)
	h.Put(":entryId", c.Update)
	h.Delete(":entryId", c.Delete)
}

func (c *entryController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	journalId, _ := uuid.Parse(ctx.Params("journalId"))

	res, err := c.entryService.List(ctx.Context(), userId, journalId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get entries", res))
}

func (c *entryController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	journalId, _ := uuid.Parse(ctx.Params("journalId"))

	var req dto.CreateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Create(ctx.Context(), userId, journalId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create entry", res))
}

func (c *entryController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	journalId, _ := uuid.Parse(ctx.Params("journalId"))
	entryId, _ := uuid.Parse(ctx.Params("entryId"))

	var req dto.UpdateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = entryId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Update(ctx.Context(), userId, journalId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update entry", res))
}

func (c *entryController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	journalId, _ := uuid.Parse(ctx.Params("journalId"))
	entryId, _ := uuid.Parse(ctx.Params("entryId"))

	if err := c.entryService.Delete(ctx.Context(), userId, journalId, entryId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete entry", nil))
}

func (c *entryController) Pin(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	journalId, _ := uuid.Parse(ctx.Params("journalId"))
	entryId, _ := uuid.Parse(ctx.Params("entryId"))

	var req dto.PinEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Pin(ctx.Context(), userId, journalId, entryId, *req.Pinned)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success pin entry", res))
}

func (c *entryController) Reorder(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	journalId, _ := uuid.Parse(ctx.Params("journalId"))

	var req dto.ReorderEntriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Reorder(ctx.Context(), userId, journalId, req.Entries)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reorder entries", res))
}
