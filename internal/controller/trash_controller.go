package controller

import (
	"heyrube-be/internal/pkg/serverutils"
	"heyrube-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITrashController interface {
	RegisterRoutes(r fiber.Router)
	Journals(ctx *fiber.Ctx) error
	Entries(ctx *fiber.Ctx) error
	RestoreJournal(ctx *fiber.Ctx) error
	ForceDeleteJournal(ctx *fiber.Ctx) error
	RestoreEntry(ctx *fiber.Ctx) error
	ForceDeleteEntry(ctx *fiber.Ctx) error
	Empty(ctx *fiber.Ctx) error
}

type trashController struct {
	trashService service.ITrashService
}

func NewTrashController(trashService service.ITrashService) ITrashController {
	return &trashController{
		trashService: trashService,
	}
}

func (c *trashController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trash/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("journals", c.Journals)
	h.Get("entries", c.Entries)
	h.Post("journals/:id/restore", c.RestoreJournal)
	h.Delete("journals/:id", c.ForceDeleteJournal)
	h.Post("entries/:id/restore", c.RestoreEntry)
	h.Delete("entries/:id", c.ForceDeleteEntry)
	h.Delete("", c.Empty)
}

func (c *trashController) Journals(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.trashService.TrashedJournals(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get trashed journals", res))
}

func (c *trashController) Entries(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.trashService.TrashedEntries(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get trashed entries", res))
}

func (c *trashController) RestoreJournal(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.trashService.RestoreJournal(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore journal", nil))
}

func (c *trashController) ForceDeleteJournal(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.trashService.ForceDeleteJournal(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete journal permanently", nil))
}

func (c *trashController) RestoreEntry(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.trashService.RestoreEntry(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore entry", nil))
}

func (c *trashController) ForceDeleteEntry(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.trashService.ForceDeleteEntry(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete entry permanently", nil))
}

func (c *trashController) Empty(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	if err := c.trashService.EmptyTrash(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success empty trash", nil))
}
