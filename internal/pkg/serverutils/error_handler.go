package serverutils

import (
	"errors"

	"heyrube-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns service sentinel errors and fiber errors into
// JSON error responses. Anything unrecognized becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrJournalNotFound),
			errors.Is(err, service.ErrEntryNotFound),
			errors.Is(err, service.ErrLinkNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, service.ErrForbidden):
			code = fiber.StatusForbidden
		case errors.Is(err, service.ErrSelfLink),
			errors.Is(err, service.ErrEmptyTagName):
			code = fiber.StatusUnprocessableEntity
		case errors.Is(err, service.ErrEmailTaken):
			code = fiber.StatusConflict
		case errors.Is(err, service.ErrInvalidCredentials):
			code = fiber.StatusUnauthorized
		}

		message := err.Error()
		if code == fiber.StatusInternalServerError {
			message = "internal server error"
		}
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
