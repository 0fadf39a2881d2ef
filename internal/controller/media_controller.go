package controller

import (
	"os"
	"path/filepath"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxAudioSize = 50 * 1024 * 1024

var allowedAudioMimes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp4":  true,
	"audio/wav":  true,
	"audio/webm": true,
	"audio/ogg":  true,
}

type IMediaController interface {
	RegisterRoutes(r fiber.Router)
	UploadAudio(ctx *fiber.Ctx) error
}

type mediaController struct {
	uploadDir string
}

func NewMediaController(uploadDir string) IMediaController {
	return &mediaController{
		uploadDir: uploadDir,
	}
}

func (c *mediaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/media/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("audio", c.UploadAudio)
}

func (c *mediaController) UploadAudio(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("audio")
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "audio file is required")
	}
	if file.Size > maxAudioSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "audio file exceeds 50MB")
	}

	mime := file.Header.Get("Content-Type")
	if !allowedAudioMimes[mime] {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "unsupported audio type")
	}

	dir := filepath.Join(c.uploadDir, "audio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := ctx.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return err
	}

	res := &dto.UploadAudioResponse{
		Url:  "/uploads/audio/" + name,
		Mime: mime,
		Size: file.Size,
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload audio", res))
}
