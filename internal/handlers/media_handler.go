package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

type MediaHandler struct {
	mediaService *services.MediaService
	urlExpirySec int64
}

func NewMediaHandler(mediaService *services.MediaService, urlExpirySec int64) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, urlExpirySec: urlExpirySec}
}

func (h *MediaHandler) PresignUpload(c *fiber.Ctx) error {
	var req dto.PresignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	uploadURL, objectKey, err := h.mediaService.PresignUpload(c.Context(), req.Kind, req.FileName, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMediaNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrMediaInput), errors.Is(err, services.ErrMediaKind):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to presign upload"})
	}

	return c.JSON(dto.PresignUploadResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ExpiresIn: h.urlExpirySec,
	})
}

func (h *MediaHandler) PresignDownload(c *fiber.Ctx) error {
	key := c.Query("key")

	downloadURL, err := h.mediaService.PresignDownload(c.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMediaNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrMediaInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to presign download"})
	}

	return c.JSON(dto.PresignDownloadResponse{
		DownloadURL: downloadURL,
		ExpiresIn:   h.urlExpirySec,
	})
}
