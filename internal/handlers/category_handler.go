package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch categories"})
	}
	return c.JSON(categories)
}
