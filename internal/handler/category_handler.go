package handler

import (
	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/service"
	"problem-bank/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validation.Validator
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       validation.NewValidator(),
	}
}

// ListCategories returns all non-deleted categories.
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	response, err := h.categoryService.GetAllCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// AddCategory creates a category from {name}; a duplicate name is a 409.
func (h *CategoryHandler) AddCategory(c *fiber.Ctx) error {
	var req dto.AddCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	if errs := h.validator.ValidateStruct(&req); errs != nil {
		return errs
	}

	response, err := h.categoryService.AddCategory(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}
