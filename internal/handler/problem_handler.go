package handler

import (
	"strconv"

	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/middleware"
	"problem-bank/internal/service"
	"problem-bank/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProblemHandler struct {
	problemService service.ProblemService
	validator      *validation.Validator
}

func NewProblemHandler(problemService service.ProblemService) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		validator:      validation.NewValidator(),
	}
}

// parsePagination reads ?page and ?size. Out-of-range values fall back to
// defaults; the service clamps again before querying.
func parsePagination(c *fiber.Ctx) dto.Pagination {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("size", "10"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return dto.Pagination{Page: page, Size: size}
}

// creatorEmail pulls the authenticated subject the Protected middleware
// stored in the locals.
func creatorEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals(middleware.UserEmailKey).(string)
	if !ok || email == "" {
		return "", domain.NewUnauthorizedError("Authenticated user not found in request context")
	}
	return email, nil
}

// ListProblems returns a page of problems with count metadata.
func (h *ProblemHandler) ListProblems(c *fiber.Ctx) error {
	response, err := h.problemService.ListProblems(c.Context(), parsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// GetProblem returns the full problem for a uuid plus prev/next navigation;
// 404 when the uuid does not match a non-deleted row.
func (h *ProblemHandler) GetProblem(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	if errs := h.validator.ValidateUUID("uuid", uuid); errs != nil {
		return errs
	}

	response, err := h.problemService.GetProblemDetail(c.Context(), uuid)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// AddProblem creates a problem attributed to the token subject; a duplicate
// title is a 409.
func (h *ProblemHandler) AddProblem(c *fiber.Ctx) error {
	email, err := creatorEmail(c)
	if err != nil {
		return err
	}

	var req dto.AddProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	if errs := h.validator.ValidateStruct(&req); errs != nil {
		return errs
	}

	response, err := h.problemService.AddProblem(c.Context(), &req, email)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}
