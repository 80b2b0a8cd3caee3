package handler

import (
	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/service"
	"problem-bank/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	courseService service.CourseService
	validator     *validation.Validator
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validator:     validation.NewValidator(),
	}
}

// ListCourses returns a page of published courses with count metadata.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	response, err := h.courseService.ListCourses(c.Context(), parsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// GetCourse returns a published course by uuid; unpublished and soft-deleted
// rows are a 404 like any other miss.
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	if errs := h.validator.ValidateUUID("uuid", uuid); errs != nil {
		return errs
	}

	response, err := h.courseService.GetCourseDetail(c.Context(), uuid)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// AddCourse creates a course attributed to the token subject.
func (h *CourseHandler) AddCourse(c *fiber.Ctx) error {
	email, err := creatorEmail(c)
	if err != nil {
		return err
	}

	var req dto.AddCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	if errs := h.validator.ValidateStruct(&req); errs != nil {
		return errs
	}

	response, err := h.courseService.AddCourse(c.Context(), &req, email)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}
