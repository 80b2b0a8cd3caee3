package handler

import (
	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/service"
	"problem-bank/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

// Signup registers a new user from {email, username, password}.
// Responds 201 with the new user's public id; a duplicate email is a 409.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	if errs := h.validator.ValidateStruct(&req); errs != nil {
		return errs
	}

	response, err := h.authService.Signup(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// Login exchanges {email, password} for a bearer token. Unknown email and
// wrong password both come back as the same 400.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	if errs := h.validator.ValidateStruct(&req); errs != nil {
		return errs
	}

	response, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(response)
}
