package handler

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/middleware"
	"github.com/prepdeck/interview-api/internal/usecase"
)

type AuthHandler struct {
	uc       *usecase.AuthUsecase
	validate *validator.Validate
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validator.New()}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	group := app.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/me", auth, h.Me)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", h.Logout)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A valid email and a password of at least 8 characters are required")
	}

	resp, err := h.uc.Register(req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("Registration error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	resp, err := h.uc.Login(req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid email or password")
		}
		log.Printf("Login error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Me(userID)
	if err != nil {
		log.Printf("Session error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{"user": user})
}

// Refresh accepts an expired token, re-verifies the user still exists and
// issues a fresh token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}

	resp, err := h.uc.Refresh(token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		log.Printf("Token refresh error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

// Logout is stateless; the client drops the token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
