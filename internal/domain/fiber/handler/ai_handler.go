package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/middleware"
	"github.com/prepdeck/interview-api/internal/usecase"
)

type AIHandler struct {
	uc *usecase.InterviewUsecase
}

func NewAIHandler(uc *usecase.InterviewUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Post("/evaluate", auth, middleware.RateLimiter(10, 1*time.Minute), h.Evaluate)
	app.Post("/chat", auth, h.Chat)
}

func (h *AIHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	verdict, err := h.uc.Evaluate(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		log.Printf("AI evaluation error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to evaluate interview")
	}

	return c.JSON(verdict)
}

func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Message is required")
	}

	response, err := h.uc.Chat(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			return fiber.NewError(fiber.StatusBadRequest, "Message is required")
		}
		log.Printf("AI chat error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate response")
	}

	return c.JSON(dto.ChatResponse{Response: response})
}
