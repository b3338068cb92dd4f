package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/middleware"
	"github.com/prepdeck/interview-api/internal/model"
	"github.com/prepdeck/interview-api/internal/repository"
	"gorm.io/gorm"
)

type StatsHandler struct {
	repo *repository.StatsRepository
}

func NewStatsHandler(repo *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

func (h *StatsHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	group := app.Group("/stats", auth)
	group.Get("/", h.Get)
	group.Put("/", h.Upsert)
}

// Get returns the caller's stats as an array for frontend filter
// compatibility; no row yet means an empty array, not an error.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	stat, err := h.repo.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON([]model.UserStat{})
		}
		log.Printf("Error fetching user stats: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user stats")
	}
	return c.JSON([]model.UserStat{*stat})
}

func (h *StatsHandler) Upsert(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.StatsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid stats data")
	}

	stat := &model.UserStat{
		UserID:          userID,
		TotalInterviews: req.TotalInterviews,
		TotalMinutes:    req.TotalMinutes,
		AverageScore:    req.AverageScore,
		BestScore:       req.BestScore,
	}
	if err := h.repo.Upsert(stat); err != nil {
		log.Printf("Error updating user stats: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user stats")
	}
	return c.JSON(stat)
}
