package handler

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/middleware"
	"github.com/prepdeck/interview-api/internal/model"
	"github.com/prepdeck/interview-api/internal/repository"
	"gorm.io/gorm"
)

type SessionHandler struct {
	repo *repository.SessionRepository
}

func NewSessionHandler(repo *repository.SessionRepository) *SessionHandler {
	return &SessionHandler{repo: repo}
}

func (h *SessionHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	group := app.Group("/sessions", auth)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.ByID)
	group.Put("/:id", h.Update)
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	sessions, err := h.repo.FindByUser(userID)
	if err != nil {
		log.Printf("Error fetching sessions: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sessions")
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session data")
	}

	session, err := sessionFromRequest(req, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session data")
	}
	if session.Status == "" {
		session.Status = "in_progress"
	}

	if err := h.repo.Create(session); err != nil {
		log.Printf("Error creating session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	return c.JSON(session)
}

func (h *SessionHandler) ByID(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	session, err := h.repo.FindByID(c.Params("id"), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		log.Printf("Error fetching session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch session")
	}
	return c.JSON(session)
}

func (h *SessionHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session data")
	}

	session, err := sessionFromRequest(req, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session data")
	}
	session.ID = sessionID

	if err := h.repo.Update(session, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		log.Printf("Error updating session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update session")
	}

	updated, err := h.repo.FindByID(sessionID.String(), userID)
	if err != nil {
		log.Printf("Error fetching session after update: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update session")
	}
	return c.JSON(updated)
}

func sessionFromRequest(req dto.SessionRequest, userID uuid.UUID) (*model.InterviewSession, error) {
	session := &model.InterviewSession{
		UserID:          userID,
		QuestionTitle:   req.QuestionTitle,
		QuestionType:    req.QuestionType,
		Status:          req.Status,
		CompositeScore:  req.CompositeScore,
		WhatWorkedWell:  req.WhatWorkedWell,
		AreasToImprove:  req.AreasToImprove,
		DurationSeconds: req.DurationSeconds,
	}

	if req.QuestionID != "" {
		questionID, err := uuid.Parse(req.QuestionID)
		if err != nil {
			return nil, err
		}
		session.QuestionID = questionID
	}
	if req.Transcript != nil {
		raw, err := json.Marshal(req.Transcript)
		if err != nil {
			return nil, err
		}
		session.Transcript = string(raw)
	}
	if req.DimensionScores != nil {
		raw, err := json.Marshal(req.DimensionScores)
		if err != nil {
			return nil, err
		}
		session.DimensionScores = string(raw)
	}
	return session, nil
}
