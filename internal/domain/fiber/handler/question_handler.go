package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/model"
	"github.com/prepdeck/interview-api/internal/repository"
	"gorm.io/gorm"
)

// sampleQuestions backs the question endpoints while the table is empty,
// so a fresh install can run interviews without seeding.
var sampleQuestions = []model.Question{
	{ID: uuid.New(), Title: "Design a mobile app for ordering food delivery", Type: "design", TypeLabel: "design", Difficulty: "medium"},
	{ID: uuid.New(), Title: "How would you improve user engagement on Instagram?", Type: "improvement", TypeLabel: "improvement", Difficulty: "medium"},
	{ID: uuid.New(), Title: "Daily active users for a social media app dropped 20% last month. What happened?", Type: "rca", TypeLabel: "rca", Difficulty: "medium"},
	{ID: uuid.New(), Title: "How many pizza slices are consumed in New York City per day?", Type: "guesstimate", TypeLabel: "guesstimate", Difficulty: "medium"},
	{ID: uuid.New(), Title: "Create a social media platform for book lovers", Type: "design", TypeLabel: "design", Difficulty: "medium"},
}

type QuestionHandler struct {
	repo *repository.QuestionRepository
}

func NewQuestionHandler(repo *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{repo: repo}
}

func (h *QuestionHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	group := app.Group("/questions", auth)
	group.Get("/", h.List)
	group.Get("/random/:type", h.Random)
	group.Get("/:id", h.ByID)
}

func (h *QuestionHandler) List(c *fiber.Ctx) error {
	filter := repository.QuestionFilter{
		Type:       c.Query("type"),
		TypeLabel:  c.Query("type_label"),
		Difficulty: c.Query("difficulty"),
	}

	questions, err := h.repo.Find(filter)
	if err != nil || len(questions) == 0 {
		if err != nil {
			log.Printf("Error fetching questions: %v", err)
		}
		return c.JSON(filterSamples(filter))
	}
	return c.JSON(questions)
}

func (h *QuestionHandler) Random(c *fiber.Ctx) error {
	questionType := c.Params("type")

	question, err := h.repo.FindRandomByType(questionType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No questions found for this type")
		}
		log.Printf("Error fetching random question: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch random question")
	}
	return c.JSON(question)
}

func (h *QuestionHandler) ByID(c *fiber.Ctx) error {
	question, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		log.Printf("Error fetching question: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
	}
	return c.JSON(question)
}

func filterSamples(filter repository.QuestionFilter) []model.Question {
	filtered := make([]model.Question, 0, len(sampleQuestions))
	for _, q := range sampleQuestions {
		if filter.Type != "" && q.Type != filter.Type {
			continue
		}
		if filter.TypeLabel != "" && q.TypeLabel != filter.TypeLabel {
			continue
		}
		if filter.Difficulty != "" && q.Difficulty != filter.Difficulty {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}
