package repository

import (
	"github.com/prepdeck/interview-api/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows question listings; zero values mean no filter.
type QuestionFilter struct {
	Type       string
	TypeLabel  string
	Difficulty string
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db}
}

func (r *QuestionRepository) Find(filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Model(&model.Question{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.TypeLabel != "" {
		query = query.Where("type_label = ?", filter.TypeLabel)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	err := query.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindRandomByType(questionType string) (*model.Question, error) {
	var question model.Question
	err := r.db.Where("type = ?", questionType).Order("RANDOM()").First(&question).Error
	return &question, err
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.db.First(&question, "id = ?", id).Error
	return &question, err
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}
