package repository

import (
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/model"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db}
}

func (r *SessionRepository) Create(session *model.InterviewSession) error {
	return r.db.Create(session).Error
}

// Update persists changes to a session owned by userID. Scoping the update
// to the owner keeps one user from touching another's sessions.
func (r *SessionRepository) Update(session *model.InterviewSession, userID uuid.UUID) error {
	result := r.db.Model(&model.InterviewSession{}).
		Where("id = ? AND user_id = ?", session.ID, userID).
		Updates(session)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SessionRepository) FindByUser(userID uuid.UUID) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByID(id string, userID uuid.UUID) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.db.First(&session, "id = ? AND user_id = ?", id, userID).Error
	return &session, err
}
