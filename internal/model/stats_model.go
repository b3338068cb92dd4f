package model

import (
	"time"

	"github.com/google/uuid"
)

// UserStat holds one row of aggregate interview stats per user, maintained
// by upsert on user_id.
type UserStat struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	TotalInterviews int       `json:"total_interviews"`
	TotalMinutes    float64   `gorm:"type:float" json:"total_minutes"`
	AverageScore    float64   `gorm:"type:float" json:"average_score"`
	BestScore       float64   `gorm:"type:float" json:"best_score"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
