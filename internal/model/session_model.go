package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewSession struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	QuestionID      uuid.UUID `gorm:"type:uuid" json:"question_id"`
	QuestionTitle   string    `gorm:"type:text" json:"question_title"`
	QuestionType    string    `gorm:"type:varchar(50)" json:"question_type"`
	Transcript      string    `gorm:"type:jsonb" json:"transcript"`
	Status          string    `gorm:"type:varchar(50)" json:"status"` // e.g. "in_progress", "completed", "abandoned"
	CompositeScore  float64   `gorm:"type:float" json:"composite_score"`
	DimensionScores string    `gorm:"type:jsonb" json:"dimension_scores"`
	WhatWorkedWell  string    `gorm:"type:text" json:"what_worked_well"`
	AreasToImprove  string    `gorm:"type:text" json:"areas_to_improve"`
	DurationSeconds float64   `gorm:"type:float" json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
