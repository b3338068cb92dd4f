package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title      string    `gorm:"type:text" json:"title"`
	Type       string    `gorm:"type:varchar(50);index" json:"type"` // design, improvement, rca, guesstimate
	TypeLabel  string    `gorm:"type:varchar(50)" json:"type_label"`
	Difficulty string    `gorm:"type:varchar(50)" json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
