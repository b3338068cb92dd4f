package repository

import (
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db}
}

func (r *StatsRepository) FindByUser(userID uuid.UUID) (*model.UserStat, error) {
	var stat model.UserStat
	err := r.db.First(&stat, "user_id = ?", userID).Error
	return &stat, err
}

// Upsert inserts the stats row or, when one already exists for the user,
// overwrites its counters. user_id carries a unique index.
func (r *StatsRepository) Upsert(stat *model.UserStat) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_interviews", "total_minutes", "average_score", "best_score", "updated_at",
		}),
	}).Create(stat).Error
}
