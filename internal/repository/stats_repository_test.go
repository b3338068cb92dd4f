package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestStatsUpsertUsesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_stats" .* ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	err := repo.Upsert(&model.UserStat{
		UserID:          uuid.New(),
		TotalInterviews: 3,
		TotalMinutes:    47.5,
		AverageScore:    4.2,
		BestScore:       6.1,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsFindByUserNoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_stats" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUser(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionFindRandomByType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE type = \$1 ORDER BY RANDOM\(\)`).
		WithArgs("rca", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "type", "type_label", "difficulty", "created_at", "updated_at"}).
			AddRow(id.String(), "DAU dropped 20% last month. What happened?", "rca", "rca", "medium", now, now))

	question, err := repo.FindRandomByType("rca")
	require.NoError(t, err)
	assert.Equal(t, id, question.ID)
	assert.Equal(t, "rca", question.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
