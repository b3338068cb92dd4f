package usecase

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/repository"
	"github.com/prepdeck/interview-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newAuthUsecase(t *testing.T) (*AuthUsecase, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewAuthUsecase(repository.NewUserRepository(db), service.NewTokenService()), mock
}

func userRow(t *testing.T, id uuid.UUID, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(id.String(), email, string(hash), now, now)
}

func TestLoginSuccess(t *testing.T) {
	uc, mock := newAuthUsecase(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRow(t, userID, "alice@example.com", "supersecret"))

	resp, err := uc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, userID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, mock := newAuthUsecase(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRow(t, uuid.New(), "alice@example.com", "supersecret"))

	_, err := uc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, mock := newAuthUsecase(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshReissuesForExistingUser(t *testing.T) {
	uc, mock := newAuthUsecase(t)
	userID := uuid.New()

	token, err := service.NewTokenService().Generate(userID, "alice@example.com")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(userRow(t, userID, "alice@example.com", "supersecret"))

	resp, err := uc.Refresh(token)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestRefreshRejectsUnknownUser(t *testing.T) {
	uc, mock := newAuthUsecase(t)

	token, err := service.NewTokenService().Generate(uuid.New(), "ghost@example.com")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = uc.Refresh(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRejectsForgedToken(t *testing.T) {
	uc, _ := newAuthUsecase(t)

	_, err := uc.Refresh("not.a.real.token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
