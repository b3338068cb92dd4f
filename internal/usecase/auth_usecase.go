package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/model"
	"github.com/prepdeck/interview-api/internal/repository"
	"github.com/prepdeck/interview-api/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUsecase struct {
	users  *repository.UserRepository
	tokens *service.TokenService
}

func NewAuthUsecase(users *repository.UserRepository, tokens *service.TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

func (uc *AuthUsecase) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return uc.authResponse(user)
}

func (uc *AuthUsecase) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return uc.authResponse(user)
}

func (uc *AuthUsecase) Me(userID uuid.UUID) (*dto.AuthUser, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &dto.AuthUser{ID: user.ID, Email: user.Email}, nil
}

// Refresh reissues a token for a possibly-expired one. The signature is
// still verified and the user must still exist.
func (uc *AuthUsecase) Refresh(tokenString string) (*dto.TokenResponse, error) {
	claims, err := uc.tokens.ValidateExpired(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	user, err := uc.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	token, err := uc.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.TokenResponse{Token: token}, nil
}

func (uc *AuthUsecase) authResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := uc.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.AuthResponse{
		User:  dto.AuthUser{ID: user.ID, Email: user.Email},
		Token: token,
	}, nil
}
