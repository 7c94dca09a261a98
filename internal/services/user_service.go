package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	StoreRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error
	LookupRefreshToken(ctx context.Context, token string) (string, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}

type userService struct {
	repo         *repositories.UserRepository
	emailService EmailService
	authService  AuthService
}

func NewUserService(repo *repositories.UserRepository, emailService EmailService, authService AuthService) UserService {
	return &userService{
		repo:         repo,
		emailService: emailService,
		authService:  authService,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("password is required")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := s.authService.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		BusinessName: strings.TrimSpace(req.BusinessName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			// warn but do not fail registration
			log.Printf("[user][register] warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("name is required")
	}
	user.UpdatedAt = time.Now()
	return s.repo.UpdateProfile(ctx, user)
}

func (s *userService) StoreRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error {
	return s.repo.StoreRefreshToken(ctx, token, userID, expiresAt)
}

func (s *userService) LookupRefreshToken(ctx context.Context, token string) (string, error) {
	return s.repo.LookupRefreshToken(ctx, token)
}

func (s *userService) RevokeRefreshToken(ctx context.Context, token string) error {
	return s.repo.DeleteRefreshToken(ctx, token)
}
