package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	Logout(ctx context.Context, userID string) error
}

type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	log         logger.Logger
	jwtSecret   string
	sessionTTL  time.Duration
}

func NewUserService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	log logger.Logger,
	jwtSecret string,
	sessionTTL time.Duration,
) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		log:         log,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	errs := fieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailRegexp.MatchString(email):
		errs["email"] = "Please use a valid email address"
	}
	switch {
	case in.Password == "":
		errs["password"] = "Password is required"
	case len(in.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		s.log.Errorf("Failed to hash password during registration: %v", err)
		return nil, fmt.Errorf("UserService.Register: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(in.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewValidationError(fieldErrors{"email": "Email already exists"})
		}
		s.log.Errorf("Failed to create user: %v", err)
		return nil, fmt.Errorf("UserService.Register: %w", err)
	}
	user.ID = id
	user.PasswordHash = ""

	return user, nil
}

// Login verifies the credentials and issues a signed session token. The token
// is also cached per user so that logout invalidates it immediately.
func (s *userService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.log.Errorf("Failed to load user by email during login: %v", err)
		return "", nil, fmt.Errorf("UserService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.log.Errorf("Failed to sign session token for user %s: %v", user.ID, err)
		return "", nil, fmt.Errorf("UserService.Login: %w", err)
	}

	if err := s.sessionRepo.Set(ctx, user.ID, token, s.sessionTTL); err != nil {
		s.log.Errorf("Failed to cache session token for user %s: %v", user.ID, err)
		return "", nil, fmt.Errorf("UserService.Login: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	if err := s.sessionRepo.Delete(ctx, userID); err != nil {
		s.log.Errorf("Failed to invalidate session for user %s: %v", userID, err)
		return fmt.Errorf("UserService.Logout: %w", err)
	}
	return nil
}
