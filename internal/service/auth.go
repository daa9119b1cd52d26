package service

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/reelmark/reelmark-go/internal/crypto"
	"github.com/reelmark/reelmark-go/internal/model"
	"github.com/reelmark/reelmark-go/internal/repository"
)

// These error messages are part of the API contract and surface verbatim
// in 400 responses.
var (
	ErrInvalidInput  = errors.New("Invalid input data")
	ErrInvalidEmail  = errors.New("Please Provide a valid email")
	ErrEmailTaken    = errors.New("Email Already Exists")
	ErrUserNotFound  = errors.New("User does not exist")
	ErrWrongPassword = errors.New("Wrong Password")
)

// AuthService orchestrates registration and login.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

// Register creates a new user account and returns the user id with a signed
// token. Validation failures and the duplicate-email case surface with their
// own messages; everything else is left for the handler's generic 500.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Password != req.RepeatPassword {
		return model.AuthResponse{}, ErrInvalidInput
	}

	if err := validation.Validate(req.Email, is.Email); err != nil {
		return model.AuthResponse{}, ErrInvalidEmail
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{ID: user.ID, Token: token}, nil
}

// Login authenticates a user by email and password and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrInvalidInput
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrUserNotFound
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrWrongPassword
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{ID: user.ID, Token: token}, nil
}
