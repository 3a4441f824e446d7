package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/pkg/jwt"
	"go-shop-api/pkg/validator"
)

type AuthService interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type AuthResponse struct {
	User  model.UserResponse `json:"user"`
	Token string             `json:"token"`
}

type authService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register hashes the password, persists the user and returns a
// password-free projection plus an access token.
func (s *authService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	user := &model.User{
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: true,
		Roles:    []string{model.RoleUser},
	}
	if err := user.SetPassword(req.Password); err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, apperr.ErrInternal
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrDuplicateEntry, apperr.DuplicateDetail(err))
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("failed to create user")
		return nil, apperr.ErrInternal
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Roles)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate token")
		return nil, apperr.ErrInternal
	}

	return &AuthResponse{User: user.ToResponse(), Token: token}, nil
}

// Login authenticates an email/password pair. The two failure modes (unknown
// email, wrong password) are logged distinctly but surface the same error so
// callers cannot tell which check failed.
func (s *authService) Login(email, password string) (*AuthResponse, error) {
	creds, err := s.userRepo.FindCredentialsByEmail(email)
	if err != nil {
		s.logger.Debug().Str("email", email).Msg("login rejected: unknown email")
		return nil, apperr.ErrInvalidCredentials
	}

	if !creds.CheckPassword(password) {
		s.logger.Debug().Str("email", email).Msg("login rejected: password mismatch")
		return nil, apperr.ErrInvalidCredentials
	}

	// Reload the full record; the credential fetch only selected the columns
	// needed for the hash comparison.
	user, err := s.userRepo.FindByID(creds.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to load user after login")
		return nil, apperr.ErrInternal
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Roles)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate token")
		return nil, apperr.ErrInternal
	}

	return &AuthResponse{User: user.ToResponse(), Token: token}, nil
}
