package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"eventboard/internal/app/models"
	"eventboard/internal/app/models/dto"
	"eventboard/internal/pkg/apperrors"
	"eventboard/internal/pkg/auth"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.RedirectResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account with the USER role. Username uniqueness is
// left to the database constraint; a collision surfaces as a conflict.
// On success the client is told to proceed to the login page.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.RedirectResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Roles:    models.Roles{models.RoleUser},
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			s.logger.Warn().Str("username", req.Username).Msg("Registration rejected, username taken")
		} else {
			s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to create account")
		}
		return nil, err
	}

	s.logger.Info().Int64("userId", id).Str("username", req.Username).Msg("Account registered")

	return &dto.RedirectResponse{RedirectTo: "/login"}, nil
}

// Login authenticates an account and issues an access token. Accounts with
// any lock or expiry flag set are refused even with a correct password.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Login rejected, bad credentials")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		s.logger.Warn().Str("username", req.Username).Msg("Login rejected, account disabled")
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("username", user.Username).Msg("Login successful")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
