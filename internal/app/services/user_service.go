package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"eventboard/internal/app/models"
	"eventboard/internal/app/models/dto"
	"eventboard/internal/pkg/apperrors"
	"eventboard/internal/pkg/auth"
	"eventboard/internal/pkg/helpers"
)

// UserService defines the interface for account administration and settings
type UserService interface {
	GetAllUsers(ctx context.Context, page dto.PageQuery) (*dto.UserListResponse, error)
	UpdateUserRoles(ctx context.Context, userID int64, req *dto.UpdateRolesRequest) (*dto.UserResponse, error)
	ChangeOwnPassword(ctx context.Context, principal *models.Principal, req *dto.ChangePasswordRequest) (*dto.RedirectResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetAllUsers retrieves a page of accounts ordered by username.
func (s *userServiceImpl) GetAllUsers(ctx context.Context, page dto.PageQuery) (*dto.UserListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)

	users, total, err := s.userRepo.GetAll(ctx, offset, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to get accounts")
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page.Page, limit),
	}, nil
}

// UpdateUserRoles replaces the target account's role set wholesale with the
// requested set. Roles absent from the request are removed.
func (s *userServiceImpl) UpdateUserRoles(ctx context.Context, userID int64, req *dto.UpdateRolesRequest) (*dto.UserResponse, error) {
	roles := make(models.Roles, 0, len(req.Roles))
	for _, name := range req.Roles {
		role, err := models.ParseRole(name)
		if err != nil {
			return nil, apperrors.NewValidationError("Unknown role: " + name)
		}
		if !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRoles(ctx, userID, roles); err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to update roles")
		return nil, err
	}
	user.Roles = roles

	s.logger.Info().Int64("userId", userID).Strs("roles", roles.Strings()).Msg("Account roles replaced")

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ChangeOwnPassword replaces the caller's password. On success the client is
// told to log out, since tokens issued for the old credentials stay valid
// until expiry.
func (s *userServiceImpl) ChangeOwnPassword(ctx context.Context, principal *models.Principal, req *dto.ChangePasswordRequest) (*dto.RedirectResponse, error) {
	if strings.TrimSpace(req.NewPassword) == "" {
		return nil, apperrors.NewValidationError("Password must not be empty")
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	if err := s.userRepo.UpdatePassword(ctx, principal.UserID, hashed); err != nil {
		s.logger.Error().Err(err).Int64("userId", principal.UserID).Msg("Failed to update password")
		return nil, err
	}

	s.logger.Info().Int64("userId", principal.UserID).Msg("Password changed")

	return &dto.RedirectResponse{RedirectTo: "/logout"}, nil
}
