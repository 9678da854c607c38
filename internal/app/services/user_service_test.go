package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventboard/internal/app/models"
	"eventboard/internal/app/models/dto"
	"eventboard/internal/app/services"
	"eventboard/internal/pkg/apperrors"
	"eventboard/internal/pkg/auth"
)

func TestGetAllUsers_NeverExposesPasswords(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo, zerolog.Nop())

	users := []models.User{
		{ID: 1, Username: "alice", Password: "hash-a", Roles: models.Roles{models.RoleUser}},
		{ID: 2, Username: "bob", Password: "hash-b", Roles: models.Roles{models.RoleAdmin, models.RoleUser}},
	}
	mockRepo.On("GetAll", mock.Anything, uint64(0), 5).Return(users, int64(2), nil)

	list, err := svc.GetAllUsers(context.Background(), dto.PageQuery{})

	assert.NoError(t, err)
	assert.Len(t, list.Users, 2)
	assert.Equal(t, "alice", list.Users[0].Username)
	assert.Equal(t, int64(2), list.PaginationInfo.TotalItems)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUserRoles_FullReplacement(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo, zerolog.Nop())

	existing := &models.User{ID: 5, Username: "bob", Roles: models.Roles{models.RoleUser, models.RoleAdmin}}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	// The new set replaces the old one wholesale: ADMIN is dropped
	mockRepo.On("UpdateRoles", mock.Anything, int64(5), models.Roles{models.RoleManagement}).Return(nil)

	resp, err := svc.UpdateUserRoles(context.Background(), 5, &dto.UpdateRolesRequest{
		Roles: []string{"MANAGEMENT"},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.Roles{models.RoleManagement}, resp.Roles)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUserRoles_UnknownRoleRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo, zerolog.Nop())

	resp, err := svc.UpdateUserRoles(context.Background(), 5, &dto.UpdateRolesRequest{
		Roles: []string{"SUPERUSER"},
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	mockRepo.AssertNotCalled(t, "UpdateRoles", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserRoles_MissingUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo, zerolog.Nop())

	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrUserNotFound)

	resp, err := svc.UpdateUserRoles(context.Background(), 99, &dto.UpdateRolesRequest{
		Roles: []string{"USER"},
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	mockRepo.AssertNotCalled(t, "UpdateRoles", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOwnPassword_HashesAndRedirectsToLogout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo, zerolog.Nop())
	principal := &models.Principal{UserID: 7, Username: "alice"}

	mockRepo.On("UpdatePassword", mock.Anything, int64(7), mock.MatchedBy(func(hash string) bool {
		return hash != "newpass123" && auth.CheckPassword(hash, "newpass123")
	})).Return(nil)

	redirect, err := svc.ChangeOwnPassword(context.Background(), principal, &dto.ChangePasswordRequest{
		NewPassword: "newpass123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/logout", redirect.RedirectTo)
	mockRepo.AssertExpectations(t)
}

func TestChangeOwnPassword_BlankPasswordRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo, zerolog.Nop())
	principal := &models.Principal{UserID: 7, Username: "alice"}

	for _, password := range []string{"", "   "} {
		redirect, err := svc.ChangeOwnPassword(context.Background(), principal, &dto.ChangePasswordRequest{
			NewPassword: password,
		})

		assert.Nil(t, redirect)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
