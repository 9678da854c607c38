package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventboard/internal/app/auth"
	"eventboard/internal/app/models"
	"eventboard/internal/pkg/apperrors"
)

// stubFinder returns a fixed post or error for any id.
type stubFinder struct {
	post *models.EventPost
	err  error
}

func (s *stubFinder) GetByID(ctx context.Context, id int64) (*models.EventPost, error) {
	return s.post, s.err
}

func TestCanModifyEventPost(t *testing.T) {
	post := &models.EventPost{ID: 42, PostedBy: "alice"}

	tests := []struct {
		name      string
		principal *models.Principal
		want      bool
	}{
		{
			name:      "owner may modify",
			principal: &models.Principal{Username: "alice", Roles: models.Roles{models.RoleUser}},
			want:      true,
		},
		{
			name:      "plain user may not modify another's post",
			principal: &models.Principal{Username: "bob", Roles: models.Roles{models.RoleUser}},
			want:      false,
		},
		{
			name:      "admin may modify any post",
			principal: &models.Principal{Username: "root", Roles: models.Roles{models.RoleAdmin}},
			want:      true,
		},
		{
			name:      "management may modify any post",
			principal: &models.Principal{Username: "mgr", Roles: models.Roles{models.RoleManagement}},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := auth.NewAuthorizationService(&stubFinder{post: post})
			allowed, err := svc.CanModifyEventPost(context.Background(), tt.principal, 42)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestCanModifyEventPost_MissingPostSurfacesNotFound(t *testing.T) {
	svc := auth.NewAuthorizationService(&stubFinder{err: apperrors.ErrPostNotFound})
	// Even a non-owner gets not-found, not forbidden
	principal := &models.Principal{Username: "bob", Roles: models.Roles{models.RoleUser}}

	allowed, err := svc.CanModifyEventPost(context.Background(), principal, 42)

	assert.False(t, allowed)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestValidateEventPostOwnership_DenialMapsToPermissionDenied(t *testing.T) {
	post := &models.EventPost{ID: 42, PostedBy: "alice"}
	svc := auth.NewAuthorizationService(&stubFinder{post: post})
	principal := &models.Principal{Username: "bob", Roles: models.Roles{models.RoleUser}}

	err := svc.ValidateEventPostOwnership(context.Background(), principal, 42)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestValidateEventPostOwnership_AnonymousPostOnlyElevatedRoles(t *testing.T) {
	// Posts created through the legacy endpoint carry no owner
	post := &models.EventPost{ID: 43, PostedBy: ""}
	svc := auth.NewAuthorizationService(&stubFinder{post: post})

	user := &models.Principal{Username: "bob", Roles: models.Roles{models.RoleUser}}
	assert.ErrorIs(t, svc.ValidateEventPostOwnership(context.Background(), user, 43), apperrors.ErrPermissionDenied)

	admin := &models.Principal{Username: "root", Roles: models.Roles{models.RoleAdmin}}
	assert.NoError(t, svc.ValidateEventPostOwnership(context.Background(), admin, 43))
}
