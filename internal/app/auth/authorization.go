package auth

import (
	"context"

	"eventboard/internal/app/models"
	"eventboard/internal/pkg/apperrors"
)

// EventPostFinder is the subset of the event post repository the
// authorization checks need.
type EventPostFinder interface {
	GetByID(ctx context.Context, id int64) (*models.EventPost, error)
}

// AuthorizationService decides whether a principal may act on a resource.
type AuthorizationService struct {
	eventPosts EventPostFinder
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(eventPosts EventPostFinder) *AuthorizationService {
	return &AuthorizationService{eventPosts: eventPosts}
}

// CanModifyEventPost reports whether the principal may edit or delete the
// given event post. The post is looked up first, so a missing post surfaces
// as not-found rather than as an authorization failure. Owners may always
// modify their own posts; ADMIN and MANAGEMENT may modify any post.
func (s *AuthorizationService) CanModifyEventPost(ctx context.Context, principal *models.Principal, postID int64) (bool, error) {
	post, err := s.eventPosts.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	if post.PostedBy == principal.Username {
		return true, nil
	}

	return principal.Roles.HasAny(models.RoleAdmin, models.RoleManagement), nil
}

// ValidateEventPostOwnership is CanModifyEventPost with a denial mapped to
// ErrPermissionDenied.
func (s *AuthorizationService) ValidateEventPostOwnership(ctx context.Context, principal *models.Principal, postID int64) error {
	allowed, err := s.CanModifyEventPost(ctx, principal, postID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
