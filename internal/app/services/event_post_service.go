package services

import (
	"context"

	"github.com/rs/zerolog"

	"eventboard/internal/app/auth"
	"eventboard/internal/app/models"
	"eventboard/internal/app/models/dto"
	"eventboard/internal/pkg/helpers"
)

// EventPostService defines the interface for event post operations
type EventPostService interface {
	AddEvent(ctx context.Context, principal *models.Principal, req *dto.EventPostRequest) (*dto.EventPostResponse, error)
	AddEventAnonymous(ctx context.Context, req *dto.EventPostRequest) (*dto.EventPostResponse, error)
	GetAllPosts(ctx context.Context, page dto.PageQuery) (*dto.EventPostListResponse, error)
	GetPostsOfUser(ctx context.Context, username string, page dto.PageQuery) (*dto.EventPostListResponse, error)
	UpdatePostByID(ctx context.Context, principal *models.Principal, postID int64, req *dto.EventPostRequest) (*dto.EventPostResponse, error)
	DeletePostByID(ctx context.Context, principal *models.Principal, postID int64) error
}

// eventPostServiceImpl implements EventPostService
type eventPostServiceImpl struct {
	eventPostRepo EventPostRepository
	authzService  *auth.AuthorizationService
	logger        zerolog.Logger
}

// NewEventPostService creates a new EventPostService
func NewEventPostService(
	eventPostRepo EventPostRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) EventPostService {
	return &eventPostServiceImpl{
		eventPostRepo: eventPostRepo,
		authzService:  authzService,
		logger:        logger,
	}
}

// AddEvent creates a new event post owned by the principal.
func (s *eventPostServiceImpl) AddEvent(ctx context.Context, principal *models.Principal, req *dto.EventPostRequest) (*dto.EventPostResponse, error) {
	post, err := req.ToEventPost()
	if err != nil {
		return nil, err
	}
	post.PostedBy = principal.Username

	id, err := s.eventPostRepo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("title", post.Title).Msg("Failed to create event post")
		return nil, err
	}
	post.ID = id

	s.logger.Info().Int64("postId", id).Str("postedBy", post.PostedBy).Msg("Event post created")

	resp := dto.NewEventPostResponse(post)
	return &resp, nil
}

// AddEventAnonymous creates an event post with no recorded owner. Reachable
// only through the role-gated legacy posting endpoint; such posts can be
// modified solely by ADMIN and MANAGEMENT.
func (s *eventPostServiceImpl) AddEventAnonymous(ctx context.Context, req *dto.EventPostRequest) (*dto.EventPostResponse, error) {
	post, err := req.ToEventPost()
	if err != nil {
		return nil, err
	}

	id, err := s.eventPostRepo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("title", post.Title).Msg("Failed to create event post")
		return nil, err
	}
	post.ID = id

	s.logger.Info().Int64("postId", id).Msg("Event post created without owner")

	resp := dto.NewEventPostResponse(post)
	return &resp, nil
}

// GetAllPosts retrieves a page of event posts.
func (s *eventPostServiceImpl) GetAllPosts(ctx context.Context, page dto.PageQuery) (*dto.EventPostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)

	posts, total, err := s.eventPostRepo.GetAll(ctx, offset, limit, page.SortBy, page.SortOrder)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to get event posts")
		return nil, err
	}

	return s.toListResponse(posts, total, page.Page, limit), nil
}

// GetPostsOfUser retrieves a page of the given user's own event posts.
func (s *eventPostServiceImpl) GetPostsOfUser(ctx context.Context, username string, page dto.PageQuery) (*dto.EventPostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)

	posts, total, err := s.eventPostRepo.GetByPostedBy(ctx, username, offset, limit, page.SortBy, page.SortOrder)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to get user's event posts")
		return nil, err
	}

	return s.toListResponse(posts, total, page.Page, limit), nil
}

// UpdatePostByID replaces an event post after the ownership check. The post
// is looked up before authorization, so a missing post is reported as
// not-found even to callers who could not have modified it.
func (s *eventPostServiceImpl) UpdatePostByID(ctx context.Context, principal *models.Principal, postID int64, req *dto.EventPostRequest) (*dto.EventPostResponse, error) {
	post, err := s.eventPostRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateEventPostOwnership(ctx, principal, postID); err != nil {
		return nil, err
	}

	if err := post.ApplyUpdate(req.ToUpdate()); err != nil {
		return nil, err
	}

	if err := s.eventPostRepo.Update(ctx, post); err != nil {
		s.logger.Error().Err(err).Int64("postId", postID).Msg("Failed to update event post")
		return nil, err
	}

	s.logger.Info().Int64("postId", postID).Str("updatedBy", principal.Username).Msg("Event post updated")

	resp := dto.NewEventPostResponse(post)
	return &resp, nil
}

// DeletePostByID removes an event post after the ownership check.
func (s *eventPostServiceImpl) DeletePostByID(ctx context.Context, principal *models.Principal, postID int64) error {
	if err := s.authzService.ValidateEventPostOwnership(ctx, principal, postID); err != nil {
		return err
	}

	if err := s.eventPostRepo.Delete(ctx, postID); err != nil {
		s.logger.Error().Err(err).Int64("postId", postID).Msg("Failed to delete event post")
		return err
	}

	s.logger.Info().Int64("postId", postID).Str("deletedBy", principal.Username).Msg("Event post deleted")
	return nil
}

func (s *eventPostServiceImpl) toListResponse(posts []models.EventPost, total int64, page, size int) *dto.EventPostListResponse {
	responses := make([]dto.EventPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.NewEventPostResponse(&posts[i]))
	}

	return &dto.EventPostListResponse{
		Events:         responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}
}
