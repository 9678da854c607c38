package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"eventboard/internal/app/auth"
	"eventboard/internal/app/models"
	"eventboard/internal/app/models/dto"
	"eventboard/internal/pkg/imagehost"
)

// ImageService defines the interface for event image uploads
type ImageService interface {
	AttachImage(ctx context.Context, principal *models.Principal, postID int64, fileHeader *multipart.FileHeader) (*dto.EventPostResponse, error)
}

// imageServiceImpl implements ImageService
type imageServiceImpl struct {
	eventPostRepo EventPostRepository
	authzService  *auth.AuthorizationService
	uploader      imagehost.Uploader
	logger        zerolog.Logger
}

// NewImageService creates a new ImageService
func NewImageService(
	eventPostRepo EventPostRepository,
	authzService *auth.AuthorizationService,
	uploader imagehost.Uploader,
	logger zerolog.Logger,
) ImageService {
	return &imageServiceImpl{
		eventPostRepo: eventPostRepo,
		authzService:  authzService,
		uploader:      uploader,
		logger:        logger,
	}
}

// AttachImage uploads an image to the image host and records its URL on the
// event post. A nil principal skips the ownership check; the admin surface
// relies on this after its own role gate. The image is uploaded only after
// the post lookup and ownership check both pass.
func (s *imageServiceImpl) AttachImage(ctx context.Context, principal *models.Principal, postID int64, fileHeader *multipart.FileHeader) (*dto.EventPostResponse, error) {
	post, err := s.eventPostRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if principal != nil {
		if err := s.authzService.ValidateEventPostOwnership(ctx, principal, postID); err != nil {
			return nil, err
		}
	}

	result, err := s.uploader.Upload(ctx, fileHeader)
	if err != nil {
		s.logger.Error().Err(err).Int64("postId", postID).Msg("Failed to upload image")
		return nil, err
	}

	if err := s.eventPostRepo.UpdateImageLink(ctx, postID, result.SecureURL); err != nil {
		s.logger.Error().Err(err).Int64("postId", postID).Msg("Failed to store image link")
		return nil, err
	}
	post.SetImageLink(result.SecureURL)

	s.logger.Info().Int64("postId", postID).Str("imageLink", result.SecureURL).Msg("Image attached to event post")

	resp := dto.NewEventPostResponse(post)
	return &resp, nil
}
