package services

import (
	"context"

	"eventboard/internal/app/models"
)

// EventPostRepository defines the persistence operations the event post
// services depend on.
type EventPostRepository interface {
	Create(ctx context.Context, post *models.EventPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.EventPost, error)
	GetAll(ctx context.Context, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error)
	GetByPostedBy(ctx context.Context, username string, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error)
	Update(ctx context.Context, post *models.EventPost) error
	UpdateImageLink(ctx context.Context, id int64, imageLink string) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the persistence operations the account services
// depend on.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]models.User, int64, error)
	UpdateRoles(ctx context.Context, id int64, roles models.Roles) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}
