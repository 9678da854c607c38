package services_test

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"eventboard/internal/app/models"
	"eventboard/internal/pkg/imagehost"
)

// MockEventPostRepository is a mock implementation of services.EventPostRepository
type MockEventPostRepository struct {
	mock.Mock
}

func (m *MockEventPostRepository) Create(ctx context.Context, post *models.EventPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventPostRepository) GetByID(ctx context.Context, id int64) (*models.EventPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventPost), args.Error(1)
}

func (m *MockEventPostRepository) GetAll(ctx context.Context, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error) {
	args := m.Called(ctx, offset, limit, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.EventPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventPostRepository) GetByPostedBy(ctx context.Context, username string, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error) {
	args := m.Called(ctx, username, offset, limit, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.EventPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventPostRepository) Update(ctx context.Context, post *models.EventPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockEventPostRepository) UpdateImageLink(ctx context.Context, id int64, imageLink string) error {
	args := m.Called(ctx, id, imageLink)
	return args.Error(0)
}

func (m *MockEventPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of services.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateRoles(ctx context.Context, id int64, roles models.Roles) error {
	args := m.Called(ctx, id, roles)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

// MockUploader is a mock implementation of imagehost.Uploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*imagehost.UploadResult, error) {
	args := m.Called(ctx, fileHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imagehost.UploadResult), args.Error(1)
}

func (m *MockUploader) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}
