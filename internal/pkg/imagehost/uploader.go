package imagehost

import (
	"context"
	"mime/multipart"
)

// UploadResult describes where an uploaded image ended up.
type UploadResult struct {
	SecureURL string // Publicly reachable URL of the stored image
	PublicID  string // Host-side identifier, usable for later deletion
}

// Uploader stores event images and returns their public location.
type Uploader interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadResult, error)

	// Delete removes a previously uploaded image by its public id.
	// Deleting an unknown id is not an error.
	Delete(ctx context.Context, publicID string) error
}
