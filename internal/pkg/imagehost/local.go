package imagehost

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"eventboard/internal/pkg/logger"
)

// LocalStorage saves uploaded images to a directory on the local filesystem.
type LocalStorage struct {
	basePath string // Root directory where images are stored
	baseURL  string // Base URL prepended to stored filenames
}

// NewLocalStorage creates a LocalStorage rooted at basePath.
// baseURL is optional; if provided, it will be prepended to returned URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Upload saves the image under a generated unique filename and returns
// its accessible URL. The generated filename doubles as the public id.
func (ls *LocalStorage) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext

	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	var url string
	if ls.baseURL != "" {
		url = strings.TrimRight(ls.baseURL, "/") + "/" + uniqueFilename
	} else {
		url = filepath.Join("uploads", uniqueFilename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("url", url).Msg("Image saved successfully")
	return &UploadResult{
		SecureURL: url,
		PublicID:  uniqueFilename,
	}, nil
}

// Delete removes a stored image. Missing files are treated as already deleted.
func (ls *LocalStorage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	filename := filepath.Base(publicID)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid public id: %s", publicID)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Image to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete image")
		return fmt.Errorf("failed to delete image: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("Image deleted successfully")
	return nil
}
