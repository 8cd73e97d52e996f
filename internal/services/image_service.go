package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora/pkg/utils"
)

const MaxImageBytes = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageStore is the image host. infra.ObjectStore implements it.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

type ImageServiceInterface interface {
	// Upload stores an image and returns the URL used as a draft's imageSrc.
	Upload(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, size int64) (string, error)
}

type ImageService struct {
	store ImageStore
	log   *zap.Logger
}

func NewImageService(store ImageStore, log *zap.Logger) ImageServiceInterface {
	return &ImageService{store: store, log: log}
}

func (s *ImageService) Upload(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, size int64) (string, error) {
	if size <= 0 || size > MaxImageBytes {
		return "", fmt.Errorf("%w: size %d", utils.ErrInvalidImage, size)
	}

	head := make([]byte, 3072)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("%w: %v", utils.ErrInvalidImage, err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		return "", fmt.Errorf("%w: content type %s", utils.ErrInvalidImage, detected.String())
	}

	key := path.Join("listings", userID.String(), uuid.NewString()+ext)
	url, err := s.store.Put(ctx, key, detected.String(), io.MultiReader(bytes.NewReader(head), body), size)
	if err != nil {
		s.log.Error("upload image", zap.Error(err), zap.String("key", key))
		return "", fmt.Errorf("%w: %v", utils.ErrImageUpload, err)
	}

	s.log.Info("image uploaded",
		zap.String("key", key),
		zap.String("original_name", strings.TrimSpace(filename)),
		zap.Int64("bytes", size))
	return url, nil
}
