package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/logger"

	"github.com/google/uuid"
)

type ImageMetadata struct {
	URL  string `json:"url" validate:"required,url"`
	Path string `json:"path" validate:"required"`
}

type ImageService struct {
	images  ImageRepository
	posts   PostRepository
	objects ObjectStore
}

func NewImageService(images ImageRepository, posts PostRepository, objects ObjectStore) *ImageService {
	return &ImageService{images: images, posts: posts, objects: objects}
}

func (s *ImageService) List(ctx context.Context, postID string) ([]domain.PostImage, error) {
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	images, err := s.images.ListImages(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	if images == nil {
		images = []domain.PostImage{}
	}
	return images, nil
}

// AddBatch records metadata for images the client already uploaded.
func (s *ImageService) AddBatch(ctx context.Context, callerID int64, postID string, metadata []ImageMetadata) ([]domain.PostImage, error) {
	if err := s.checkOwner(ctx, callerID, postID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	images := make([]domain.PostImage, 0, len(metadata))
	for _, m := range metadata {
		images = append(images, domain.PostImage{
			ID:        uuid.NewString(),
			PostID:    &postID,
			URL:       m.URL,
			Path:      m.Path,
			Timestamp: now,
		})
	}
	if err := s.images.AddImages(ctx, images); err != nil {
		return nil, fmt.Errorf("failed to add images: %w", err)
	}
	return images, nil
}

// Upload streams a file into object storage and records it against the post.
func (s *ImageService) Upload(ctx context.Context, callerID int64, postID, filename string, body io.Reader, size int64, contentType string) (*domain.PostImage, error) {
	if err := s.checkOwner(ctx, callerID, postID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	objectPath := fmt.Sprintf("%s/%s%s", postID, id, path.Ext(filename))
	url, err := s.objects.PutObject(ctx, objectPath, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	image := domain.PostImage{
		ID:        id,
		PostID:    &postID,
		URL:       url,
		Path:      objectPath,
		Timestamp: time.Now().UTC(),
	}
	if err := s.images.AddImages(ctx, []domain.PostImage{image}); err != nil {
		return nil, fmt.Errorf("failed to add image: %w", err)
	}
	return &image, nil
}

func (s *ImageService) SoftDelete(ctx context.Context, callerID int64, postID string, ids []string) (int64, error) {
	if err := s.checkOwner(ctx, callerID, postID); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return s.images.SoftDeleteImages(ctx, postID, ids)
}

// Purge removes soft-deleted and orphaned images from object storage and
// then from the database. Rows stay if storage removal fails so the next run retries.
func (s *ImageService) Purge(ctx context.Context) (int, error) {
	images, err := s.images.ListPurgeable(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list purgeable images: %w", err)
	}
	if len(images) == 0 {
		logger.Info(logger.EventImagePurge, "nothing to purge", nil)
		return 0, nil
	}

	paths := make([]string, 0, len(images))
	ids := make([]string, 0, len(images))
	for _, img := range images {
		paths = append(paths, img.Path)
		ids = append(ids, img.ID)
	}

	if err := s.objects.RemoveObjects(ctx, paths); err != nil {
		return 0, fmt.Errorf("failed to remove objects: %w", err)
	}
	if err := s.images.HardDeleteImages(ctx, ids); err != nil {
		return 0, fmt.Errorf("failed to delete image rows: %w", err)
	}

	logger.Info(logger.EventImagePurge, "purged images", logger.Fields("count", len(ids)))
	return len(ids), nil
}

// RunPurgeSchedule purges on every tick until ctx is cancelled.
func (s *ImageService) RunPurgeSchedule(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(logger.EventImagePurge, "purge schedule stopped", nil)
			return
		case <-ticker.C:
			if _, err := s.Purge(ctx); err != nil {
				logger.Error(logger.EventImagePurge, "image purge failed", logger.Fields("error", err.Error()))
			}
		}
	}
}

func (s *ImageService) checkOwner(ctx context.Context, callerID int64, postID string) error {
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return domain.ErrNotOwner
	}
	return nil
}
