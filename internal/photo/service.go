// Package photo accepts image uploads, names them, and hands them to object storage.
package photo

import (
	"bytes"
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/photoupload/service/internal/metrics"
	"github.com/photoupload/service/internal/storage"
)

// ErrFilenameRequired is returned by Delete for an empty name.
var ErrFilenameRequired = errors.New("filename is required")

// Upload describes a stored photo. Nothing is persisted locally; the URL is
// recomputed from the filename on demand.
type Upload struct {
	Filename string `json:"filename" example:"1a2b3c4d_0011223344556677_1718000000000.png"`
	URL      string `json:"url"      example:"http://localhost:9000/photos/1a2b3c4d_0011223344556677_1718000000000.png"`
	Size     int64  `json:"size"     example:"204800"`
	Type     string `json:"type"     example:"image/png"`
}

// Service contains the business logic for photo uploads.
type Service struct {
	store    storage.Storage
	metrics  *metrics.Registry
	filename func(originalName string) string
}

// NewService creates a photo Service. reg may be nil.
func NewService(store storage.Storage, reg *metrics.Registry) *Service {
	return &Service{store: store, metrics: reg, filename: GenerateFilename}
}

// Upload stores data under a freshly generated filename.
func (s *Service) Upload(ctx context.Context, originalName, contentType string, data []byte) (*Upload, error) {
	logger := zerolog.Ctx(ctx)
	name := s.filename(originalName)
	size := int64(len(data))

	if err := s.store.Upload(ctx, name, bytes.NewReader(data), size, contentType); err != nil {
		logger.Error().
			Err(err).
			Str("filename", name).
			Str("original_name", originalName).
			Int64("size", size).
			Msg("photo upload failed")
		s.metrics.Inc(ctx, metrics.StorageErrors, map[string]string{"op": "upload"}, 1)
		return nil, err
	}

	s.metrics.Inc(ctx, metrics.PhotosUploaded, nil, 1)
	s.metrics.Inc(ctx, metrics.PhotoBytesUploaded, nil, size)
	logger.Info().
		Str("filename", name).
		Int64("size", size).
		Str("type", contentType).
		Msg("photo uploaded")

	return &Upload{
		Filename: name,
		URL:      s.store.PublicURL(name),
		Size:     size,
		Type:     contentType,
	}, nil
}

// Delete removes filename from storage. Missing objects are not reported.
func (s *Service) Delete(ctx context.Context, filename string) error {
	if filename == "" {
		return ErrFilenameRequired
	}

	if err := s.store.Delete(ctx, filename); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("filename", filename).Msg("photo delete failed")
		s.metrics.Inc(ctx, metrics.StorageErrors, map[string]string{"op": "delete"}, 1)
		return err
	}

	s.metrics.Inc(ctx, metrics.PhotosDeleted, nil, 1)
	zerolog.Ctx(ctx).Info().Str("filename", filename).Msg("photo deleted")
	return nil
}

// Ready reports whether the backing storage is reachable.
func (s *Service) Ready(ctx context.Context) error {
	return s.store.Ready(ctx)
}
