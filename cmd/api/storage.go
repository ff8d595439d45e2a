package main

import (
	"context"

	"github.com/photoupload/service/internal/config"
	"github.com/photoupload/service/internal/storage"
)

// newStorage builds the Storage backend selected by STORAGE_DRIVER. The client is
// created once here and shared by every request.
func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return storage.NewMemoryStorage(cfg.PublicBase()), nil

	case config.DriverS3:
		s, err := storage.NewS3Storage(ctx, storage.S3Options{
			Endpoint:   cfg.StorageEndpoint,
			AccessKey:  cfg.StorageAccessKey,
			SecretKey:  cfg.StorageSecretKey,
			Region:     cfg.StorageRegion,
			Bucket:     cfg.StorageBucket,
			PublicBase: cfg.PublicBase(),
		})
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		s, err := storage.NewMinioStorage(ctx, storage.MinioOptions{
			Endpoint:   cfg.StorageHost(),
			AccessKey:  cfg.StorageAccessKey,
			SecretKey:  cfg.StorageSecretKey,
			Region:     cfg.StorageRegion,
			Bucket:     cfg.StorageBucket,
			PublicBase: cfg.PublicBase(),
			UseSSL:     cfg.StorageUseSSL(),
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
