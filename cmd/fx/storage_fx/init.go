package storage_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"rentora/internal/config"
	"rentora/internal/infra"
	"rentora/internal/services"
)

var Module = fx.Provide(
	provideObjectStore, provideImageService)

func provideObjectStore(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (services.ImageStore, error) {
	store, err := infra.NewObjectStore(cfg.S3Endpoint, cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3PublicBaseURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// A missing bucket only breaks uploads, so the app still starts.
			if err := store.EnsureBucket(ctx); err != nil {
				log.Warn("image bucket not ready", zap.String("bucket", cfg.S3Bucket), zap.Error(err))
			}
			return nil
		},
	})
	return store, nil
}

func provideImageService(store services.ImageStore, log *zap.Logger) services.ImageServiceInterface {
	return services.NewImageService(store, log.Named("images"))
}
