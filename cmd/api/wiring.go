package main

import (
	"context"
	"fmt"

	"realestate-form-intake/config"
	"realestate-form-intake/internal/domain"
	"realestate-form-intake/internal/repository/objectstore"
	"realestate-form-intake/internal/repository/postgres"
	redisrepo "realestate-form-intake/internal/repository/redis"
	"realestate-form-intake/internal/usecase"
	"realestate-form-intake/pkg/database"
	"realestate-form-intake/pkg/email"
	"realestate-form-intake/pkg/logger"
	"realestate-form-intake/pkg/redis"
	"realestate-form-intake/pkg/storage"
)

// newContactRepository connects the configured record store once for the
// process lifetime. The returned func releases its connections.
func newContactRepository(ctx context.Context, cfg *config.Config) (domain.ContactRepository, func(), error) {
	switch cfg.RecordStoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DBAutoMigrate {
			if err := postgres.EnsureContactTable(ctx, pool, cfg.RecordCollection); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewContactRepository(pool, cfg.RecordCollection), pool.Close, nil

	case config.StoreDriverRedis:
		client, err := redis.NewClient(ctx, redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Log.Warn("Failed to close redis client", "error", err)
			}
		}
		return redisrepo.NewContactRepository(client, cfg.RecordCollection), closeFn, nil

	case config.StoreDriverS3:
		client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
			Provider:        storage.S3Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			WasabiEndpoint:  cfg.WasabiEndpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return objectstore.NewContactRepository(client, cfg.S3Bucket, cfg.RecordCollection), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown record store driver %q", cfg.RecordStoreDriver)
}

func newMailSender(cfg *config.Config) usecase.MailSender {
	if cfg.MailDriver == config.MailDriverResend {
		return email.NewResendSender(cfg.ResendAPIKey)
	}

	sender := email.NewSMTPSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("SMTP credentials not set - relaying without authentication")
	}
	return sender
}
