// Package storage stores uploaded document files in a gocloud bucket or Firebase Storage.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"satoru/config"
	"satoru/internal/domain/constants"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

const defaultBucketURL = "mem://"

// Params holds dependencies for FileStorage, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewFileStorage opens the configured backend and closes it on shutdown.
func NewFileStorage(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger.With(slog.String("component", "storage"))

	var (
		store service.FileStorage
		err   error
	)

	switch cfg.Provider {
	case constants.StorageProviderFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase storage requires firebase.enabled")
		}
		store, err = NewFirebaseStorage(params.Ctx, params.FirebaseApp, params.Config.Firebase.StorageBucket, cfg.PublicBaseURL)

	case constants.StorageProviderBlob, "":
		bucketURL := cfg.BucketURL
		if bucketURL == "" {
			bucketURL = defaultBucketURL
		}
		store, err = NewBlobStorage(params.Ctx, bucketURL, cfg.PublicBaseURL)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("File storage initialized", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func publicURL(baseURL, scheme, bucket, key string) string {
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + "/" + key
	}

	return scheme + bucket + "/" + key
}
