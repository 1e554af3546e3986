// Package firebase initializes the shared Firebase app used for ID token
// verification and Firebase Storage.
package firebase

import (
	"context"
	"log/slog"

	"satoru/config"
	"satoru/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app. It returns nil without error when Firebase is disabled,
// so dependents can fall back to other providers.
func NewApp(cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if cfg.Firebase == nil || !cfg.Firebase.Enabled {
		logger.Info("Firebase disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase initialized", slog.String("projectID", cfg.Firebase.ProjectID))

	return app, nil
}
