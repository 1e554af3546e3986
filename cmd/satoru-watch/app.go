package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"satoru/config"
	"satoru/internal/client/api"
	"satoru/internal/client/realtime"
	"satoru/internal/client/session"
	"satoru/internal/errors"
)

const defaultAPIURL = "http://localhost:8080"

type connFlags struct {
	client    *config.ClientConfig
	apiURL    *string
	email     *string
	password  *string
	reconnect *time.Duration
	verbose   *bool
}

// loadClientConfig reads the client section of a nearby config file, if any.
func loadClientConfig() *config.ClientConfig {
	cfg, err := config.LoadClient()
	if err != nil {
		return &config.ClientConfig{BaseURL: defaultAPIURL, ReconnectDelay: realtime.DefaultReconnectDelay}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAPIURL
	}

	return cfg
}

func registerConnFlags(fs *flag.FlagSet, cfg *config.ClientConfig) connFlags {
	return connFlags{
		client:    cfg,
		apiURL:    fs.String("api", envOr("SATORU_API_URL", cfg.BaseURL), "API base URL"),
		email:     fs.String("email", os.Getenv("SATORU_EMAIL"), "Account email"),
		password:  fs.String("password", os.Getenv("SATORU_PASSWORD"), "Account password"),
		reconnect: fs.Duration("reconnect", cfg.ReconnectDelay, "Realtime reconnect delay"),
		verbose:   fs.Bool("v", false, "Log client activity"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// app is a signed-in API client.
type app struct {
	flags   connFlags
	logger  *slog.Logger
	client  *session.Client
	auth    *api.AuthService
	docs    *api.DocumentService
	session *api.Session
}

func newApp(ctx context.Context, flags connFlags) (*app, error) {
	var handler slog.Handler = slog.NewTextHandler(io.Discard, nil)
	if *flags.verbose {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)

	client, err := session.NewClient(session.Config{
		BaseURL: *flags.apiURL,
		Timeout: flags.client.Timeout,
		Logger:  logger,
	}, session.NewStore())
	if err != nil {
		return nil, err
	}

	a := &app{
		flags:  flags,
		logger: logger,
		client: client,
		auth:   api.NewAuthService(client),
		docs:   api.NewDocumentService(client),
	}

	s, err := a.auth.SignIn(ctx, api.SignInInput{Email: *flags.email, Password: *flags.password})
	if err != nil {
		return nil, errors.Wrap(err, "sign in")
	}
	a.session = s

	return a, nil
}

// channel opens the realtime channel for the signed-in user.
func (a *app) channel() (*realtime.Channel, error) {
	endpoint := a.flags.client.RealtimeURL
	if endpoint == "" {
		var err error
		if endpoint, err = realtime.EndpointFromBaseURL(*a.flags.apiURL); err != nil {
			return nil, err
		}
	}

	ch, err := realtime.NewChannel(realtime.Config{
		URL:            endpoint,
		ReconnectDelay: *a.flags.reconnect,
		AccessToken:    a.client.Store().CurrentAccessToken,
		Logger:         a.logger,
	})
	if err != nil {
		return nil, err
	}

	// Drop the subscription once the session is gone for good.
	a.client.OnReauth(func(error) { ch.Disconnect() })

	return ch, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.auth.SignOut(ctx); err != nil {
		a.logger.Warn("Sign out failed", slog.Any("error", err))
	}
}
