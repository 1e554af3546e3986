package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.PubSub)
	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Realtime)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Documents.MaxUploadSize)
	assert.Equal(t, defaultFlashcardCount, cfg.Documents.FlashcardCount)
	assert.Equal(t, 3*time.Second, cfg.Client.ReconnectDelay)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Documents: &DocumentsConfig{MaxUploadSize: 1024, FlashcardCount: 12},
		Client:    &ClientConfig{ReconnectDelay: time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, int64(1024), cfg.Documents.MaxUploadSize)
	assert.Equal(t, 12, cfg.Documents.FlashcardCount)
	assert.Equal(t, time.Second, cfg.Client.ReconnectDelay)
}
