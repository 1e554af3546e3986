package summarizer

import (
	"context"
	"log/slog"

	"satoru/config"
	"satoru/internal/domain/constants"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
)

// unavailableSummarizer fails every request; it lets the API start without a model key.
type unavailableSummarizer struct{}

func (unavailableSummarizer) Summarize(context.Context, []byte) (*service.StudyMaterial, error) {
	return nil, domainerrors.ErrSummarizerFailed.WithDetails("summarizer not configured")
}

func (unavailableSummarizer) GenerateFlashcards(context.Context, []byte, int) ([]service.GeneratedFlashcard, error) {
	return nil, domainerrors.ErrSummarizerFailed.WithDetails("summarizer not configured")
}

// NewSummarizer builds the configured summarizer.
func NewSummarizer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Summarizer, error) {
	sc := cfg.Summarizer
	if sc == nil || sc.APIKey == "" {
		logger.Warn("Summarizer API key not configured, document processing will fail")

		return unavailableSummarizer{}, nil
	}

	switch sc.Provider {
	case constants.SummarizerProviderGemini, "":
		return NewGeminiSummarizer(ctx, sc.APIKey, sc.Model, sc.Timeout, logger)
	default:
		return nil, errors.Errorf("unknown summarizer provider: %s", sc.Provider)
	}
}
