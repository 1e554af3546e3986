// Package summarizer produces summaries and flashcards from PDF documents with Gemini.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "satoru/internal/delivery/context"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 2 * time.Minute
	pdfMIMEType    = "application/pdf"
)

const summaryPrompt = `Analyze the attached document and respond with JSON only:
{
  "summary": "a comprehensive summary in 2-3 paragraphs",
  "key_points": ["5-7 key points"],
  "insights": ["3-5 important insights"],
  "examples": [{"title": "Example title", "description": "What it shows", "code": "optional code"}]
}
Include 2-3 practical examples.`

const flashcardPrompt = `Create exactly %d educational flashcards from the attached document.
Questions should test understanding, answers should be clear and concise, and the set
should mix easy, medium and hard cards covering different topics.
Respond with a JSON array only:
[{"question": "question text", "answer": "answer text", "difficulty": "easy|medium|hard"}]`

// contentGenerator is the subset of *genai.Models the summarizer calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSummarizer implements service.Summarizer by sending the PDF inline to Gemini.
type GeminiSummarizer struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiSummarizer creates a Gemini API client for the given key.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string, timeout time.Duration, logger *slog.Logger) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return newGeminiSummarizer(client.Models, model, timeout, logger), nil
}

func newGeminiSummarizer(models contentGenerator, model string, timeout time.Duration, logger *slog.Logger) *GeminiSummarizer {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &GeminiSummarizer{
		models:  models,
		model:   model,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "gemini")),
	}
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, pdf []byte) (*service.StudyMaterial, error) {
	text, err := s.generate(ctx, pdf, summaryPrompt)
	if err != nil {
		return nil, err
	}

	material, err := parseSummary(text)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "Summary response was not valid JSON, using raw text", slog.Any("error", err))
	}

	return material, nil
}

func (s *GeminiSummarizer) GenerateFlashcards(ctx context.Context, pdf []byte, count int) ([]service.GeneratedFlashcard, error) {
	text, err := s.generate(ctx, pdf, fmt.Sprintf(flashcardPrompt, count))
	if err != nil {
		return nil, err
	}

	cards, err := parseFlashcards(text, count)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "Flashcard response was not valid JSON, using placeholders", slog.Any("error", err))
	}

	return cards, nil
}

func (s *GeminiSummarizer) generate(ctx context.Context, pdf []byte, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(pdf, pdfMIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	start := time.Now()
	resp, err := s.models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", domainerrors.ErrSummarizerFailed.WithDetails(err.Error())
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", domainerrors.ErrSummarizerFailed.WithDetails("empty response")
	}

	s.log(ctx).DebugContext(ctx, "Gemini response received",
		slog.String("model", s.model),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("chars", len(text)),
	)

	return text, nil
}

func (s *GeminiSummarizer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	return sb.String()
}
