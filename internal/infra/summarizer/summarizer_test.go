package summarizer

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubGenerator struct {
	text     string
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (s *stubGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.model = model
	s.contents = contents
	s.config = config
	if s.err != nil {
		return nil, s.err
	}

	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: s.text}}},
		}},
	}, nil
}

func newTestSummarizer(gen contentGenerator) *GeminiSummarizer {
	return newGeminiSummarizer(gen, "", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSummarize_ParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{text: "```json\n" + `{
		"summary": "Graphs are everywhere.",
		"key_points": ["vertices", " ", "edges"],
		"insights": ["BFS finds shortest paths"],
		"examples": [{"title": "BFS", "description": "queue based", "code": "q := []int{}"}, {}]
	}` + "\n```"}
	s := newTestSummarizer(gen)

	material, err := s.Summarize(context.Background(), []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "Graphs are everywhere.", material.Summary)
	assert.Equal(t, []string{"vertices", "edges"}, material.KeyPoints)
	assert.Equal(t, []string{"BFS finds shortest paths"}, material.Insights)
	require.Len(t, material.Examples, 1)
	assert.Equal(t, "BFS", material.Examples[0].Title)

	assert.Equal(t, defaultModel, gen.model)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	require.Len(t, gen.contents, 1)
	require.Len(t, gen.contents[0].Parts, 2)
	require.NotNil(t, gen.contents[0].Parts[0].InlineData)
	assert.Equal(t, pdfMIMEType, gen.contents[0].Parts[0].InlineData.MIMEType)
}

func TestSummarize_FallsBackToRawText(t *testing.T) {
	s := newTestSummarizer(&stubGenerator{text: "This document is about graphs."})

	material, err := s.Summarize(context.Background(), []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "This document is about graphs.", material.Summary)
	assert.Equal(t, []string{"Unable to extract key points"}, material.KeyPoints)
	assert.Equal(t, []string{"Unable to extract insights"}, material.Insights)
	assert.Empty(t, material.Examples)
}

func TestSummarize_GeneratorError(t *testing.T) {
	s := newTestSummarizer(&stubGenerator{err: errors.New("quota exceeded")})

	_, err := s.Summarize(context.Background(), []byte("%PDF-1.4"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSummarizerFailed)
}

func TestSummarize_EmptyResponse(t *testing.T) {
	s := newTestSummarizer(&stubGenerator{text: "   "})

	_, err := s.Summarize(context.Background(), []byte("%PDF-1.4"))

	assert.ErrorIs(t, err, domainerrors.ErrSummarizerFailed)
}

func TestGenerateFlashcards(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		count     int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "exact count",
			text:      `[{"question":"Q1","answer":"A1","difficulty":"easy"},{"question":"Q2","answer":"A2","difficulty":"hard"}]`,
			count:     2,
			wantFirst: "Q1",
			wantLast:  "Q2",
		},
		{
			name:      "pads short results",
			text:      `[{"question":"Q1","answer":"A1"},{"question":"missing answer"}]`,
			count:     3,
			wantFirst: "Q1",
			wantLast:  "Review question 3",
		},
		{
			name:      "truncates long results",
			text:      `[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"},{"question":"Q3","answer":"A3"}]`,
			count:     2,
			wantFirst: "Q1",
			wantLast:  "Q2",
		},
		{
			name:      "placeholders on invalid JSON",
			text:      "not json at all",
			count:     2,
			wantFirst: "Question 1 from document",
			wantLast:  "Question 2 from document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSummarizer(&stubGenerator{text: tt.text})

			cards, err := s.GenerateFlashcards(context.Background(), []byte("%PDF-1.4"), tt.count)

			require.NoError(t, err)
			require.Len(t, cards, tt.count)
			assert.Equal(t, tt.wantFirst, cards[0].Question)
			assert.Equal(t, tt.wantLast, cards[len(cards)-1].Question)
		})
	}
}

func TestGenerateFlashcards_DifficultyDefaultsToMedium(t *testing.T) {
	s := newTestSummarizer(&stubGenerator{text: `[{"question":"Q","answer":"A","difficulty":"impossible"}]`})

	cards, err := s.GenerateFlashcards(context.Background(), nil, 1)

	require.NoError(t, err)
	assert.Equal(t, entity.DifficultyMedium, cards[0].Difficulty)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `[1]`, stripCodeFences("```\n[1]\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`  {"a":1}  `))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "hé", truncateRunes("héllo", 2))
}

func TestUnavailableSummarizer(t *testing.T) {
	var s unavailableSummarizer

	_, err := s.Summarize(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrSummarizerFailed)

	_, err = s.GenerateFlashcards(context.Background(), nil, 10)
	assert.ErrorIs(t, err, domainerrors.ErrSummarizerFailed)
}
