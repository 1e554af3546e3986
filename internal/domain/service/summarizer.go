package service

import (
	"context"

	"satoru/internal/domain/entity"
)

// StudyMaterial is the raw output of a summarizer before it is attached to a document.
type StudyMaterial struct {
	Summary   string
	KeyPoints []string
	Insights  []string
	Examples  []entity.Example
}

// GeneratedFlashcard is one question/answer pair produced by a summarizer.
type GeneratedFlashcard struct {
	Question   string
	Answer     string
	Difficulty entity.Difficulty
}

// Summarizer turns a PDF into study material.
type Summarizer interface {
	// Summarize produces a summary with key points, insights and examples.
	Summarize(ctx context.Context, pdf []byte) (*StudyMaterial, error)

	// GenerateFlashcards produces exactly count flashcards.
	GenerateFlashcards(ctx context.Context, pdf []byte, count int) ([]GeneratedFlashcard, error)
}
