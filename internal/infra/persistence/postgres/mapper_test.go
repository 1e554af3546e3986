package postgres

import (
	"testing"
	"time"

	"satoru/internal/domain/entity"
	"satoru/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDocumentMapping_PreservesProcessingState(t *testing.T) {
	processed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := &entity.Document{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Lecture 4",
		FileName:    "lecture-4.pdf",
		FileSize:    2048,
		StorageKey:  "documents/u/d/lecture-4.pdf",
		Status:      entity.DocumentStatusCompleted,
		Pages:       12,
		ProcessedAt: &processed,
	}

	got := toDocumentDomain(fromDocumentDomain(doc))

	assert.Equal(t, doc, got)
}

func TestSummaryMapping_CopiesExamples(t *testing.T) {
	summary := &entity.Summary{
		DocumentID: uuid.New(),
		Summary:    "Overview",
		KeyPoints:  []string{"one", "two"},
		Insights:   []string{"insight"},
		Examples:   []entity.Example{{Title: "Loop", Description: "Iterate", Code: "for {}"}},
	}

	m := fromSummaryDomain(summary)
	assert.Equal(t, []model.ExampleModel{{Title: "Loop", Description: "Iterate", Code: "for {}"}}, m.Examples)

	back := toSummaryDomain(m)
	assert.Equal(t, summary.Examples, back.Examples)
	assert.Equal(t, summary.KeyPoints, back.KeyPoints)
}

func TestFlashcardMapping_NormalizesDifficulty(t *testing.T) {
	card := toFlashcardDomain(&model.FlashcardModel{Question: "Q", Answer: "A", Difficulty: "brutal", Order: 3})

	assert.Equal(t, entity.DifficultyMedium, card.Difficulty)
	assert.Equal(t, 3, card.Order)
}

func TestUserMapping_DefaultsAuthMethod(t *testing.T) {
	m := fromUserDomain(&entity.User{Email: "a@example.com"})

	assert.Equal(t, "email", m.AuthMethod)
}

func TestConstraintHelpers_MatchSQLState(t *testing.T) {
	err := assert.AnError
	assert.False(t, isUniqueConstraintViolation(err))

	pgErr := &fakePgError{msg: `ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`}
	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.False(t, isForeignKeyConstraintViolation(pgErr))
}

type fakePgError struct{ msg string }

func (e *fakePgError) Error() string { return e.msg }
