package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus tracks a document through the processing pipeline.
type DocumentStatus string

const (
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFailed     DocumentStatus = "failed"
)

func (s DocumentStatus) String() string {
	return string(s)
}

// IsFinal reports whether processing has finished, successfully or not.
func (s DocumentStatus) IsFinal() bool {
	return s == DocumentStatusCompleted || s == DocumentStatusFailed
}

// Document is an uploaded PDF and its processing state.
type Document struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	FileName    string
	FileSize    int64
	FileURL     string
	StorageKey  string
	Status      DocumentStatus
	Pages       int
	Error       string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// IsOwnedBy reports whether the document belongs to the given user.
func (d *Document) IsOwnedBy(userID uuid.UUID) bool {
	return d.UserID == userID
}

// MarkCompleted records a successful processing run.
func (d *Document) MarkCompleted(pages int, at time.Time) {
	d.Status = DocumentStatusCompleted
	d.Pages = pages
	d.Error = ""
	d.ProcessedAt = &at
}

// MarkFailed records a failed processing run.
func (d *Document) MarkFailed(reason string, at time.Time) {
	d.Status = DocumentStatusFailed
	d.Error = reason
	d.ProcessedAt = &at
}

// Example is a worked example extracted from a document.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// Summary is the generated overview of a document.
type Summary struct {
	DocumentID uuid.UUID
	Summary    string
	KeyPoints  []string
	Insights   []string
	Examples   []Example
	CreatedAt  time.Time
}

// Difficulty grades a flashcard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps free-form input onto a known difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyMedium
	}
}

// Flashcard is a single question/answer pair generated from a document.
type Flashcard struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Question   string
	Answer     string
	Difficulty Difficulty
	Order      int
	CreatedAt  time.Time
}

// DocumentStats aggregates a user's documents.
type DocumentStats struct {
	TotalDocuments  int64
	Completed       int64
	Processing      int64
	Failed          int64
	TotalPages      int64
	TotalFlashcards int64
}
