package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel mirrors the 'documents' table. IDs are assigned by the application
// so the storage key can be derived before the row exists.
type DocumentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_user_created,priority:1"`
	Title       string    `gorm:"type:varchar(255);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	FileSize    int64     `gorm:"not null"`
	FileURL     string    `gorm:"type:text"`
	StorageKey  string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	Pages       int       `gorm:"not null;default:0"`
	Error       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index:idx_documents_user_created,priority:2,sort:desc"`
	ProcessedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// ExampleModel is one worked example, stored inside the summary's JSONB column.
type ExampleModel struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// SummaryModel mirrors the 'document_summaries' table, one row per document.
type SummaryModel struct {
	DocumentID uuid.UUID      `gorm:"type:uuid;primary_key"`
	Summary    string         `gorm:"type:text;not null"`
	KeyPoints  []string       `gorm:"type:jsonb;serializer:json"`
	Insights   []string       `gorm:"type:jsonb;serializer:json"`
	Examples   []ExampleModel `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SummaryModel) TableName() string {
	return "document_summaries"
}

// FlashcardModel mirrors the 'flashcards' table.
type FlashcardModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index:idx_flashcards_document_order,priority:1"`
	Question   string    `gorm:"type:text;not null"`
	Answer     string    `gorm:"type:text;not null"`
	Difficulty string    `gorm:"type:varchar(10);not null"`
	Order      int       `gorm:"column:position;not null;index:idx_flashcards_document_order,priority:2"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FlashcardModel) TableName() string {
	return "flashcards"
}
