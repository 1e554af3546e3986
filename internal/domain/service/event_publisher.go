package service

import (
	"context"
	"time"

	"satoru/internal/domain/entity"
)

const timeLayout = time.RFC3339

// DocumentEventType names what happened to a document.
type DocumentEventType string

const (
	// DocumentEventUploaded asks the worker to process a freshly uploaded document.
	DocumentEventUploaded DocumentEventType = "document.uploaded"
	// DocumentEventUpdated tells the API that a document changed and subscribers should hear about it.
	DocumentEventUpdated DocumentEventType = "document.updated"
)

// DocumentEvent is the payload published to the message queue.
type DocumentEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       DocumentEventType `json:"type"`
	DocumentID string            `json:"document_id"`
	UserID     string            `json:"user_id"`
	Document   *DocumentView     `json:"document,omitempty"`
}

// DocumentView is the wire shape of a document shared by REST responses,
// published events and realtime frames.
type DocumentView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	FileName    string  `json:"file_name"`
	FileSize    int64   `json:"file_size"`
	FileURL     string  `json:"file_url,omitempty"`
	Status      string  `json:"status"`
	Pages       int     `json:"pages"`
	Error       string  `json:"error,omitempty"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// NewDocumentView converts a document entity into its wire shape.
func NewDocumentView(doc *entity.Document) *DocumentView {
	view := &DocumentView{
		ID:        doc.ID.String(),
		Title:     doc.Title,
		FileName:  doc.FileName,
		FileSize:  doc.FileSize,
		FileURL:   doc.FileURL,
		Status:    doc.Status.String(),
		Pages:     doc.Pages,
		Error:     doc.Error,
		CreatedAt: doc.CreatedAt.UTC().Format(timeLayout),
	}
	if doc.ProcessedAt != nil {
		at := doc.ProcessedAt.UTC().Format(timeLayout)
		view.ProcessedAt = &at
	}

	return view
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDocumentEvent routes the event by type: uploads go to the processing
	// topic, updates to the realtime topic.
	PublishDocumentEvent(ctx context.Context, event *DocumentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
