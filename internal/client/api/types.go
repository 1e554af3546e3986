package api

import "time"

// User is the signed-in account.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PictureURL    string    `json:"picture_url,omitempty"`
	AuthMethod    string    `json:"auth_method"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// Session describes who is signed in. Tokens live in the session store.
type Session struct {
	User *User
}

// Document statuses.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Document is an uploaded PDF and its processing state.
type Document struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	FileName    string     `json:"file_name"`
	FileSize    int64      `json:"file_size"`
	FileURL     string     `json:"file_url,omitempty"`
	Status      string     `json:"status"`
	Pages       int        `json:"pages"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// Done reports whether processing has finished, successfully or not.
func (d *Document) Done() bool {
	return d.Status == StatusCompleted || d.Status == StatusFailed
}

// Example is a worked example from a summary.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// Summary is the generated overview of a document.
type Summary struct {
	DocumentID string    `json:"document_id"`
	Summary    string    `json:"summary"`
	KeyPoints  []string  `json:"key_points"`
	Insights   []string  `json:"insights"`
	Examples   []Example `json:"examples"`
	CreatedAt  time.Time `json:"created_at"`
}

// Flashcard is one generated question and answer.
type Flashcard struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
	Order      int    `json:"order"`
}

// DocumentDetail is a document with its study material.
type DocumentDetail struct {
	Document
	Summary    *Summary    `json:"summary"`
	Flashcards []Flashcard `json:"flashcards"`
}

// Stats aggregates the user's documents.
type Stats struct {
	TotalDocuments  int64 `json:"total_documents"`
	Completed       int64 `json:"completed"`
	Processing      int64 `json:"processing"`
	Failed          int64 `json:"failed"`
	TotalPages      int64 `json:"total_pages"`
	TotalFlashcards int64 `json:"total_flashcards"`
}
