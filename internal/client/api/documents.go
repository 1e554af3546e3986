package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"

	"satoru/internal/client/session"
	"satoru/internal/errors"
)

const documentsPath = "/api/documents/"

// ErrNotPDF is returned for uploads without a .pdf name. It matches ErrInvalidInput.
var ErrNotPDF = errors.WithMessage(ErrInvalidInput, "only PDF files are supported")

// UploadInput is a PDF to upload. Title defaults to the file name without its extension.
type UploadInput struct {
	FileName string `validate:"required"`
	Title    string `validate:"max=255"`
	Content  io.Reader
}

// DocumentService calls the document endpoints for the signed-in user.
type DocumentService struct {
	client *session.Client
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(client *session.Client) *DocumentService {
	return &DocumentService{client: client}
}

// List returns the user's documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]Document, error) {
	var docs []Document
	if err := s.client.DoJSON(ctx, &session.Request{Method: http.MethodGet, Path: documentsPath}, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Get returns a document with its summary and flashcards.
func (s *DocumentService) Get(ctx context.Context, id string) (*DocumentDetail, error) {
	var detail DocumentDetail
	if err := s.client.DoJSON(ctx, &session.Request{Method: http.MethodGet, Path: documentPath(id)}, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

// Upload sends a PDF as multipart form data.
func (s *DocumentService) Upload(ctx context.Context, input UploadInput) (*Document, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Content == nil {
		return nil, errors.Wrap(ErrInvalidInput, "content is required")
	}
	ext := filepath.Ext(input.FileName)
	if !strings.EqualFold(ext, ".pdf") {
		return nil, errors.WithStack(ErrNotPDF)
	}

	title := input.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(input.FileName), ext)
	}

	body, contentType, err := multipartBody(input.FileName, title, input.Content)
	if err != nil {
		return nil, err
	}

	var doc Document
	req := &session.Request{Method: http.MethodPost, Path: documentsPath, Body: body, ContentType: contentType}
	if err := s.client.DoJSON(ctx, req, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Delete removes a document and its study material.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Do(ctx, &session.Request{Method: http.MethodDelete, Path: documentPath(id)})

	return err
}

// File downloads the uploaded PDF.
func (s *DocumentService) File(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.client.Do(ctx, &session.Request{Method: http.MethodGet, Path: documentPath(id) + "file/"})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// Summary returns the document's summary.
func (s *DocumentService) Summary(ctx context.Context, id string) (*Summary, error) {
	var summary Summary
	if err := s.client.DoJSON(ctx, &session.Request{Method: http.MethodGet, Path: documentPath(id) + "summary/"}, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// Flashcards returns the document's flashcards in order.
func (s *DocumentService) Flashcards(ctx context.Context, id string) ([]Flashcard, error) {
	var cards []Flashcard
	if err := s.client.DoJSON(ctx, &session.Request{Method: http.MethodGet, Path: documentPath(id) + "flashcards/"}, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// RegenerateFlashcards replaces the flashcards. A count of 0 uses the server default.
func (s *DocumentService) RegenerateFlashcards(ctx context.Context, id string, count int) ([]Flashcard, error) {
	if count < 0 {
		return nil, errors.Wrap(ErrInvalidInput, "count must not be negative")
	}

	req, err := session.NewJSONRequest(http.MethodPost, documentPath(id)+"regenerate_flashcards/", map[string]int{"count": count})
	if err != nil {
		return nil, err
	}

	var cards []Flashcard
	if err := s.client.DoJSON(ctx, req, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// RegenerateSummary replaces the summary.
func (s *DocumentService) RegenerateSummary(ctx context.Context, id string) (*Summary, error) {
	var summary Summary
	req := &session.Request{Method: http.MethodPost, Path: documentPath(id) + "regenerate_summary/"}
	if err := s.client.DoJSON(ctx, req, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// Stats returns totals across the user's documents.
func (s *DocumentService) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.client.DoJSON(ctx, &session.Request{Method: http.MethodGet, Path: documentsPath + "stats/"}, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func documentPath(id string) string {
	return documentsPath + url.PathEscape(id) + "/"
}

func multipartBody(fileName, title string, content io.Reader) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(filepath.Base(fileName))+`"`)
	header.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create file part")
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, "", errors.Wrap(err, "failed to read upload content")
	}
	if err := w.WriteField("title", title); err != nil {
		return nil, "", errors.Wrap(err, "failed to write title")
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to finish multipart body")
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
