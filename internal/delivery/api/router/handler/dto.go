package handler

import (
	"time"

	"satoru/internal/domain/entity"
	"satoru/internal/domain/service"
)

const timeLayout = time.RFC3339

// --- Requests ---

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type idTokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type regenerateFlashcardsRequest struct {
	Count int `json:"count" validate:"gte=0"`
}

// --- Responses ---

type userResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	PictureURL    string `json:"picture_url,omitempty"`
	AuthMethod    string `json:"auth_method"`
	EmailVerified bool   `json:"email_verified"`
	CreatedAt     string `json:"created_at"`
}

type tokensResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type authResponse struct {
	User   *userResponse  `json:"user"`
	Tokens tokensResponse `json:"tokens"`
}

type accessResponse struct {
	Access string `json:"access"`
}

type summaryResponse struct {
	DocumentID string           `json:"document_id"`
	Summary    string           `json:"summary"`
	KeyPoints  []string         `json:"key_points"`
	Insights   []string         `json:"insights"`
	Examples   []entity.Example `json:"examples"`
	CreatedAt  string           `json:"created_at"`
}

type flashcardResponse struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
	Order      int    `json:"order"`
}

type documentDetailResponse struct {
	*service.DocumentView
	Summary    *summaryResponse    `json:"summary"`
	Flashcards []flashcardResponse `json:"flashcards"`
}

type statsResponse struct {
	TotalDocuments  int64 `json:"total_documents"`
	Completed       int64 `json:"completed"`
	Processing      int64 `json:"processing"`
	Failed          int64 `json:"failed"`
	TotalPages      int64 `json:"total_pages"`
	TotalFlashcards int64 `json:"total_flashcards"`
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.ShortName(),
		PictureURL:    user.PictureURL,
		AuthMethod:    user.AuthMethod.String(),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt.UTC().Format(timeLayout),
	}
}

func newSummaryResponse(summary *entity.Summary) *summaryResponse {
	if summary == nil {
		return nil
	}

	return &summaryResponse{
		DocumentID: summary.DocumentID.String(),
		Summary:    summary.Summary,
		KeyPoints:  nonNil(summary.KeyPoints),
		Insights:   nonNil(summary.Insights),
		Examples:   nonNil(summary.Examples),
		CreatedAt:  summary.CreatedAt.UTC().Format(timeLayout),
	}
}

func newFlashcardResponses(cards []*entity.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, flashcardResponse{
			ID:         card.ID.String(),
			Question:   card.Question,
			Answer:     card.Answer,
			Difficulty: string(card.Difficulty),
			Order:      card.Order,
		})
	}

	return out
}

func newDocumentViews(docs []*entity.Document) []*service.DocumentView {
	out := make([]*service.DocumentView, 0, len(docs))
	for _, doc := range docs {
		out = append(out, service.NewDocumentView(doc))
	}

	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
