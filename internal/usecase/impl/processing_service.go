package impl

import (
	"context"
	"log/slog"
	"time"

	"satoru/config"
	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/constants"
	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	"satoru/internal/usecase"
	"satoru/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type processingService struct {
	txManager      repository.TransactionManager
	documentRepo   repository.DocumentRepository
	storage        service.FileStorage
	summarizer     service.Summarizer
	publisher      service.EventPublisher
	flashcardCount int
	now            func() time.Time
	logger         *slog.Logger
}

// ProcessingServiceParams holds dependencies for ProcessingService, injected by Fx.
type ProcessingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DocumentRepo repository.DocumentRepository
	Storage      service.FileStorage
	Summarizer   service.Summarizer
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProcessingService creates a new processing service instance
func NewProcessingService(params ProcessingServiceParams) usecase.ProcessingUsecase {
	flashcardCount := constants.DefaultFlashcardCount
	if params.Config != nil && params.Config.Documents != nil && params.Config.Documents.FlashcardCount > 0 {
		flashcardCount = params.Config.Documents.FlashcardCount
	}

	return &processingService{
		txManager:      params.TxManager,
		documentRepo:   params.DocumentRepo,
		storage:        params.Storage,
		summarizer:     params.Summarizer,
		publisher:      params.Publisher,
		flashcardCount: clampFlashcardCount(flashcardCount, constants.DefaultFlashcardCount),
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (s *processingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ProcessDocument runs the summarizer over an uploaded document. Summarizer failures
// mark the document failed and are not returned; storage and database failures are.
// Redelivery of an already processed document only republishes its state.
func (s *processingService) ProcessDocument(ctx context.Context, documentID uuid.UUID) error {
	logger := s.log(ctx).With(slog.Any("documentID", documentID))

	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		logger.Warn("Document vanished before processing")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load document for processing")
	}

	if doc.Status.IsFinal() {
		logger.Info("Document already processed, republishing state", slog.String("status", doc.Status.String()))
		s.publishUpdate(ctx, doc)

		return nil
	}

	start := s.now()

	data, err := s.storage.Download(ctx, doc.StorageKey)
	if errors.Is(err, service.ErrObjectNotFound) {
		return s.failDocument(ctx, doc, errors.Wrap(domainerrors.ErrStorageFailed.WithDetails("uploaded file is missing"), "download document"))
	}
	if err != nil {
		return storageError(err, "failed to download document")
	}

	pages := util.CountPDFPages(data)

	material, err := s.summarizer.Summarize(ctx, data)
	if err != nil {
		return s.failDocument(ctx, doc, err)
	}

	generated, err := s.summarizer.GenerateFlashcards(ctx, data, s.flashcardCount)
	if err != nil {
		return s.failDocument(ctx, doc, err)
	}

	summary := newSummary(doc.ID, material, s.now().UTC())
	cards := newFlashcards(doc.ID, generated)

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studyAidRepo := repoFactory.NewStudyAidRepository()
		if err := studyAidRepo.SaveSummary(ctx, summary); err != nil {
			return errors.Wrap(err, "failed to save summary")
		}
		if err := studyAidRepo.ReplaceFlashcards(ctx, doc.ID, cards); err != nil {
			return errors.Wrap(err, "failed to save flashcards")
		}

		doc.MarkCompleted(pages, s.now().UTC())
		if err := repoFactory.NewDocumentRepository().Update(ctx, doc); err != nil {
			return errors.Wrap(err, "failed to mark document completed")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute document processing transaction")
	}

	logger.Info("Document processed",
		slog.Int("pages", pages),
		slog.Int("flashcards", len(cards)),
		slog.String("elapsed", util.FormatDuration(s.now().Sub(start))),
	)
	s.publishUpdate(ctx, doc)

	return nil
}

// failDocument records cause on the document and publishes the failure.
func (s *processingService) failDocument(ctx context.Context, doc *entity.Document, cause error) error {
	s.log(ctx).Error("Document processing failed", slog.Any("documentID", doc.ID), slog.Any("error", cause))

	doc.MarkFailed(failureReason(cause), s.now().UTC())
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to mark document failed")
	}
	s.publishUpdate(ctx, doc)

	return nil
}

// publishUpdate is best effort: the document row is already the source of truth.
func (s *processingService) publishUpdate(ctx context.Context, doc *entity.Document) {
	event := &service.DocumentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.DocumentEventUpdated,
		DocumentID: doc.ID.String(),
		UserID:     doc.UserID.String(),
		Document:   service.NewDocumentView(doc),
	}
	if err := s.publisher.PublishDocumentEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish document update", slog.Any("documentID", doc.ID), slog.Any("error", err))
	}
}

// RegenerateSummary replaces the document's summary synchronously.
func (s *processingService) RegenerateSummary(ctx context.Context, userID, documentID uuid.UUID) (*entity.Summary, error) {
	doc, data, err := s.loadReadyDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	material, err := s.summarizer.Summarize(ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate summary")
	}

	summary := newSummary(doc.ID, material, s.now().UTC())
	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewStudyAidRepository().SaveSummary(ctx, summary)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save regenerated summary")
	}

	s.log(ctx).Info("Summary regenerated", slog.Any("documentID", doc.ID))

	return summary, nil
}

// RegenerateFlashcards replaces the document's flashcards synchronously.
func (s *processingService) RegenerateFlashcards(ctx context.Context, userID, documentID uuid.UUID, count int) ([]*entity.Flashcard, error) {
	count = clampFlashcardCount(count, s.flashcardCount)

	doc, data, err := s.loadReadyDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	generated, err := s.summarizer.GenerateFlashcards(ctx, data, count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate flashcards")
	}

	cards := newFlashcards(doc.ID, generated)
	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewStudyAidRepository().ReplaceFlashcards(ctx, doc.ID, cards)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save regenerated flashcards")
	}

	s.log(ctx).Info("Flashcards regenerated", slog.Any("documentID", doc.ID), slog.Int("count", len(cards)))

	return cards, nil
}

// loadReadyDocument returns an owned, no longer processing document and its file.
func (s *processingService) loadReadyDocument(ctx context.Context, userID, documentID uuid.UUID) (*entity.Document, []byte, error) {
	doc, err := findOwnedDocument(ctx, s.documentRepo, userID, documentID)
	if err != nil {
		return nil, nil, err
	}
	if doc.Status == entity.DocumentStatusProcessing {
		return nil, nil, errors.WithStack(domainerrors.ErrDocumentNotReady)
	}

	data, err := s.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, storageError(err, "failed to download document")
	}

	return doc, data, nil
}

func newSummary(documentID uuid.UUID, material *service.StudyMaterial, at time.Time) *entity.Summary {
	return &entity.Summary{
		DocumentID: documentID,
		Summary:    material.Summary,
		KeyPoints:  material.KeyPoints,
		Insights:   material.Insights,
		Examples:   material.Examples,
		CreatedAt:  at,
	}
}

func newFlashcards(documentID uuid.UUID, generated []service.GeneratedFlashcard) []*entity.Flashcard {
	cards := make([]*entity.Flashcard, 0, len(generated))
	for i, g := range generated {
		cards = append(cards, &entity.Flashcard{
			DocumentID: documentID,
			Question:   g.Question,
			Answer:     g.Answer,
			Difficulty: g.Difficulty,
			Order:      i + 1,
		})
	}

	return cards
}
