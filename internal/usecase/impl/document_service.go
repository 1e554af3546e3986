package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
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

const defaultDocumentFileName = "document.pdf"

type documentService struct {
	txManager     repository.TransactionManager
	documentRepo  repository.DocumentRepository
	studyAidRepo  repository.StudyAidRepository
	storage       service.FileStorage
	publisher     service.EventPublisher
	maxUploadSize int64
	now           func() time.Time
	logger        *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DocumentRepo repository.DocumentRepository
	StudyAidRepo repository.StudyAidRepository
	Storage      service.FileStorage
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	maxUploadSize := int64(constants.DefaultMaxUploadSize)
	if params.Config != nil && params.Config.Documents != nil && params.Config.Documents.MaxUploadSize > 0 {
		maxUploadSize = params.Config.Documents.MaxUploadSize
	}

	return &documentService{
		txManager:     params.TxManager,
		documentRepo:  params.DocumentRepo,
		studyAidRepo:  params.StudyAidRepo,
		storage:       params.Storage,
		publisher:     params.Publisher,
		maxUploadSize: maxUploadSize,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (s *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Upload stores the PDF, records the document as processing and queues it for the worker.
func (s *documentService) Upload(ctx context.Context, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	if err := s.validateUpload(input); err != nil {
		s.log(ctx).Warn("Rejected document upload", slog.String("fileName", input.FileName), slog.Any("error", err))

		return nil, err
	}

	fileName := util.SanitizeFileName(input.FileName)
	if fileName == "" {
		fileName = defaultDocumentFileName
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = util.TitleFromFileName(input.FileName)
	}

	doc := &entity.Document{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Title:     title,
		FileName:  fileName,
		FileSize:  int64(len(input.Data)),
		Status:    entity.DocumentStatusProcessing,
		CreatedAt: s.now().UTC(),
	}
	doc.StorageKey = service.DocumentObjectKey(doc.UserID.String(), doc.ID.String(), fileName)

	url, err := s.storage.Upload(ctx, doc.StorageKey, input.Data, constants.DocumentContentType)
	if err != nil {
		s.log(ctx).Error("Failed to store uploaded document", slog.String("key", doc.StorageKey), slog.Any("error", err))

		return nil, storageError(err, "failed to upload document")
	}
	doc.FileURL = url

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		if cleanupErr := s.storage.DeletePrefix(ctx, service.DocumentObjectPrefix(doc.UserID.String(), doc.ID.String())); cleanupErr != nil {
			s.log(ctx).Warn("Failed to remove orphaned upload", slog.String("key", doc.StorageKey), slog.Any("error", cleanupErr))
		}

		return nil, errors.Wrap(err, "failed to create document")
	}

	event := &service.DocumentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.DocumentEventUploaded,
		DocumentID: doc.ID.String(),
		UserID:     doc.UserID.String(),
		Document:   service.NewDocumentView(doc),
	}
	if err := s.publisher.PublishDocumentEvent(ctx, event); err != nil {
		// Nothing will pick the document up, so it must not stay in processing.
		s.log(ctx).Error("Failed to queue document for processing", slog.Any("documentID", doc.ID), slog.Any("error", err))

		doc.MarkFailed("Failed to queue document for processing", s.now().UTC())
		if updateErr := s.documentRepo.Update(ctx, doc); updateErr != nil {
			return nil, errors.Wrap(updateErr, "failed to mark unqueued document as failed")
		}
	}

	s.log(ctx).Info("Document uploaded",
		slog.Any("documentID", doc.ID),
		slog.String("size", util.FormatBytes(doc.FileSize)),
	)

	return doc, nil
}

func (s *documentService) validateUpload(input *usecase.UploadDocumentInput) error {
	if input == nil || len(input.Data) == 0 {
		return errors.WithStack(domainerrors.ErrDocumentFileMissing)
	}
	if !strings.EqualFold(filepath.Ext(input.FileName), constants.DocumentExtension) || !util.IsPDF(input.Data) {
		return errors.WithStack(domainerrors.ErrDocumentUnsupportedType)
	}
	if int64(len(input.Data)) > s.maxUploadSize {
		return errors.WithStack(domainerrors.ErrDocumentTooLarge.WithDetails(
			util.FormatBytes(int64(len(input.Data))) + " exceeds " + util.FormatBytes(s.maxUploadSize),
		))
	}

	return nil
}

// List returns the user's documents, newest first.
func (s *documentService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	docs, err := s.documentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return docs, nil
}

// Get returns the document with its summary and flashcards, when they exist.
func (s *documentService) Get(ctx context.Context, userID, documentID uuid.UUID) (*usecase.DocumentDetail, error) {
	doc, err := findOwnedDocument(ctx, s.documentRepo, userID, documentID)
	if err != nil {
		return nil, err
	}

	detail := &usecase.DocumentDetail{Document: doc, Flashcards: []*entity.Flashcard{}}

	summary, err := s.studyAidRepo.FindSummary(ctx, documentID)
	switch {
	case err == nil:
		detail.Summary = summary
	case !errors.Is(err, repository.ErrSummaryNotFound):
		return nil, errors.Wrap(err, "failed to find summary")
	}

	cards, err := s.studyAidRepo.ListFlashcards(ctx, documentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flashcards")
	}
	if cards != nil {
		detail.Flashcards = cards
	}

	return detail, nil
}

// Delete removes the stored file, the generated study material and the document.
func (s *documentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	doc, err := findOwnedDocument(ctx, s.documentRepo, userID, documentID)
	if err != nil {
		return err
	}

	if err := s.storage.DeletePrefix(ctx, service.DocumentObjectPrefix(doc.UserID.String(), doc.ID.String())); err != nil {
		s.log(ctx).Error("Failed to delete document files", slog.Any("documentID", doc.ID), slog.Any("error", err))

		return storageError(err, "failed to delete document files")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewStudyAidRepository().DeleteByDocument(ctx, doc.ID); err != nil {
			return errors.Wrap(err, "failed to delete study material")
		}
		if err := repoFactory.NewDocumentRepository().Delete(ctx, doc.ID); err != nil {
			return errors.Wrap(err, "failed to delete document")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute document deletion transaction")
	}

	s.log(ctx).Info("Document deleted", slog.Any("documentID", doc.ID))

	return nil
}

// DownloadFile reads the uploaded PDF back from file storage.
func (s *documentService) DownloadFile(ctx context.Context, userID, documentID uuid.UUID) (*usecase.DocumentFile, error) {
	doc, err := findOwnedDocument(ctx, s.documentRepo, userID, documentID)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, errors.WithStack(domainerrors.ErrDocumentNotFound.WithDetails("the stored file is missing"))
		}
		s.log(ctx).Error("Failed to read document file", slog.Any("documentID", doc.ID), slog.Any("error", err))

		return nil, storageError(err, "failed to download document")
	}

	return &usecase.DocumentFile{
		FileName:    doc.FileName,
		ContentType: constants.DocumentContentType,
		Data:        data,
	}, nil
}

// GetSummary returns the document's summary.
func (s *documentService) GetSummary(ctx context.Context, userID, documentID uuid.UUID) (*entity.Summary, error) {
	if _, err := findOwnedDocument(ctx, s.documentRepo, userID, documentID); err != nil {
		return nil, err
	}

	summary, err := s.studyAidRepo.FindSummary(ctx, documentID)
	if errors.Is(err, repository.ErrSummaryNotFound) {
		return nil, errors.Wrap(domainerrors.ErrSummaryNotFound, "failed to get summary")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get summary")
	}

	return summary, nil
}

// GetFlashcards returns the document's flashcards in order.
func (s *documentService) GetFlashcards(ctx context.Context, userID, documentID uuid.UUID) ([]*entity.Flashcard, error) {
	if _, err := findOwnedDocument(ctx, s.documentRepo, userID, documentID); err != nil {
		return nil, err
	}

	cards, err := s.studyAidRepo.ListFlashcards(ctx, documentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flashcards")
	}

	return cards, nil
}

// Stats aggregates the user's documents and flashcards.
func (s *documentService) Stats(ctx context.Context, userID uuid.UUID) (*entity.DocumentStats, error) {
	stats, err := s.documentRepo.Stats(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate documents")
	}

	stats.TotalFlashcards, err = s.studyAidRepo.CountFlashcardsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count flashcards")
	}

	return stats, nil
}
