package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	mockSvc "satoru/internal/mocks/service"
	"satoru/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var samplePDF = []byte("%PDF-1.7\n1 0 obj << /Type /Pages /Count 3 >> endobj\n%%EOF")

type documentServiceFixtures struct {
	service   *documentService
	repos     *repoMocks
	storage   *mockSvc.MockFileStorage
	publisher *mockSvc.MockEventPublisher
}

func createTestDocumentService(t *testing.T) documentServiceFixtures {
	repos := newRepoMocks(t)
	storage := mockSvc.NewMockFileStorage(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewDocumentService(DocumentServiceParams{
		TxManager:    repos.txManager,
		DocumentRepo: repos.documentRepo,
		StudyAidRepo: repos.studyAidRepo,
		Storage:      storage,
		Publisher:    publisher,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	}).(*documentService)
	svc.now = func() time.Time { return testNow }

	return documentServiceFixtures{
		service:   svc,
		repos:     repos,
		storage:   storage,
		publisher: publisher,
	}
}

func TestDocumentService_Upload_Success(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "documents/"+userID.String()+"/") && strings.HasSuffix(key, "/Lecture_Notes.pdf")
		}), samplePDF, "application/pdf").
		Return("mem://documents/lecture.pdf", nil)
	fx.repos.documentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(doc *entity.Document) bool {
			return doc.UserID == userID && doc.Status == entity.DocumentStatusProcessing
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishDocumentEvent(ctx, mock.MatchedBy(func(event *service.DocumentEvent) bool {
			return event.Type == service.DocumentEventUploaded && event.UserID == userID.String()
		})).
		Return(nil)

	doc, err := fx.service.Upload(ctx, &usecase.UploadDocumentInput{
		UserID:   userID,
		FileName: "Lecture Notes.pdf",
		Data:     samplePDF,
	})

	require.NoError(t, err)
	assert.Equal(t, "Lecture Notes", doc.Title)
	assert.Equal(t, "Lecture_Notes.pdf", doc.FileName)
	assert.Equal(t, int64(len(samplePDF)), doc.FileSize)
	assert.Equal(t, "mem://documents/lecture.pdf", doc.FileURL)
	assert.Equal(t, entity.DocumentStatusProcessing, doc.Status)
	assert.Equal(t, service.DocumentObjectKey(userID.String(), doc.ID.String(), "Lecture_Notes.pdf"), doc.StorageKey)
}

func TestDocumentService_Upload_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.UploadDocumentInput
		wantErr error
	}{
		{
			name:    "missing file",
			input:   &usecase.UploadDocumentInput{FileName: "a.pdf"},
			wantErr: domainerrors.ErrDocumentFileMissing,
		},
		{
			name:    "wrong extension",
			input:   &usecase.UploadDocumentInput{FileName: "a.docx", Data: samplePDF},
			wantErr: domainerrors.ErrDocumentUnsupportedType,
		},
		{
			name:    "not a pdf",
			input:   &usecase.UploadDocumentInput{FileName: "a.pdf", Data: []byte("plain text")},
			wantErr: domainerrors.ErrDocumentUnsupportedType,
		},
		{
			name:    "too large",
			input:   &usecase.UploadDocumentInput{FileName: "a.pdf", Data: append([]byte("%PDF-"), make([]byte, 2048)...)},
			wantErr: domainerrors.ErrDocumentTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDocumentService(t)

			doc, err := fx.service.Upload(context.Background(), tt.input)

			assert.Nil(t, doc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentService_Upload_StorageFailure(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	fx.storage.EXPECT().Upload(ctx, mock.Anything, samplePDF, "application/pdf").Return("", errors.New("bucket unavailable"))

	_, err := fx.service.Upload(ctx, &usecase.UploadDocumentInput{UserID: uuid.New(), FileName: "a.pdf", Data: samplePDF})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	assert.True(t, usecase.IsRetryable(err))
}

func TestDocumentService_Upload_CreateFailureRemovesFile(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.storage.EXPECT().Upload(ctx, mock.Anything, samplePDF, "application/pdf").Return("url", nil)
	fx.repos.documentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("insert failed"), "failed to create document"))
	fx.storage.EXPECT().
		DeletePrefix(ctx, mock.MatchedBy(func(prefix string) bool {
			return strings.HasPrefix(prefix, "documents/"+userID.String()+"/")
		})).
		Return(nil)

	_, err := fx.service.Upload(ctx, &usecase.UploadDocumentInput{UserID: userID, FileName: "a.pdf", Data: samplePDF})

	require.Error(t, err)
	assert.True(t, usecase.IsRetryable(err))
}

func TestDocumentService_Upload_PublishFailureMarksFailed(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	fx.storage.EXPECT().Upload(ctx, mock.Anything, samplePDF, "application/pdf").Return("url", nil)
	fx.repos.documentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Document")).Return(nil)
	fx.publisher.EXPECT().PublishDocumentEvent(ctx, mock.Anything).Return(errors.New("topic not found"))
	fx.repos.documentRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(doc *entity.Document) bool {
			return doc.Status == entity.DocumentStatusFailed
		})).
		Return(nil)

	doc, err := fx.service.Upload(ctx, &usecase.UploadDocumentInput{UserID: uuid.New(), Title: "Notes", FileName: "a.pdf", Data: samplePDF})

	require.NoError(t, err)
	assert.Equal(t, "Notes", doc.Title)
	assert.Equal(t, entity.DocumentStatusFailed, doc.Status)
	assert.Equal(t, "Failed to queue document for processing", doc.Error)
}

func TestDocumentService_Get(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New(), Status: entity.DocumentStatusProcessing}

	fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
	fx.repos.studyAidRepo.EXPECT().FindSummary(ctx, doc.ID).Return(nil, repository.ErrSummaryNotFound)
	fx.repos.studyAidRepo.EXPECT().ListFlashcards(ctx, doc.ID).Return(nil, nil)

	detail, err := fx.service.Get(ctx, doc.UserID, doc.ID)

	require.NoError(t, err)
	assert.Same(t, doc, detail.Document)
	assert.Nil(t, detail.Summary)
	assert.NotNil(t, detail.Flashcards)
	assert.Empty(t, detail.Flashcards)
}

func TestDocumentService_Get_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		found   *entity.Document
		findErr error
		wantErr error
	}{
		{
			name:    "unknown document",
			findErr: repository.ErrDocumentNotFound,
			wantErr: domainerrors.ErrDocumentNotFound,
		},
		{
			name:    "another user's document",
			found:   &entity.Document{ID: uuid.New(), UserID: uuid.New()},
			wantErr: domainerrors.ErrDocumentForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDocumentService(t)
			ctx := context.Background()
			documentID := uuid.New()

			fx.repos.documentRepo.EXPECT().FindByID(ctx, documentID).Return(tt.found, tt.findErr)

			_, err := fx.service.Get(ctx, uuid.New(), documentID)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentService_Delete(t *testing.T) {
	fx := createTestDocumentService(t)
	fx.repos.expectTx()
	ctx := context.Background()
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New()}

	fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
	fx.storage.EXPECT().DeletePrefix(ctx, service.DocumentObjectPrefix(doc.UserID.String(), doc.ID.String())).Return(nil)
	fx.repos.studyAidRepo.EXPECT().DeleteByDocument(ctx, doc.ID).Return(nil)
	fx.repos.documentRepo.EXPECT().Delete(ctx, doc.ID).Return(nil)

	err := fx.service.Delete(ctx, doc.UserID, doc.ID)

	assert.NoError(t, err)
}

func TestDocumentService_Delete_StorageFailureKeepsRecord(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New()}

	fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
	fx.storage.EXPECT().DeletePrefix(ctx, mock.Anything).Return(errors.New("permission denied"))

	err := fx.service.Delete(ctx, doc.UserID, doc.ID)

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestDocumentService_DownloadFile(t *testing.T) {
	tests := []struct {
		name        string
		downloadErr error
		wantErr     error
	}{
		{name: "stored file"},
		{name: "missing object", downloadErr: errors.Wrap(service.ErrObjectNotFound, "documents/x"), wantErr: domainerrors.ErrDocumentNotFound},
		{name: "storage failure", downloadErr: errors.New("connection reset"), wantErr: domainerrors.ErrStorageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDocumentService(t)
			ctx := context.Background()
			doc := &entity.Document{ID: uuid.New(), UserID: uuid.New(), FileName: "notes.pdf", StorageKey: "documents/u/d/notes.pdf"}

			fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
			var data []byte
			if tt.downloadErr == nil {
				data = samplePDF
			}
			fx.storage.EXPECT().Download(ctx, doc.StorageKey).Return(data, tt.downloadErr)

			file, err := fx.service.DownloadFile(ctx, doc.UserID, doc.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "notes.pdf", file.FileName)
			assert.Equal(t, "application/pdf", file.ContentType)
			assert.Equal(t, samplePDF, file.Data)
		})
	}
}

func TestDocumentService_DownloadFile_Forbidden(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New()}

	fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)

	_, err := fx.service.DownloadFile(ctx, uuid.New(), doc.ID)

	assert.ErrorIs(t, err, domainerrors.ErrDocumentForbidden)
}

func TestDocumentService_GetSummary_NotGenerated(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New()}

	fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
	fx.repos.studyAidRepo.EXPECT().FindSummary(ctx, doc.ID).Return(nil, repository.ErrSummaryNotFound)

	_, err := fx.service.GetSummary(ctx, doc.UserID, doc.ID)

	assert.ErrorIs(t, err, domainerrors.ErrSummaryNotFound)
}

func TestDocumentService_GetFlashcards(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New()}
	cards := []*entity.Flashcard{{Question: "Q1", Answer: "A1", Order: 1}}

	fx.repos.documentRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
	fx.repos.studyAidRepo.EXPECT().ListFlashcards(ctx, doc.ID).Return(cards, nil)

	got, err := fx.service.GetFlashcards(ctx, doc.UserID, doc.ID)

	require.NoError(t, err)
	assert.Equal(t, cards, got)
}

func TestDocumentService_Stats(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repos.documentRepo.EXPECT().Stats(ctx, userID).Return(&entity.DocumentStats{
		TotalDocuments: 3,
		Completed:      2,
		Processing:     1,
		TotalPages:     40,
	}, nil)
	fx.repos.studyAidRepo.EXPECT().CountFlashcardsByUser(ctx, userID).Return(int64(42), nil)

	stats, err := fx.service.Stats(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDocuments)
	assert.Equal(t, int64(42), stats.TotalFlashcards)
}
