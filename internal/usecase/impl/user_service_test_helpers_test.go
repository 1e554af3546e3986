package impl

import (
	"context"
	"io"
	"log/slog"

	"satoru/config"
	"satoru/internal/domain/repository"
	mockRepo "satoru/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Documents: &config.DocumentsConfig{
			MaxUploadSize:  1 << 10,
			FlashcardCount: 20,
		},
	}
}

// repoMocks bundles the repository mocks handed out both directly and through transactions.
type repoMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	documentRepo *mockRepo.MockDocumentRepository
	studyAidRepo *mockRepo.MockStudyAidRepository
}

func newRepoMocks(t mockT) *repoMocks {
	return &repoMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		refreshRepo:  mockRepo.NewMockRefreshTokenRepository(t),
		documentRepo: mockRepo.NewMockDocumentRepository(t),
		studyAidRepo: mockRepo.NewMockStudyAidRepository(t),
	}
}

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

// expectTx runs every transaction body against the shared repository mocks
// and returns whatever the body returns.
func (m *repoMocks) expectTx() {
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()
	m.factory.EXPECT().NewAuthRepository().Return(m.authRepo).Maybe()
	m.factory.EXPECT().NewRefreshTokenRepository().Return(m.refreshRepo).Maybe()
	m.factory.EXPECT().NewDocumentRepository().Return(m.documentRepo).Maybe()
	m.factory.EXPECT().NewStudyAidRepository().Return(m.studyAidRepo).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}
