package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"academy/config"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4},
		Invoice: &config.InvoiceConfig{MaxAttempts: 3},
		Upload: &config.UploadConfig{
			MaxBytes:          5 << 20,
			AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
		},
	}
}

// txRepos are the repositories handed to a transaction callback.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	courseRepo   *mockRepo.MockCourseRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
}

// expectTx makes txManager run the callback once against fresh repository
// mocks and return whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) *txRepos {
	t.Helper()

	tx := &txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		courseRepo:   mockRepo.NewMockCourseRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
	}
	tx.factory.EXPECT().NewUserRepository().Return(tx.userRepo).Maybe()
	tx.factory.EXPECT().NewCourseRepository().Return(tx.courseRepo).Maybe()
	tx.factory.EXPECT().NewPurchaseRepository().Return(tx.purchaseRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		}).
		Once()

	return tx
}
