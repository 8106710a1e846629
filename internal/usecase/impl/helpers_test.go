package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// newTestConfig returns a config with the default matching policy and a
// single store attempt, so tests never sit in retry loops.
func newTestConfig() *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{
			RadiusKm:       100,
			CooldownDays:   90,
			LocationMaxAge: 15 * time.Minute,
		},
		Store: &config.StoreConfig{
			MaxRetries: 1,
			RetryDelay: time.Millisecond,
		},
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoFixtures bundles all repository mocks behind one factory. Factory
// lookups are optional so a test only has to stub the repos it touches.
type repoFixtures struct {
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	requestRepo      *mockRepo.MockRequestRepository
	matchRepo        *mockRepo.MockMatchRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	fixtures := &repoFixtures{
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		requestRepo:      mockRepo.NewMockRequestRepository(t),
		matchRepo:        mockRepo.NewMockMatchRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
	}

	fixtures.factory.EXPECT().NewUserRepository().Return(fixtures.userRepo).Maybe()
	fixtures.factory.EXPECT().NewRequestRepository().Return(fixtures.requestRepo).Maybe()
	fixtures.factory.EXPECT().NewMatchRepository().Return(fixtures.matchRepo).Maybe()
	fixtures.factory.EXPECT().NewNotificationRepository().Return(fixtures.notificationRepo).Maybe()

	return fixtures
}

// stubTransaction wires the transaction manager to run units of work against
// the fixture factory, propagating the unit's error like the real manager.
func stubTransaction(txManager *mockRepo.MockTransactionManager, fixtures *repoFixtures) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fixtures.factory)
		}).
		Maybe()
}
