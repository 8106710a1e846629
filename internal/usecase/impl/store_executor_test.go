package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/config"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	mockRepo "lifeline/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(txManager repository.TransactionManager, maxRetries int) *storeExecutor {
	return newStoreExecutor(txManager, &config.StoreConfig{
		MaxRetries: maxRetries,
		RetryDelay: time.Millisecond,
	}, newTestLogger())
}

func TestStoreExecutor_TransientErrorRetriedThenUnavailable(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset")).
		Times(3)

	executor := newTestExecutor(txManager, 3)

	err := executor.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnavailable)
}

func TestStoreExecutor_TransientErrorRecoversOnRetry(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset")).
		Once()
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	executor := newTestExecutor(txManager, 3)

	err := executor.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	require.NoError(t, err)
}

func TestStoreExecutor_BusinessErrorIsNeverRetried(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrWrongState, "match is rejected")).
		Once()

	executor := newTestExecutor(txManager, 3)

	err := executor.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWrongState)
	assert.NotErrorIs(t, err, domainerrors.ErrUnavailable)
}

func TestStoreExecutor_ContextCancellationStopsRetries(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset")).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := newTestExecutor(txManager, 3)

	err := executor.Execute(ctx, func(repository.RepositoryFactory) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
