// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeline/config"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
)

// storeExecutor runs units of work against the store with bounded retries.
// Business errors (anything carrying an AppError) are surfaced immediately;
// only transient store failures are retried, and exhaustion is reported as
// ErrUnavailable so callers can distinguish it from a rejected precondition.
type storeExecutor struct {
	txManager repository.TransactionManager
	store     *config.StoreConfig
	logger    *slog.Logger
}

func newStoreExecutor(txManager repository.TransactionManager, store *config.StoreConfig, logger *slog.Logger) *storeExecutor {
	return &storeExecutor{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Execute runs fn within a transaction, retrying transient failures. fn must
// be safe to re-run: each attempt sees a fresh transaction.
func (e *storeExecutor) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var lastErr error

	for attempt := 1; attempt <= e.store.MaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "store retry aborted")
			case <-time.After(e.store.RetryDelay):
			}
		}

		err := e.txManager.Execute(ctx, fn)
		if err == nil {
			return nil
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		lastErr = err
		e.logger.Warn("transient store error", "attempt", attempt, "error", err)
	}

	return errors.Wrap(domainerrors.ErrUnavailable, lastErr.Error())
}
