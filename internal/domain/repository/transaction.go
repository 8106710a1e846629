package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to run multi-record units of work without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside a unit of work shares one
// database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewRequestRepository returns a RequestRepository bound to the current transaction.
	NewRequestRepository() RequestRepository

	// NewMatchRepository returns a MatchRepository bound to the current transaction.
	NewMatchRepository() MatchRepository

	// NewNotificationRepository returns a NotificationRepository bound to the current transaction.
	NewNotificationRepository() NotificationRepository
}
