package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back. Otherwise, it's
	// committed. All repository operations obtained from the factory use the
	// same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// ChocolateRepo returns a ChocolateRepository bound to the current transaction.
	ChocolateRepo() ChocolateRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository
}
