package repository

import "context"

// TransactionManager runs use case logic inside a single database transaction
// without the use case depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. A non-nil error from fn rolls
	// everything back, otherwise the transaction is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	SellerRepo() SellerRepository
	PropertyRepo() PropertyRepository
}
