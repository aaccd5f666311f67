package repository

import "context"

// TransactionManager runs use case steps atomically. Purchases and edits of a
// user's course lists use it so ledger rows and lists change together.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCourseRepository() CourseRepository
	NewPurchaseRepository() PurchaseRepository
}
