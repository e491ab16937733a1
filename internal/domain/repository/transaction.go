package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	OrderRepo() OrderRepository
	ProductRepo() ProductRepository
	UserRepo() UserRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. Checkout uses it so the order row and its items commit or
// roll back together.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
