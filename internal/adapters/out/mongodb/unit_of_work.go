package mongodb

import (
	"context"

	"storefront/internal/core/ports"
)

// MongoUnitOfWorkFactory creates unit of work instances for the document
// backend.
type MongoUnitOfWorkFactory struct {
	repo ports.OrderRepository
}

// NewMongoUnitOfWorkFactory creates a factory bound to the given repository.
func NewMongoUnitOfWorkFactory(repo ports.OrderRepository) *MongoUnitOfWorkFactory {
	return &MongoUnitOfWorkFactory{repo: repo}
}

// Create produces a new unit of work instance.
func (f *MongoUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MongoUnitOfWork{repo: f.repo}
}

// MongoUnitOfWork satisfies the unit of work contract with no-op transaction
// control. Every repository call against the collection is atomic on its own,
// and the storefront never mutates more than one order per business operation.
type MongoUnitOfWork struct {
	repo ports.OrderRepository
}

// Begin is a no-op for the document backend.
func (uow *MongoUnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op for the document backend.
func (uow *MongoUnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op for the document backend.
func (uow *MongoUnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns the collection-backed order repository.
func (uow *MongoUnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.repo
}
