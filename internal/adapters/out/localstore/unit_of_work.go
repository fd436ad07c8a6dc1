package localstore

import (
	"context"

	"storefront/internal/core/ports"
)

// LocalUnitOfWorkFactory creates unit of work instances for the single-file
// backend.
type LocalUnitOfWorkFactory struct {
	store *Store
}

// NewLocalUnitOfWorkFactory creates a factory bound to the given store.
func NewLocalUnitOfWorkFactory(store *Store) *LocalUnitOfWorkFactory {
	return &LocalUnitOfWorkFactory{store: store}
}

// Create produces a new unit of work instance.
func (f *LocalUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &LocalUnitOfWork{store: f.store}
}

// LocalUnitOfWork satisfies the unit of work contract with no-op transaction
// control: every store mutation rewrites the file atomically on its own.
type LocalUnitOfWork struct {
	store *Store
}

// Begin is a no-op for the single-file backend.
func (uow *LocalUnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op for the single-file backend.
func (uow *LocalUnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op for the single-file backend.
func (uow *LocalUnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns the file-backed order repository.
func (uow *LocalUnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.store
}
