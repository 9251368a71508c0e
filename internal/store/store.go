package store

import (
	"context"
	"errors"

	"cloud.google.com/go/civil"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
)

// ErrNotFound is returned when a lookup by ID finds no record. Handlers map
// it to a 404; every other store error is treated as a dependency failure.
var ErrNotFound = errors.New("record not found")

// UserStore provides access to the users collection.
type UserStore interface {
	// ListUsers retrieves every user record.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser persists a new user and returns it annotated with the
	// store-assigned ID and creation timestamp.
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)

	// GetUser retrieves one user by ID, or ErrNotFound.
	GetUser(ctx context.Context, id string) (domain.User, error)

	// UpdateUser merges the non-nil fields of upd into an existing user and
	// returns the merged record, or ErrNotFound.
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)

	// DeleteUser removes one user by ID, or returns ErrNotFound.
	DeleteUser(ctx context.Context, id string) error
}

// TransactionStore provides access to the transactions collection. All reads
// are scoped to a single owner.
type TransactionStore interface {
	// ListTransactions retrieves every transaction owned by userID.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsSince retrieves the transactions owned by userID whose
	// date is on or after since.
	ListTransactionsSince(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error)

	// CreateTransaction persists a new transaction and returns the
	// store-assigned ID.
	CreateTransaction(ctx context.Context, tx domain.Transaction) (string, error)
}
