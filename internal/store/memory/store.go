// Package memory holds in-process implementations of the store interfaces,
// used when the gateway runs in dev mode without Firebase credentials.
// Data is lost on service restart - for persistence, use the Firestore
// repositories.
package memory

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
)

// Store keeps users and transactions in memory. It is safe for concurrent
// use and implements both store.UserStore and store.TransactionStore.
type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	userOrder    []string
	transactions map[string]domain.Transaction
	txOrder      []string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		transactions: make(map[string]domain.Transaction),
	}
}

// ListUsers returns every user in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []domain.User
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	return users, nil
}

// CreateUser assigns a generated ID and creation timestamp and stores a copy.
func (s *Store) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return domain.User{}, store.ErrNotFound
	}
	return user, nil
}

// UpdateUser merges the non-nil fields of upd into an existing user.
func (s *Store) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return domain.User{}, store.ErrNotFound
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	s.users[id] = user
	return user, nil
}

// DeleteUser removes a user by ID.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[id]; !exists {
		return store.ErrNotFound
	}
	delete(s.users, id)
	for i, uid := range s.userOrder {
		if uid == id {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ListTransactions returns every transaction owned by userID in insertion
// order.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []domain.Transaction
	for _, id := range s.txOrder {
		if tx := s.transactions[id]; tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// ListTransactionsSince returns the transactions owned by userID dated on or
// after since. Dates are "YYYY-MM-DD" strings, so string comparison matches
// chronological order.
func (s *Store) ListTransactionsSince(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error) {
	cutoff := since.String()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []domain.Transaction
	for _, id := range s.txOrder {
		if tx := s.transactions[id]; tx.UserID == userID && tx.Date >= cutoff {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// CreateTransaction assigns a generated ID and creation timestamp and stores
// a copy, returning the ID.
func (s *Store) CreateTransaction(ctx context.Context, tx domain.Transaction) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.New().String()
	tx.CreatedAt = time.Now().UTC()
	s.transactions[tx.ID] = tx
	s.txOrder = append(s.txOrder, tx.ID)
	return tx.ID, nil
}

// Ensure Store implements the store interfaces.
var (
	_ store.UserStore        = (*Store)(nil)
	_ store.TransactionStore = (*Store)(nil)
)
