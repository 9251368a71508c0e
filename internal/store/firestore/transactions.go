package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
)

const transactionsCollection = "transactions"

// TransactionRepository is the Firestore-backed implementation of
// store.TransactionStore.
type TransactionRepository struct {
	client *firestore.Client
}

// NewTransactionRepository creates a transaction repository on top of an
// initialized Firestore client.
func NewTransactionRepository(client *firestore.Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

// ListTransactions retrieves every transaction owned by userID.
func (r *TransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	q := r.client.Collection(transactionsCollection).Where("userId", "==", userID)
	return r.collect(ctx, q.Documents(ctx))
}

// ListTransactionsSince retrieves the transactions owned by userID dated on
// or after since. Dates are stored as "YYYY-MM-DD" strings, so the range
// filter is a lexicographic comparison.
func (r *TransactionRepository) ListTransactionsSince(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error) {
	q := r.client.Collection(transactionsCollection).
		Where("userId", "==", userID).
		Where("date", ">=", since.String())
	return r.collect(ctx, q.Documents(ctx))
}

// CreateTransaction writes a new transaction document and returns its
// store-assigned ID. The creation timestamp is assigned server-side.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx domain.Transaction) (string, error) {
	ref, _, err := r.client.Collection(transactionsCollection).Add(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("CreateTransaction: adding document: %w", err)
	}
	return ref.ID, nil
}

func (r *TransactionRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]domain.Transaction, error) {
	defer iter.Stop()

	var txs []domain.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collect: iterating transactions: %w", err)
		}
		txs = append(txs, decodeTransaction(doc.Ref.ID, doc.Data()))
	}
	return txs, nil
}

var _ store.TransactionStore = (*TransactionRepository)(nil)
