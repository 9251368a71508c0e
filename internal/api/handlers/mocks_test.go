package handlers

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"

	"github.com/zhaosongzhu/financial-app-backend/internal/auth"
	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
)

// mockUserStore is a mock implementation of store.UserStore for testing.
type mockUserStore struct {
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)
	CreateUserFunc func(ctx context.Context, user domain.User) (domain.User, error)
	GetUserFunc    func(ctx context.Context, id string) (domain.User, error)
	UpdateUserFunc func(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)
	DeleteUserFunc func(ctx context.Context, id string) error

	createCalls int
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	m.createCalls++
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	user.ID = "user-id"
	return user, nil
}

func (m *mockUserStore) GetUser(ctx context.Context, id string) (domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return domain.User{}, nil
}

func (m *mockUserStore) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, upd)
	}
	return domain.User{}, nil
}

func (m *mockUserStore) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// mockTransactionStore is a mock implementation of store.TransactionStore.
type mockTransactionStore struct {
	ListTransactionsFunc      func(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListTransactionsSinceFunc func(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error)
	CreateTransactionFunc     func(ctx context.Context, tx domain.Transaction) (string, error)

	created []domain.Transaction
}

func (m *mockTransactionStore) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.ListTransactionsFunc != nil {
		return m.ListTransactionsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTransactionStore) ListTransactionsSince(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error) {
	if m.ListTransactionsSinceFunc != nil {
		return m.ListTransactionsSinceFunc(ctx, userID, since)
	}
	return nil, nil
}

func (m *mockTransactionStore) CreateTransaction(ctx context.Context, tx domain.Transaction) (string, error) {
	m.created = append(m.created, tx)
	if m.CreateTransactionFunc != nil {
		return m.CreateTransactionFunc(ctx, tx)
	}
	return "tx-id", nil
}

// mockGenerator is a mock implementation of ai.Generator that records calls.
type mockGenerator struct {
	GenerateTextFunc      func(ctx context.Context, prompt string) (string, error)
	GenerateWithImageFunc func(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)

	textCalls  int
	imageCalls int
	lastPrompt string
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.textCalls++
	m.lastPrompt = prompt
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}
	return "mock model response", nil
}

func (m *mockGenerator) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	m.imageCalls++
	m.lastPrompt = prompt
	if m.GenerateWithImageFunc != nil {
		return m.GenerateWithImageFunc(ctx, prompt, image, mimeType)
	}
	return "mock model response", nil
}

// mockArchiver is a mock implementation of archive.Archiver.
type mockArchiver struct {
	ArchiveReceiptFunc func(ctx context.Context, userID string, image []byte, mimeType string) (string, error)

	calls int
}

func (m *mockArchiver) ArchiveReceipt(ctx context.Context, userID string, image []byte, mimeType string) (string, error) {
	m.calls++
	if m.ArchiveReceiptFunc != nil {
		return m.ArchiveReceiptFunc(ctx, userID, image, mimeType)
	}
	return "gs://bucket/object", nil
}

// asUser attaches a verified identity to the request, the way the auth
// middleware would.
func asUser(r *http.Request, uid string) *http.Request {
	identity := &auth.Identity{UID: uid, Claims: map[string]interface{}{}}
	return r.WithContext(auth.WithIdentity(r.Context(), identity))
}

func floatPtr(v float64) *float64 { return &v }
