package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
)

const usersCollection = "users"

// UserRepository is the Firestore-backed implementation of store.UserStore.
type UserRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a user repository on top of an initialized
// Firestore client.
func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// ListUsers retrieves every document in the users collection, annotating
// each record with its document ID.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListUsers: iterating users: %w", err)
		}

		var u domain.User
		if err := doc.DataTo(&u); err != nil {
			return nil, fmt.Errorf("ListUsers: decoding user %s: %w", doc.Ref.ID, err)
		}
		u.ID = doc.Ref.ID
		users = append(users, u)
	}

	return users, nil
}

// CreateUser writes a new user document. The creation timestamp is assigned
// server-side, so the document is read back to return the stored record.
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	ref, _, err := r.client.Collection(usersCollection).Add(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("CreateUser: adding document: %w", err)
	}

	return r.readUser(ctx, ref)
}

// GetUser retrieves a single user document by ID.
func (r *UserRepository) GetUser(ctx context.Context, id string) (domain.User, error) {
	return r.readUser(ctx, r.client.Collection(usersCollection).Doc(id))
}

// UpdateUser merges the supplied fields into an existing user document and
// returns the merged record.
func (r *UserRepository) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	ref := r.client.Collection(usersCollection).Doc(id)

	var updates []firestore.Update
	if upd.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *upd.Name})
	}
	if upd.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *upd.Email})
	}

	if len(updates) > 0 {
		if _, err := ref.Update(ctx, updates); err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.User{}, store.ErrNotFound
			}
			return domain.User{}, fmt.Errorf("UpdateUser: updating document %s: %w", id, err)
		}
	}

	return r.readUser(ctx, ref)
}

// DeleteUser removes a user document by ID.
func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	ref := r.client.Collection(usersCollection).Doc(id)

	// Firestore deletes are idempotent, so check existence first to keep the
	// absent-record contract.
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return store.ErrNotFound
		}
		return fmt.Errorf("DeleteUser: reading document %s: %w", id, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("DeleteUser: deleting document %s: %w", id, err)
	}
	return nil
}

func (r *UserRepository) readUser(ctx context.Context, ref *firestore.DocumentRef) (domain.User, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("readUser: reading document %s: %w", ref.ID, err)
	}

	var u domain.User
	if err := snap.DataTo(&u); err != nil {
		return domain.User{}, fmt.Errorf("readUser: decoding document %s: %w", ref.ID, err)
	}
	u.ID = ref.ID
	return u, nil
}

var _ store.UserStore = (*UserRepository)(nil)
