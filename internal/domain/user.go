package domain

import (
	"time"
)

// User is an account record in the users collection. The ID is assigned by
// the store (Firestore document ID, or a generated UUID in the in-memory
// store) and never supplied by clients.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// UserUpdate carries a partial update: nil fields are left untouched.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
