package domain

import (
	"time"
)

// Transaction is one spending record owned by a single user. The owner is
// always derived from the authenticated caller, never taken from a request
// body. Date travels on the wire as a "YYYY-MM-DD" string.
//
// Amount is a pointer because documents written by earlier revisions of the
// app occasionally carry non-numeric amounts; those decode to nil and are
// excluded from summary totals without failing the whole read.
type Transaction struct {
	ID           string    `json:"id" firestore:"-"`
	UserID       string    `json:"userId" firestore:"userId"`
	MerchantName string    `json:"merchantName" firestore:"merchantName"`
	Amount       *float64  `json:"amount,omitempty" firestore:"amount"`
	Category     string    `json:"category" firestore:"category"`
	Date         string    `json:"date" firestore:"date"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
