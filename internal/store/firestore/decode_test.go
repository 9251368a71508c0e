package firestore

import (
	"testing"
	"time"
)

func TestDecodeTransaction(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tx := decodeTransaction("tx-1", map[string]interface{}{
		"userId":       "user-1",
		"merchantName": "Tesco",
		"amount":       float64(12.5),
		"category":     "Food & Dining",
		"date":         "2026-03-01",
		"createdAt":    created,
	})

	if tx.ID != "tx-1" || tx.UserID != "user-1" || tx.MerchantName != "Tesco" {
		t.Errorf("unexpected identity fields: %+v", tx)
	}
	if tx.Amount == nil || *tx.Amount != 12.5 {
		t.Errorf("Amount = %v, want 12.5", tx.Amount)
	}
	if tx.Category != "Food & Dining" || tx.Date != "2026-03-01" {
		t.Errorf("unexpected category/date: %+v", tx)
	}
	if !tx.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", tx.CreatedAt, created)
	}
}

func TestDecodeTransaction_LenientFields(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{"non-numeric amount", map[string]interface{}{"amount": "twelve"}},
		{"missing amount", map[string]interface{}{}},
		{"nil amount", map[string]interface{}{"amount": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := decodeTransaction("tx-1", tt.data)
			if tx.Amount != nil {
				t.Errorf("Amount = %v, want nil", tx.Amount)
			}
		})
	}
}

func TestNumericValue(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   float64
		wantOK bool
	}{
		{"float64", float64(10.5), 10.5, true},
		{"int64", int64(20), 20, true},
		{"int", 5, 5, true},
		{"string", "10", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numericValue(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("numericValue(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
