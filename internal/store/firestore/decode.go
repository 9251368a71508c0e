package firestore

import (
	"time"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
)

// decodeTransaction maps a raw transaction document onto the domain struct.
// Documents written by earlier revisions of the app are not uniformly typed,
// so decoding is lenient: a non-numeric amount becomes nil (the record still
// lists, but is excluded from summary totals) and unexpected field types
// degrade to zero values instead of failing the whole read.
func decodeTransaction(id string, data map[string]interface{}) domain.Transaction {
	tx := domain.Transaction{ID: id}

	if v, ok := data["userId"].(string); ok {
		tx.UserID = v
	}
	if v, ok := data["merchantName"].(string); ok {
		tx.MerchantName = v
	}
	if v, ok := data["category"].(string); ok {
		tx.Category = v
	}
	if v, ok := data["date"].(string); ok {
		tx.Date = v
	}
	if v, ok := data["createdAt"].(time.Time); ok {
		tx.CreatedAt = v
	}
	if amount, ok := numericValue(data["amount"]); ok {
		tx.Amount = &amount
	}

	return tx
}

// numericValue coerces the numeric types Firestore can hand back for a
// number field. Anything else (strings, maps, nil) reports false.
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
