package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/api/middleware"
	"github.com/zhaosongzhu/financial-app-backend/internal/auth"
	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
)

// TransactionsHandler handles transaction-related endpoints. All operations
// are scoped to the authenticated caller.
type TransactionsHandler struct {
	txs store.TransactionStore
	log zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(txs store.TransactionStore, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{
		txs: txs,
		log: log,
	}
}

// ListTransactions handles GET /transactions
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if h.txs == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.MissingBearerMessage)
		return
	}

	txs, err := h.txs.ListTransactions(r.Context(), identity.UID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", identity.UID).Msg("Failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	if len(txs) == 0 {
		middleware.WriteError(w, http.StatusNotFound, "No transactions found")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, txs)
}

// CreateTransaction handles POST /transactions
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	if h.txs == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.MissingBearerMessage)
		return
	}

	// The body may carry a userId; it is ignored on purpose. Ownership comes
	// from the verified token only.
	var req struct {
		Amount       *float64 `json:"amount"`
		Category     string   `json:"category"`
		Date         string   `json:"date"`
		MerchantName string   `json:"merchantName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Required fields are checked in a fixed order; the first missing one
	// names the 400.
	switch {
	case req.Amount == nil:
		middleware.WriteError(w, http.StatusBadRequest, "amount is required")
		return
	case strings.TrimSpace(req.Category) == "":
		middleware.WriteError(w, http.StatusBadRequest, "category is required")
		return
	case strings.TrimSpace(req.Date) == "":
		middleware.WriteError(w, http.StatusBadRequest, "date is required")
		return
	case strings.TrimSpace(req.MerchantName) == "":
		middleware.WriteError(w, http.StatusBadRequest, "merchantName is required")
		return
	}

	date, err := civil.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	category, ok := domain.CanonicalCategory(req.Category)
	if !ok {
		middleware.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid category: %q", req.Category))
		return
	}

	id, err := h.txs.CreateTransaction(r.Context(), domain.Transaction{
		UserID:       identity.UID,
		MerchantName: strings.TrimSpace(req.MerchantName),
		Amount:       req.Amount,
		Category:     category,
		Date:         date.String(),
	})
	if err != nil {
		h.log.Error().Err(err).Str("user_id", identity.UID).Msg("Failed to create transaction")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.log.Info().Str("transaction_id", id).Str("user_id", identity.UID).Msg("Transaction created")
	middleware.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}
