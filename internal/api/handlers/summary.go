package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/ai"
	"github.com/zhaosongzhu/financial-app-backend/internal/api/middleware"
	"github.com/zhaosongzhu/financial-app-backend/internal/auth"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
	"github.com/zhaosongzhu/financial-app-backend/internal/summary"
)

// SummaryHandler computes spending summaries and asks the inference service
// for a free-text commentary on them.
type SummaryHandler struct {
	txs store.TransactionStore
	gen ai.Generator
	log zerolog.Logger
	now func() time.Time
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(txs store.TransactionStore, gen ai.Generator, log zerolog.Logger) *SummaryHandler {
	return &SummaryHandler{
		txs: txs,
		gen: gen,
		log: log,
		now: time.Now,
	}
}

// SpendingSummary handles GET /summary/spending?period=
func (h *SummaryHandler) SpendingSummary(w http.ResponseWriter, r *http.Request) {
	if h.txs == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.MissingBearerMessage)
		return
	}

	period, err := summary.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := period.Start(h.now())

	txs, err := h.txs.ListTransactionsSince(r.Context(), identity.UID, start)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", identity.UID).Msg("Failed to query transactions for summary")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to query transactions")
		return
	}

	if len(txs) == 0 {
		middleware.WriteError(w, http.StatusNotFound, "No transactions found for this period")
		return
	}

	total, categories := summary.Aggregate(txs)

	if h.gen == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "AI inference client is not initialized")
		return
	}

	insights, err := h.gen.GenerateText(r.Context(), ai.InsightsPrompt(string(period), total, categories))
	if err != nil {
		h.log.Error().Err(err).Str("user_id", identity.UID).Msg("Insights generation failed")
		middleware.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"period":        period,
		"startDate":     start.String(),
		"totalSpent":    total,
		"topCategories": categories,
		"insights":      insights,
	})
}
