package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/summary"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSpendingSummary_Fixture(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)

	var gotSince civil.Date
	txs := &mockTransactionStore{
		ListTransactionsSinceFunc: func(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error) {
			gotSince = since
			return []domain.Transaction{
				{UserID: userID, Category: "Food & Dining", Amount: floatPtr(10), Date: "2026-03-02"},
				{UserID: userID, Category: "Food & Dining", Amount: floatPtr(20), Date: "2026-03-10"},
				{UserID: userID, Category: "Shopping", Amount: floatPtr(5), Date: "2026-03-15"},
			}, nil
		},
	}
	gen := &mockGenerator{}

	h := NewSummaryHandler(txs, gen, zerolog.Nop())
	h.now = fixedClock(now)

	req := asUser(httptest.NewRequest(http.MethodGet, "/summary/spending", nil), "user-1")
	rec := httptest.NewRecorder()
	h.SpendingSummary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if gotSince.String() != "2026-03-01" {
		t.Errorf("since = %s, want first of month", gotSince)
	}

	var resp struct {
		Period        string                  `json:"period"`
		StartDate     string                  `json:"startDate"`
		TotalSpent    float64                 `json:"totalSpent"`
		TopCategories []summary.CategoryTotal `json:"topCategories"`
		Insights      string                  `json:"insights"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}

	if resp.Period != "monthly" {
		t.Errorf("period = %q, want monthly default", resp.Period)
	}
	if resp.TotalSpent != 35 {
		t.Errorf("totalSpent = %v, want 35", resp.TotalSpent)
	}
	want := []summary.CategoryTotal{
		{Category: "Food & Dining", TotalAmount: 30},
		{Category: "Shopping", TotalAmount: 5},
	}
	if len(resp.TopCategories) != len(want) {
		t.Fatalf("topCategories = %+v, want %+v", resp.TopCategories, want)
	}
	for i := range want {
		if resp.TopCategories[i] != want[i] {
			t.Errorf("topCategories[%d] = %+v, want %+v", i, resp.TopCategories[i], want[i])
		}
	}
	if resp.Insights == "" {
		t.Error("Expected insights text to be present")
	}
	if gen.textCalls != 1 {
		t.Errorf("inference called %d times, want 1", gen.textCalls)
	}
}

func TestSpendingSummary_PeriodParam(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC) // a Wednesday

	tests := []struct {
		period    string
		wantSince string
	}{
		{"daily", "2026-03-18"},
		{"weekly", "2026-03-16"},
		{"monthly", "2026-03-01"},
		{"WEEKLY", "2026-03-16"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			var gotSince civil.Date
			txs := &mockTransactionStore{
				ListTransactionsSinceFunc: func(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error) {
					gotSince = since
					return []domain.Transaction{{Category: "Other", Amount: floatPtr(1)}}, nil
				},
			}

			h := NewSummaryHandler(txs, &mockGenerator{}, zerolog.Nop())
			h.now = fixedClock(now)

			req := asUser(httptest.NewRequest(http.MethodGet, "/summary/spending?period="+tt.period, nil), "user-1")
			rec := httptest.NewRecorder()
			h.SpendingSummary(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if gotSince.String() != tt.wantSince {
				t.Errorf("since = %s, want %s", gotSince, tt.wantSince)
			}
		})
	}
}

func TestSpendingSummary_InvalidPeriod(t *testing.T) {
	gen := &mockGenerator{}
	h := NewSummaryHandler(&mockTransactionStore{}, gen, zerolog.Nop())

	req := asUser(httptest.NewRequest(http.MethodGet, "/summary/spending?period=yearly", nil), "user-1")
	rec := httptest.NewRecorder()
	h.SpendingSummary(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if gen.textCalls != 0 {
		t.Errorf("inference called %d times, want 0", gen.textCalls)
	}
}

func TestSpendingSummary_NoTransactionsInRange(t *testing.T) {
	gen := &mockGenerator{}
	h := NewSummaryHandler(&mockTransactionStore{}, gen, zerolog.Nop())

	req := asUser(httptest.NewRequest(http.MethodGet, "/summary/spending", nil), "user-1")
	rec := httptest.NewRecorder()
	h.SpendingSummary(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if gen.textCalls != 0 {
		t.Errorf("inference called %d times, want 0", gen.textCalls)
	}
}

func TestSpendingSummary_InferenceFailure(t *testing.T) {
	txs := &mockTransactionStore{
		ListTransactionsSinceFunc: func(ctx context.Context, userID string, since civil.Date) ([]domain.Transaction, error) {
			return []domain.Transaction{{Category: "Other", Amount: floatPtr(1)}}, nil
		},
	}
	gen := &mockGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("model overloaded")
		},
	}

	h := NewSummaryHandler(txs, gen, zerolog.Nop())

	req := asUser(httptest.NewRequest(http.MethodGet, "/summary/spending", nil), "user-1")
	rec := httptest.NewRecorder()
	h.SpendingSummary(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := decodeError(t, rec); got != "model overloaded" {
		t.Errorf("error = %q, want the raw inference error", got)
	}
}
