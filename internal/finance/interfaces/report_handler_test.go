package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/application"
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/infrastructure"
)

func newReportHandler() *ReportHandler {
	day := func(d int) *time.Time {
		v := time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	repo := &infrastructure.MockExpenseRepository{
		Expenses: []domain.Expense{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: testAmount(10), Description: "Groceries", Date: day(1)},
			{ID: 2, UserID: 1, CategoryID: 2, Amount: testAmount(5.25), Description: "Coffee", Date: day(15)},
			{ID: 3, UserID: 2, CategoryID: 1, Amount: testAmount(42), Description: "Someone else", Date: day(15)},
		},
	}
	return NewReportHandler(application.NewReportService(repo), respondJSON, respondError)
}

func TestGetExpenseReport_OK(t *testing.T) {
	handler := newReportHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/expenses?user_id=1&start=2024-03-01T00:00:00Z&end=2024-03-31T00:00:00Z", nil)
	handler.GetExpenseReport(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var expenses []domain.Expense
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&expenses))
	assert.Len(t, expenses, 2)
}

func TestGetExpenseReport_StartAfterEndIs400(t *testing.T) {
	handler := newReportHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/expenses?user_id=1&start=2024-03-31T00:00:00Z&end=2024-03-01T00:00:00Z", nil)
	handler.GetExpenseReport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetExpenseReport_MissingParamsIs400(t *testing.T) {
	handler := newReportHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/expenses", nil)
	handler.GetExpenseReport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetTotalExpenses_OK(t *testing.T) {
	handler := newReportHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/total?user_id=1&start=2024-03-01T00:00:00Z&end=2024-03-31T00:00:00Z", nil)
	handler.GetTotalExpenses(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload map[string]float64
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.InDelta(t, 15.25, payload["total"], 0.001)
}

func TestGetTotalExpenses_EmptySetIsZero(t *testing.T) {
	handler := newReportHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/total?user_id=1&start=2020-01-01T00:00:00Z&end=2020-12-31T00:00:00Z", nil)
	handler.GetTotalExpenses(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload map[string]float64
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.Equal(t, 0.0, payload["total"])
}
