package interfaces

import (
	"net/http"
	"strconv"
	"time"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

type ReportServiceInterface interface {
	GenerateExpenseReport(userID int64, startDate, endDate time.Time) ([]domain.Expense, error)
	CalculateTotalExpenses(userID int64, startDate, endDate time.Time) (float64, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewReportHandler(
	service ReportServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ReportHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// reportParams reads user_id plus RFC 3339 start and end query params.
// A missing or malformed value surfaces as a zero value, which the
// service rejects.
func reportParams(r *http.Request) (int64, time.Time, time.Time) {
	userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	startDate, _ := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	endDate, _ := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	return userID, startDate, endDate
}

func (h *ReportHandler) GetExpenseReport(w http.ResponseWriter, r *http.Request) {
	userID, startDate, endDate := reportParams(r)

	expenses, err := h.service.GenerateExpenseReport(userID, startDate, endDate)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to generate expense report")
		return
	}
	h.respondJSON(w, http.StatusOK, expenses)
}

func (h *ReportHandler) GetTotalExpenses(w http.ResponseWriter, r *http.Request) {
	userID, startDate, endDate := reportParams(r)

	total, err := h.service.CalculateTotalExpenses(userID, startDate, endDate)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to calculate total expenses")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]float64{"total": total})
}
