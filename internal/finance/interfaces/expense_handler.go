package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

type ExpenseServiceInterface interface {
	AddExpense(expense *domain.Expense) error
	EditExpense(expenseID int64, updated *domain.Expense) (*domain.Expense, error)
	DeleteExpense(expenseID int64) (bool, error)
	GetExpenseByID(expenseID int64) (*domain.Expense, error)
	GetAllExpenses() ([]domain.Expense, error)
	GetExpensesByUserID(userID int64) ([]domain.Expense, error)
	GetExpensesByCategoryID(categoryID int64) ([]domain.Expense, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense domain.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.AddExpense(&expense); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error during expense creation: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, expense)
}

// GetExpenses lists the collection, optionally filtered by user_id or
// category_id. An empty result answers 204 with no body; a filter naming
// an unknown owner answers 404, matching the collection read path.
func (h *ExpenseHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.listExpenses(r)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	if len(expenses) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) listExpenses(r *http.Request) ([]domain.Expense, error) {
	if rawUserID := r.URL.Query().Get("user_id"); rawUserID != "" {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			return nil, financeErrors.ErrInvalidUserID
		}
		return h.service.GetExpensesByUserID(userID)
	}
	if rawCategoryID := r.URL.Query().Get("category_id"); rawCategoryID != "" {
		categoryID, err := strconv.ParseInt(rawCategoryID, 10, 64)
		if err != nil {
			return nil, financeErrors.NewValidationError("invalid category ID")
		}
		return h.service.GetExpensesByCategoryID(categoryID)
	}
	return h.service.GetAllExpenses()
}

func (h *ExpenseHandler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDPathValue(r, "expenseID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	expense, err := h.service.GetExpenseByID(expenseID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve expense")
		return
	}
	if expense == nil {
		h.respondError(w, http.StatusNotFound, "Expense not found")
		return
	}
	h.respondJSON(w, http.StatusOK, expense)
}

// UpdateExpense answers 400 for an unknown id, not 404: the service
// signals the miss as a validation failure and this path keeps that
// mapping, unlike the category update path.
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDPathValue(r, "expenseID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	var updated domain.Expense
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.EditExpense(expenseID, &updated)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update expense")
		return
	}
	h.respondJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDPathValue(r, "expenseID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	deleted, err := h.service.DeleteExpense(expenseID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if !deleted {
		h.respondError(w, http.StatusNotFound, "Expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
