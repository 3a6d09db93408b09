package infrastructure

import (
	"time"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
)

// MockExpenseRepository is an in-memory ExpenseRepository for unit tests.
type MockExpenseRepository struct {
	Expenses []domain.Expense
	nextID   int64
}

func (m *MockExpenseRepository) Save(expense *domain.Expense) error {
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindAll() ([]domain.Expense, error) {
	return m.Expenses, nil
}

func (m *MockExpenseRepository) FindByID(expenseID int64) (*domain.Expense, error) {
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			expense := m.Expenses[i]
			return &expense, nil
		}
	}
	return nil, nil
}

func (m *MockExpenseRepository) FindByUser(userID int64) ([]domain.Expense, error) {
	var result []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (m *MockExpenseRepository) FindByCategory(categoryID int64) ([]domain.Expense, error) {
	var result []domain.Expense
	for _, expense := range m.Expenses {
		if expense.CategoryID == categoryID {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (m *MockExpenseRepository) FindByUserInDateRange(userID int64, startDate, endDate time.Time) ([]domain.Expense, error) {
	var result []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID != userID || expense.Date == nil {
			continue
		}
		if expense.Date.Before(startDate) || expense.Date.After(endDate) {
			continue
		}
		result = append(result, expense)
	}
	return result, nil
}

func (m *MockExpenseRepository) SumAmountByUserInDateRange(userID int64, startDate, endDate time.Time) (float64, error) {
	expenses, _ := m.FindByUserInDateRange(userID, startDate, endDate)
	var total float64
	for _, expense := range expenses {
		if expense.Amount != nil {
			total += *expense.Amount
		}
	}
	return total, nil
}

func (m *MockExpenseRepository) Update(expense domain.Expense) error {
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID {
			m.Expenses[i] = expense
		}
	}
	return nil
}

func (m *MockExpenseRepository) Delete(expenseID int64) error {
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return nil
}
