package domain

import (
	"time"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

// Expense references its owner and category by id only. Amount and Date
// are pointers so an absent field can be told apart from a zero value:
// a zero amount is legal, a missing one is not.
type Expense struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	CategoryID  int64      `json:"category_id"`
	Amount      *float64   `json:"amount"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

func (e *Expense) Validate() error {
	if e.UserID == 0 || e.CategoryID == 0 || e.Amount == nil || e.Description == "" || e.Date == nil {
		return errors.NewValidationError("expense record fields cannot be null")
	}
	return nil
}

type ExpenseRepository interface {
	Save(expense *Expense) error
	FindAll() ([]Expense, error)
	FindByID(expenseID int64) (*Expense, error)
	FindByUser(userID int64) ([]Expense, error)
	FindByCategory(categoryID int64) ([]Expense, error)
	FindByUserInDateRange(userID int64, startDate, endDate time.Time) ([]Expense, error)
	SumAmountByUserInDateRange(userID int64, startDate, endDate time.Time) (float64, error)
	Update(expense Expense) error
	Delete(expenseID int64) error
}
