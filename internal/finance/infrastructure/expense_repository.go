package infrastructure

import (
	"database/sql"
	"errors"
	"time"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (user_id, category_id, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(query, expense.UserID, expense.CategoryID, expense.Amount, expense.Description, expense.Date).Scan(&expense.ID)
}

func (r *ExpenseRepository) FindAll() ([]domain.Expense, error) {
	return r.queryExpenses("SELECT id, user_id, category_id, amount, description, date FROM expenses")
}

func (r *ExpenseRepository) FindByID(expenseID int64) (*domain.Expense, error) {
	var expense domain.Expense
	query := "SELECT id, user_id, category_id, amount, description, date FROM expenses WHERE id = $1"
	err := r.db.QueryRow(query, expenseID).Scan(&expense.ID, &expense.UserID, &expense.CategoryID, &expense.Amount, &expense.Description, &expense.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) FindByUser(userID int64) ([]domain.Expense, error) {
	return r.queryExpenses("SELECT id, user_id, category_id, amount, description, date FROM expenses WHERE user_id = $1", userID)
}

func (r *ExpenseRepository) FindByCategory(categoryID int64) ([]domain.Expense, error) {
	return r.queryExpenses("SELECT id, user_id, category_id, amount, description, date FROM expenses WHERE category_id = $1", categoryID)
}

// FindByUserInDateRange returns the owner's expenses with
// startDate <= date <= endDate, both bounds inclusive.
func (r *ExpenseRepository) FindByUserInDateRange(userID int64, startDate, endDate time.Time) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, category_id, amount, description, date
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`
	return r.queryExpenses(query, userID, startDate, endDate)
}

func (r *ExpenseRepository) SumAmountByUserInDateRange(userID int64, startDate, endDate time.Time) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`
	err := r.db.QueryRow(query, userID, startDate, endDate).Scan(&total)
	return total, err
}

func (r *ExpenseRepository) Update(expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET user_id = $1, category_id = $2, amount = $3, description = $4, date = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(query, expense.UserID, expense.CategoryID, expense.Amount, expense.Description, expense.Date, expense.ID)
	return err
}

func (r *ExpenseRepository) Delete(expenseID int64) error {
	_, err := r.db.Exec("DELETE FROM expenses WHERE id = $1", expenseID)
	return err
}

func (r *ExpenseRepository) queryExpenses(query string, args ...interface{}) ([]domain.Expense, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.CategoryID, &expense.Amount, &expense.Description, &expense.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}
