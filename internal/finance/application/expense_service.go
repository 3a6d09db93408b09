package application

import (
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

// UserServiceInterface is the slice of the user service the expense
// service needs for owner existence checks.
type UserServiceInterface interface {
	DoesUserExistByID(userID int64) (bool, error)
}

type ExpenseService struct {
	repo        domain.ExpenseRepository
	userService UserServiceInterface
}

func NewExpenseService(repo domain.ExpenseRepository, userService UserServiceInterface) *ExpenseService {
	return &ExpenseService{repo: repo, userService: userService}
}

func (s *ExpenseService) AddExpense(expense *domain.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}
	return s.repo.Save(expense)
}

// EditExpense is a full-replace update: every field of updated must be
// supplied. An unknown id is signaled the same way as a validation
// failure. The identifier and owning user of the stored record survive
// the edit.
func (s *ExpenseService) EditExpense(expenseID int64, updated *domain.Expense) (*domain.Expense, error) {
	if updated == nil {
		return nil, financeErrors.NewValidationError("update expense record fields cannot be null")
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(expenseID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.ErrExpenseNotFound
	}

	existing.Amount = updated.Amount
	existing.Description = updated.Description
	existing.CategoryID = updated.CategoryID
	existing.Date = updated.Date
	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteExpense returns false, not an error, when nothing was there.
func (s *ExpenseService) DeleteExpense(expenseID int64) (bool, error) {
	existing, err := s.repo.FindByID(expenseID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := s.repo.Delete(expenseID); err != nil {
		return false, err
	}
	return true, nil
}

// GetExpenseByID returns nil without an error when no expense exists.
func (s *ExpenseService) GetExpenseByID(expenseID int64) (*domain.Expense, error) {
	return s.repo.FindByID(expenseID)
}

func (s *ExpenseService) GetAllExpenses() ([]domain.Expense, error) {
	return s.repo.FindAll()
}

func (s *ExpenseService) GetExpensesByUserID(userID int64) ([]domain.Expense, error) {
	if userID <= 0 {
		return nil, financeErrors.ErrInvalidUserID
	}

	exists, err := s.userService.DoesUserExistByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrExpenseOwnerNotFound
	}

	return s.repo.FindByUser(userID)
}

func (s *ExpenseService) GetExpensesByCategoryID(categoryID int64) ([]domain.Expense, error) {
	return s.repo.FindByCategory(categoryID)
}
