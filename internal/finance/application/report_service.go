package application

import (
	"time"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

type ReportService struct {
	repo domain.ExpenseRepository
}

func NewReportService(repo domain.ExpenseRepository) *ReportService {
	return &ReportService{repo: repo}
}

func validateReportArgs(userID int64, startDate, endDate time.Time) error {
	if userID <= 0 {
		return financeErrors.ErrInvalidUserID
	}
	if startDate.IsZero() || endDate.IsZero() || startDate.After(endDate) {
		return financeErrors.ErrInvalidDateRange
	}
	return nil
}

// GenerateExpenseReport returns the owner's expenses with a date inside
// [startDate, endDate], both bounds inclusive.
func (s *ReportService) GenerateExpenseReport(userID int64, startDate, endDate time.Time) ([]domain.Expense, error) {
	if err := validateReportArgs(userID, startDate, endDate); err != nil {
		return nil, err
	}
	expenses, err := s.repo.FindByUserInDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// CalculateTotalExpenses sums the amounts over the same filtered set.
// An empty set totals 0.0.
func (s *ReportService) CalculateTotalExpenses(userID int64, startDate, endDate time.Time) (float64, error) {
	if err := validateReportArgs(userID, startDate, endDate); err != nil {
		return 0, err
	}
	return s.repo.SumAmountByUserInDateRange(userID, startDate, endDate)
}
