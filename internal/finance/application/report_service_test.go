package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/infrastructure"
)

func reportFixture() *infrastructure.MockExpenseRepository {
	day := func(d int) *time.Time {
		return timePtr(time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC))
	}
	return &infrastructure.MockExpenseRepository{
		Expenses: []domain.Expense{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: floatPtr(10.00), Description: "Groceries", Date: day(1)},
			{ID: 2, UserID: 1, CategoryID: 1, Amount: floatPtr(5.25), Description: "Coffee", Date: day(15)},
			{ID: 3, UserID: 1, CategoryID: 2, Amount: floatPtr(80.00), Description: "Shoes", Date: day(31)},
			{ID: 4, UserID: 1, CategoryID: 1, Amount: floatPtr(999.00), Description: "April rent", Date: timePtr(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))},
			{ID: 5, UserID: 2, CategoryID: 1, Amount: floatPtr(42.00), Description: "Someone else", Date: day(15)},
		},
	}
}

func TestGenerateExpenseReport_InclusiveBounds(t *testing.T) {
	service := NewReportService(reportFixture())

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	expenses, err := service.GenerateExpenseReport(1, start, end)
	assert.NoError(t, err)
	assert.Len(t, expenses, 3)
	for _, expense := range expenses {
		assert.Equal(t, int64(1), expense.UserID)
	}
}

func TestGenerateExpenseReport_EmptyRange(t *testing.T) {
	service := NewReportService(reportFixture())

	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	expenses, err := service.GenerateExpenseReport(1, start, end)
	assert.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestGenerateExpenseReport_InvalidArguments(t *testing.T) {
	service := NewReportService(reportFixture())
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	_, err := service.GenerateExpenseReport(0, start, end)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidUserID)

	_, err = service.GenerateExpenseReport(1, time.Time{}, end)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidDateRange)

	_, err = service.GenerateExpenseReport(1, start, time.Time{})
	assert.ErrorIs(t, err, financeErrors.ErrInvalidDateRange)

	_, err = service.GenerateExpenseReport(1, end, start)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidDateRange)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestCalculateTotalExpenses_SumsFilteredSet(t *testing.T) {
	service := NewReportService(reportFixture())

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	total, err := service.CalculateTotalExpenses(1, start, end)
	assert.NoError(t, err)
	assert.InDelta(t, 95.25, total, 0.001)
}

func TestCalculateTotalExpenses_ZeroWhenNothingMatches(t *testing.T) {
	service := NewReportService(reportFixture())

	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	total, err := service.CalculateTotalExpenses(1, start, end)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestCalculateTotalExpenses_StartAfterEnd(t *testing.T) {
	service := NewReportService(reportFixture())

	start := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.CalculateTotalExpenses(1, start, end)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidDateRange)
}
