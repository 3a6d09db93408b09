package interfaces

import (
	"errors"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

// MockCategoryService backs handler tests. ShouldFail forces the
// unclassified-error branch.
type MockCategoryService struct {
	Categories []domain.Category
	ShouldFail bool
}

var errMockFailure = errors.New("mock failure")

func (m *MockCategoryService) AddCategory(category *domain.Category) error {
	if m.ShouldFail {
		return errMockFailure
	}
	category.ID = int64(len(m.Categories)) + 1
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryService) GetAllCategories() ([]domain.Category, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	if m.Categories == nil {
		return []domain.Category{}, nil
	}
	return m.Categories, nil
}

func (m *MockCategoryService) GetCategoryByID(categoryID int64) (*domain.Category, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryService) UpdateCategory(categoryID int64, updated domain.Category) (*domain.Category, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories[i].Name = updated.Name
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID int64) error {
	if m.ShouldFail {
		return errMockFailure
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
