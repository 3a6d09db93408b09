package infrastructure

import (
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
)

// MockCategoryRepository is an in-memory CategoryRepository for unit tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	nextID     int64
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	return m.Categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID int64) (*domain.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = category
		}
	}
	return nil
}

func (m *MockCategoryRepository) Delete(categoryID int64) error {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
