package application

import (
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// AddCategory persists the category and assigns its id. The service does
// no validation of its own; the handler rejects an unreadable body before
// this point.
func (s *CategoryService) AddCategory(category *domain.Category) error {
	return s.repo.Save(category)
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// GetCategoryByID returns nil without an error when no category exists.
func (s *CategoryService) GetCategoryByID(categoryID int64) (*domain.Category, error) {
	return s.repo.FindByID(categoryID)
}

// UpdateCategory overwrites the name field only, keeping the identifier.
func (s *CategoryService) UpdateCategory(categoryID int64, updated domain.Category) (*domain.Category, error) {
	existing, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.ErrCategoryNotFound
	}

	existing.Name = updated.Name
	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory deletes by identifier and does not report a missing id.
func (s *CategoryService) DeleteCategory(categoryID int64) error {
	return s.repo.Delete(categoryID)
}
