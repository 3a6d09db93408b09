package domain

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRepository interface {
	Save(category *Category) error
	FindAll() ([]Category, error)
	FindByID(categoryID int64) (*Category, error)
	Update(category Category) error
	Delete(categoryID int64) error
}
