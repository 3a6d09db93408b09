package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := "INSERT INTO categories (name) VALUES ($1) RETURNING id"
	return r.db.QueryRow(query, category.Name).Scan(&category.ID)
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query("SELECT id, name FROM categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID int64) (*domain.Category, error) {
	var category domain.Category
	query := "SELECT id, name FROM categories WHERE id = $1"
	err := r.db.QueryRow(query, categoryID).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec("UPDATE categories SET name = $1 WHERE id = $2", category.Name, category.ID)
	return err
}

// Delete is a no-op for an unknown id, matching the store's deleteById
// semantics. A category still referenced by expenses cannot be removed.
func (r *CategoryRepository) Delete(categoryID int64) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE id = $1", categoryID)
	if isForeignKeyViolation(err) {
		return financeErrors.ErrCategoryInUse
	}
	return err
}
