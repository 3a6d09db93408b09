package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/domain"
	financeErrors "github.com/InfiniteSkipper55/expense-tracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	AddCategory(category *domain.Category) error
	GetAllCategories() ([]domain.Category, error)
	GetCategoryByID(categoryID int64) (*domain.Category, error)
	UpdateCategory(categoryID int64, updated domain.Category) (*domain.Category, error)
	DeleteCategory(categoryID int64) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func parseIDPathValue(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.AddCategory(&category); err != nil {
		log.Printf("Error during category creation: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, category)
}

// GetAllCategories answers 200 with an empty list when nothing exists,
// unlike the expense collection which answers 204.
func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, _ *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDPathValue(r, "categoryID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategoryByID(categoryID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category")
		return
	}
	if category == nil {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

// UpdateCategory maps the service's validation-kind "category not found"
// to 404 rather than 400. Clients depend on this exact mapping.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDPathValue(r, "categoryID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var updated domain.Category
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(categoryID, updated)
	if err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDPathValue(r, "categoryID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(categoryID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryInUse) {
			h.respondError(w, http.StatusConflict, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
