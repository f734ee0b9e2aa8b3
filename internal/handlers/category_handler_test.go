package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type mockCategoryService struct {
	getCategoriesFn       func() ([]models.Category, error)
	getCategoriesByTypeFn func(categoryType models.CategoryType) ([]models.Category, error)
	getCategoryByIDFn     func(id uint) (*models.Category, error)
}

func (m *mockCategoryService) GetCategories() ([]models.Category, error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn()
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoriesByType(categoryType models.CategoryType) ([]models.Category, error) {
	if m.getCategoriesByTypeFn != nil {
		return m.getCategoriesByTypeFn(categoryType)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{}, nil
}

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	group := r.Group("/categories", injectUserID(1))
	group.GET("", handler.GetCategories)
	group.GET("/type/:type", handler.GetCategoriesByType)
	return r
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	t.Run("returns categories with count", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoriesFn: func() ([]models.Category, error) {
				return []models.Category{
					{Base: models.Base{ID: 1}, Name: "Bills", Type: models.CategoryTypeExpense},
					{Base: models.Base{ID: 2}, Name: "Salary", Type: models.CategoryTypeIncome},
				}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["count"] != float64(2) {
			t.Errorf("expected count 2, got %v", result["count"])
		}
		categories := result["categories"].([]interface{})
		first := categories[0].(map[string]interface{})
		if first["name"] != "Bills" {
			t.Errorf("expected first category Bills, got %v", first["name"])
		}
	})

	t.Run("returns empty list with 200", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["count"] != float64(0) {
			t.Error("expected count 0")
		}
	})
}

func TestCategoryHandler_GetCategoriesByType(t *testing.T) {
	t.Run("passes type from path", func(t *testing.T) {
		var captured models.CategoryType
		catSvc := &mockCategoryService{
			getCategoriesByTypeFn: func(categoryType models.CategoryType) ([]models.Category, error) {
				captured = categoryType
				return []models.Category{{Base: models.Base{ID: 1}, Name: "Salary", Type: categoryType}}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories/type/income", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != models.CategoryTypeIncome {
			t.Errorf("expected income, got %s", captured)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoriesByTypeFn: func(_ models.CategoryType) ([]models.Category, error) {
				return nil, apperrors.ErrInvalidCategoryType
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories/type/savings", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CATEGORY_TYPE")
	})
}
