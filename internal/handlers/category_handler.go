package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	ID    uint                `json:"id"`
	Name  string              `json:"name"`
	Type  models.CategoryType `json:"type"`
	Icon  string              `json:"icon"`
	Color string              `json:"color"`
}

// GetCategories handles the retrieval of all categories
// @Summary     Get all categories
// @Description Get all transaction categories, ordered by type then name
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CategoryResponse "Categories with count"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategoriesByType handles the retrieval of categories of one type
// @Summary     Get categories by type
// @Description Get all categories of the given type (income or expense)
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type path string true "Category type (income or expense)"
// @Success     200 {object} CategoryResponse "Categories with count"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/type/{type} [get]
func (h *CategoryHandler) GetCategoriesByType(c *gin.Context) {
	categoryType := models.CategoryType(c.Param("type"))

	categories, err := h.categoryService.GetCategoriesByType(categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}
