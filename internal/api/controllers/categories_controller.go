package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"steamwiki/internal/models/request_models"
	"steamwiki/internal/services"
	"steamwiki/pkg/middleware"
	"steamwiki/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

func (ct *CategoriesController) List(c *gin.Context) {
	categories, err := ct.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"categories": categories}, "")
}

func (ct *CategoriesController) Create(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := ct.categoryService.CreateCategory(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"category": category}, "Category created")
}

func (ct *CategoriesController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrIDRequired)
		return
	}

	if err := ct.categoryService.DeleteCategory(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Category deleted")
}
