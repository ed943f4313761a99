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

type ArticlesController struct {
	articleService services.ArticleServiceInterface
}

func NewArticlesController(articleService services.ArticleServiceInterface) *ArticlesController {
	return &ArticlesController{
		articleService: articleService,
	}
}

func (ct *ArticlesController) List(c *gin.Context) {
	articles, err := ct.articleService.ListArticles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"articles": articles}, "")
}

func (ct *ArticlesController) Create(c *gin.Context) {
	var req request_models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	article, err := ct.articleService.CreateArticle(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"article": article}, "Article created")
}

func (ct *ArticlesController) Update(c *gin.Context) {
	var req request_models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.articleService.UpdateArticle(c.Request.Context(), middleware.CurrentUser(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Article updated")
}

func (ct *ArticlesController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrIDRequired)
		return
	}

	if err := ct.articleService.DeleteArticle(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Article deleted")
}
