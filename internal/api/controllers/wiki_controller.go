package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steamwiki/pkg/utils"
)

// WikiController dispatches the single wiki endpoint on the action
// query parameter, mirroring how the frontend addresses the API.
type WikiController struct {
	categories *CategoriesController
	articles   *ArticlesController
	users      *UsersController
	uploads    *UploadsController
	migration  *MigrationController
}

func NewWikiController(
	categories *CategoriesController,
	articles *ArticlesController,
	users *UsersController,
	uploads *UploadsController,
	migration *MigrationController) *WikiController {

	return &WikiController{
		categories: categories,
		articles:   articles,
		users:      users,
		uploads:    uploads,
		migration:  migration,
	}
}

func (w *WikiController) Dispatch(c *gin.Context) {
	switch c.Query("action") {
	case "categories":
		w.dispatchCategories(c)
	case "articles":
		w.dispatchArticles(c)
	case "users":
		w.dispatchUsers(c)
	case "upload_image":
		if c.Request.Method != http.MethodPost {
			utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		w.uploads.Upload(c)
	case "migrate_images":
		if c.Request.Method != http.MethodPost {
			utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		w.migration.Migrate(c)
	default:
		utils.RespondError(c, http.StatusNotFound,
			"Not found. Use ?action=categories|articles|users|upload_image|migrate_images")
	}
}

func (w *WikiController) dispatchCategories(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		w.categories.List(c)
	case http.MethodPost:
		w.categories.Create(c)
	case http.MethodDelete:
		w.categories.Delete(c)
	default:
		utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (w *WikiController) dispatchArticles(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		w.articles.List(c)
	case http.MethodPost:
		w.articles.Create(c)
	case http.MethodPut:
		w.articles.Update(c)
	case http.MethodDelete:
		w.articles.Delete(c)
	default:
		utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (w *WikiController) dispatchUsers(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		w.users.List(c)
	case http.MethodPost:
		w.users.Create(c)
	case http.MethodPut:
		w.users.SetRole(c)
	case http.MethodDelete:
		w.users.Delete(c)
	default:
		utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
