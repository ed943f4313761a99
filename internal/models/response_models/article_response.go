package response_models

import (
	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
)

type ArticleResponse struct {
	ID                uuid.UUID          `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Content           string             `json:"content"`
	PrimaryCategoryID *uuid.UUID         `json:"primary_category_id"`
	CategoryName      string             `json:"category_name,omitempty"`
	CategoryIcon      string             `json:"category_icon,omitempty"`
	Categories        []CategoryResponse `json:"categories"`
	AuthorID          *uuid.UUID         `json:"author_id"`
	AuthorName        string             `json:"author_name,omitempty"`
	PreviewImage      string             `json:"preview_image,omitempty"`
	CreatedAt         int64              `json:"created_at"`
	UpdatedAt         int64              `json:"updated_at"`
}

// NewArticleResponse flattens the ordered association rows; the category
// at position 0 is surfaced as "the" category of the article.
func NewArticleResponse(a *db_models.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:                a.ID,
		Title:             a.Title,
		Description:       a.Description,
		Content:           a.Content,
		PrimaryCategoryID: a.PrimaryCategoryID,
		Categories:        make([]CategoryResponse, 0, len(a.CategoryLinks)),
		AuthorID:          a.AuthorID,
		PreviewImage:      a.PreviewImage,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}

	for i := range a.CategoryLinks {
		cat := a.CategoryLinks[i].Category
		resp.Categories = append(resp.Categories, NewCategoryResponse(&cat))
	}
	if len(resp.Categories) > 0 {
		resp.CategoryName = resp.Categories[0].Name
		resp.CategoryIcon = resp.Categories[0].Icon
	}
	if a.Author != nil {
		resp.AuthorName = a.Author.Username
	}

	return resp
}
