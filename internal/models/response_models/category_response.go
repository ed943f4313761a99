package response_models

import (
	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
)

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	CreatedAt int64     `json:"created_at"`
}

func NewCategoryResponse(c *db_models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
	}
}
