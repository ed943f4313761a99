package request_models

import "github.com/google/uuid"

type CreateArticleRequest struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Content      string      `json:"content"`
	CategoryIDs  []uuid.UUID `json:"category_ids"`
	PreviewImage string      `json:"preview_image"`
}

// UpdateArticleRequest is a sparse patch: nil pointer means the field was
// not supplied and stays untouched. A non-nil CategoryIDs fully replaces
// the association list.
type UpdateArticleRequest struct {
	ID           uuid.UUID    `json:"id"`
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Content      *string      `json:"content"`
	CategoryIDs  *[]uuid.UUID `json:"category_ids"`
	PreviewImage *string      `json:"preview_image"`
}
