package request_models

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
