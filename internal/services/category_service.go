package services

import (
	"context"

	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
	"steamwiki/internal/models/request_models"
	"steamwiki/internal/models/response_models"
	"steamwiki/internal/repositories"
	"steamwiki/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, caller *db_models.User, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, caller *db_models.User, id uuid.UUID) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	policy       *AccessPolicy
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, policy *AccessPolicy) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		policy:       policy,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, response_models.NewCategoryResponse(&categories[i]))
	}
	return responses, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, caller *db_models.User, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	if err := s.policy.Authorize(caller, PermAdminOnly, nil); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, utils.ErrNameRequired
	}

	icon := req.Icon
	if icon == "" {
		icon = "BookOpen"
	}

	category := &db_models.Category{
		Name: req.Name,
		Icon: icon,
	}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, caller *db_models.User, id uuid.UUID) error {
	if err := s.policy.Authorize(caller, PermAdminOnly, nil); err != nil {
		return err
	}

	if id == uuid.Nil {
		return utils.ErrIDRequired
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	if err := s.categoryRepo.DeleteCascade(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
