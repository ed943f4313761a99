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

type ArticleServiceInterface interface {
	ListArticles(ctx context.Context) ([]response_models.ArticleResponse, error)
	CreateArticle(ctx context.Context, caller *db_models.User, req request_models.CreateArticleRequest) (*response_models.ArticleResponse, error)
	UpdateArticle(ctx context.Context, caller *db_models.User, req request_models.UpdateArticleRequest) error
	DeleteArticle(ctx context.Context, caller *db_models.User, id uuid.UUID) error
}

type ArticleService struct {
	articleRepo repositories.ArticleRepository
	policy      *AccessPolicy
}

func NewArticleService(articleRepo repositories.ArticleRepository, policy *AccessPolicy) ArticleServiceInterface {
	return &ArticleService{
		articleRepo: articleRepo,
		policy:      policy,
	}
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]response_models.ArticleResponse, error) {
	articles, err := s.articleRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, response_models.NewArticleResponse(&articles[i]))
	}
	return responses, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, caller *db_models.User, req request_models.CreateArticleRequest) (*response_models.ArticleResponse, error) {
	if err := s.policy.Authorize(caller, PermAuthenticated, nil); err != nil {
		return nil, err
	}

	if req.Title == "" || req.Description == "" || req.Content == "" {
		return nil, utils.ErrMissingFields
	}
	if len(req.CategoryIDs) == 0 {
		return nil, utils.ErrCategoryRequired
	}

	primary := req.CategoryIDs[0]
	article := &db_models.Article{
		Title:             req.Title,
		Description:       req.Description,
		Content:           req.Content,
		PrimaryCategoryID: &primary,
		AuthorID:          &caller.ID,
		PreviewImage:      req.PreviewImage,
	}

	if err := s.articleRepo.InsertWithCategories(ctx, article, req.CategoryIDs); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := s.articleRepo.FindByID(ctx, article.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewArticleResponse(created)
	return &resp, nil
}

// UpdateArticle applies a sparse patch: only fields present in the
// request change. Supplying category_ids replaces every association and
// repoints the primary category at the new first id.
func (s *ArticleService) UpdateArticle(ctx context.Context, caller *db_models.User, req request_models.UpdateArticleRequest) error {
	if caller == nil {
		return utils.ErrAuthRequired
	}

	if req.ID == uuid.Nil {
		return utils.ErrIDRequired
	}

	article, err := s.articleRepo.FindByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if article == nil {
		return utils.ErrArticleNotFound
	}

	if err := s.policy.Authorize(caller, PermOwnerOrAdmin, article.AuthorID); err != nil {
		return err
	}

	if req.CategoryIDs != nil && len(*req.CategoryIDs) == 0 {
		return utils.ErrCategoryRequired
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.PreviewImage != nil {
		updates["preview_image"] = *req.PreviewImage
	}

	if err := s.articleRepo.UpdateSparse(ctx, req.ID, updates, req.CategoryIDs); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, caller *db_models.User, id uuid.UUID) error {
	if err := s.policy.Authorize(caller, PermModeratorOrAdmin, nil); err != nil {
		return err
	}

	if id == uuid.Nil {
		return utils.ErrIDRequired
	}

	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if article == nil {
		return utils.ErrArticleNotFound
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
