package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"steamwiki/internal/infra"
	"steamwiki/internal/repositories"
	"steamwiki/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService,
	provideArticleRepo, provideArticleService,
	provideUploadService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, policy *services.AccessPolicy) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, policy)
}

func provideArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	return repositories.NewArticleRepository(db)
}

func provideArticleService(articleRepo repositories.ArticleRepository, policy *services.AccessPolicy) services.ArticleServiceInterface {
	return services.NewArticleService(articleRepo, policy)
}

func provideUploadService(store infra.ObjectStore, policy *services.AccessPolicy) services.UploadServiceInterface {
	return services.NewUploadService(store, policy)
}
