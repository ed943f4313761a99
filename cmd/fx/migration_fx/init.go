package migration_fx

import (
	"go.uber.org/fx"

	"steamwiki/internal/infra"
	"steamwiki/internal/repositories"
	"steamwiki/internal/services"
)

var Module = fx.Provide(
	provideMigrationService)

func provideMigrationService(articleRepo repositories.ArticleRepository, store infra.ObjectStore, policy *services.AccessPolicy) services.MigrationServiceInterface {
	return services.NewMigrationService(articleRepo, store, policy)
}
