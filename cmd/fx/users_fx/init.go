package users_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"steamwiki/internal/config"
	"steamwiki/internal/repositories"
	"steamwiki/internal/services"
	"steamwiki/pkg/utils"
)

var Module = fx.Provide(
	provideAccessPolicy, provideSessionSigner, provideUserRepo, provideUserService)

func provideAccessPolicy(cfg *config.Config) *services.AccessPolicy {
	return services.NewAccessPolicy(cfg.SuperAdminSteamID)
}

// A missing JWT_SECRET is fatal: every session token would otherwise be
// signed with an empty key and thus forgeable.
func provideSessionSigner(cfg *config.Config) *utils.SessionSigner {
	signer, err := utils.NewSessionSigner(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Session signer init failed: %v", err)
	}
	return signer
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository, policy *services.AccessPolicy) services.UserServiceInterface {
	return services.NewUserService(userRepo, policy)
}
