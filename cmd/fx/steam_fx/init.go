package steam_fx

import (
	"go.uber.org/fx"

	"steamwiki/internal/config"
	"steamwiki/internal/services"
)

var Module = fx.Provide(
	provideSteamService)

func provideSteamService(cfg *config.Config) services.SteamServiceInterface {
	return services.NewSteamService(cfg)
}
