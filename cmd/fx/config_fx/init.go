package config_fx

import (
	"go.uber.org/fx"

	"steamwiki/internal/config"
)

var Module = fx.Provide(
	provideConfig)

func provideConfig() *config.Config {
	return config.Load()
}
