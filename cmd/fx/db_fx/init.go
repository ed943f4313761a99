package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"steamwiki/internal/config"
	"steamwiki/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
