package controllers_fx

import (
	"go.uber.org/fx"

	"steamwiki/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAuthController,
	controllers.NewCategoriesController,
	controllers.NewArticlesController,
	controllers.NewUsersController,
	controllers.NewUploadsController,
	controllers.NewMigrationController,
	controllers.NewWikiController)
