package controllers

import (
	"github.com/gin-gonic/gin"

	"steamwiki/internal/services"
	"steamwiki/pkg/middleware"
	"steamwiki/pkg/utils"
)

type MigrationController struct {
	migrationService services.MigrationServiceInterface
}

func NewMigrationController(migrationService services.MigrationServiceInterface) *MigrationController {
	return &MigrationController{
		migrationService: migrationService,
	}
}

func (ct *MigrationController) Migrate(c *gin.Context) {
	result, err := ct.migrationService.MigrateAll(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Migration finished")
}
