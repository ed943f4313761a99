package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steamwiki/internal/models/request_models"
	"steamwiki/internal/services"
	"steamwiki/pkg/middleware"
	"steamwiki/pkg/utils"
)

type UploadsController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadsController(uploadService services.UploadServiceInterface) *UploadsController {
	return &UploadsController{
		uploadService: uploadService,
	}
}

func (ct *UploadsController) Upload(c *gin.Context) {
	var req request_models.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	url, err := ct.uploadService.UploadImage(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Image uploaded")
}
