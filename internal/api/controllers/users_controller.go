package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"steamwiki/internal/models/request_models"
	"steamwiki/internal/models/response_models"
	"steamwiki/internal/services"
	"steamwiki/pkg/middleware"
	"steamwiki/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

func (ct *UsersController) List(c *gin.Context) {
	users, err := ct.userService.ListUsers(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"users": users}, "")
}

func (ct *UsersController) Create(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := ct.userService.CreateUser(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"user": response_models.NewUserResponse(user)}, "User created")
}

func (ct *UsersController) SetRole(c *gin.Context) {
	var req request_models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.userService.SetRole(c.Request.Context(), middleware.CurrentUser(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Role updated")
}

func (ct *UsersController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrIDRequired)
		return
	}

	if err := ct.userService.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "User deleted")
}
