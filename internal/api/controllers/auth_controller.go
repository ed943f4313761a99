package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"steamwiki/internal/models/request_models"
	"steamwiki/internal/models/response_models"
	"steamwiki/internal/services"
	"steamwiki/pkg/utils"
)

const defaultReturnURL = "http://localhost:5173/adm"

type AuthController struct {
	steamService services.SteamServiceInterface
	userService  services.UserServiceInterface
	signer       *utils.SessionSigner
}

func NewAuthController(steamService services.SteamServiceInterface, userService services.UserServiceInterface, signer *utils.SessionSigner) *AuthController {
	return &AuthController{
		steamService: steamService,
		userService:  userService,
		signer:       signer,
	}
}

// Handle multiplexes the auth endpoint the way the frontend drives it:
// a Steam redirect lands with openid parameters, a POST carries a
// session token to validate, and anything else starts a login.
func (a *AuthController) Handle(c *gin.Context) {
	query := c.Request.URL.Query()

	if query.Get("openid.claimed_id") != "" {
		a.callback(c)
		return
	}

	if c.Request.Method == http.MethodPost {
		var req request_models.ValidateSessionRequest
		if err := c.ShouldBindJSON(&req); err == nil && req.SessionToken != "" {
			a.validateSession(c, req.SessionToken)
			return
		}
	}

	returnURL := c.Query("return_url")
	if returnURL == "" {
		returnURL = defaultReturnURL
	}

	utils.RespondSuccess(c, response_models.LoginURLResponse{
		AuthURL: a.steamService.LoginURL(returnURL),
	}, "")
}

func (a *AuthController) callback(c *gin.Context) {
	ctx := c.Request.Context()

	steamID, err := a.steamService.VerifyCallback(ctx, c.Request.URL.Query())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	profile, err := a.steamService.FetchProfile(ctx, steamID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := a.userService.ResolveOrProvision(ctx, steamID, profile)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	token, err := a.signer.Create(user.SteamID, user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SessionResponse{
		SessionToken: token,
		User:         response_models.NewUserResponse(user),
	}, "Login successful")
}

// validateSession checks the token signature, expiry and that the claim
// pair still matches a live account.
func (a *AuthController) validateSession(c *gin.Context, token string) {
	claims, err := a.signer.Parse(token)
	if err != nil {
		utils.RespondSuccess(c, response_models.ValidateSessionResponse{Valid: false}, "")
		return
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		utils.RespondSuccess(c, response_models.ValidateSessionResponse{Valid: false}, "")
		return
	}

	user, err := a.userService.FindSession(c.Request.Context(), claims.SteamID, accountID)
	if err != nil || user == nil {
		utils.RespondSuccess(c, response_models.ValidateSessionResponse{Valid: false}, "")
		return
	}

	resp := response_models.NewUserResponse(user)
	utils.RespondSuccess(c, response_models.ValidateSessionResponse{Valid: true, User: &resp}, "")
}
