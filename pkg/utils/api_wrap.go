package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError converts a service error into the HTTP envelope.
// Authentication failures answer 403 rather than 401 on purpose: the
// frontend treats both identically and the original API always used 403.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAuthRequired):
		RespondError(c, http.StatusForbidden, "Authentication required")
	case errors.Is(err, ErrAccessDenied):
		RespondError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrAccessNotGranted):
		RespondError(c, http.StatusForbidden, "Access denied. You must be added by an administrator.")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrArticleNotFound):
		RespondError(c, http.StatusNotFound, "Article not found")
	case errors.Is(err, ErrNameRequired):
		RespondError(c, http.StatusBadRequest, "Name is required")
	case errors.Is(err, ErrIDRequired):
		RespondError(c, http.StatusBadRequest, "ID is required")
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrCategoryRequired):
		RespondError(c, http.StatusBadRequest, "At least one category is required")
	case errors.Is(err, ErrInvalidRole):
		RespondError(c, http.StatusBadRequest, "Invalid role")
	case errors.Is(err, ErrSuperAdminProtected):
		RespondError(c, http.StatusBadRequest, "Super admin account cannot be modified or deleted")
	case errors.Is(err, ErrSteamInvalidResponse):
		RespondError(c, http.StatusUnauthorized, "Invalid Steam response")
	case errors.Is(err, ErrSteamIDNotFound):
		RespondError(c, http.StatusBadRequest, "Could not extract Steam ID")
	case errors.Is(err, ErrSteamProfileFetch):
		RespondError(c, http.StatusInternalServerError, "Could not fetch user data")
	case errors.Is(err, ErrStorageUnavailable):
		RespondError(c, http.StatusInternalServerError, "Object storage is not configured")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
