package utils

import "errors"

var (
	ErrAuthRequired         = errors.New("authentication required")
	ErrAccessDenied         = errors.New("access denied")
	ErrAccessNotGranted     = errors.New("access not granted by an administrator")
	ErrUserNotFound         = errors.New("user not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrArticleNotFound      = errors.New("article not found")
	ErrNameRequired         = errors.New("name is required")
	ErrIDRequired           = errors.New("id is required")
	ErrMissingFields        = errors.New("missing required fields")
	ErrCategoryRequired     = errors.New("at least one category is required")
	ErrInvalidRole          = errors.New("invalid role")
	ErrSuperAdminProtected  = errors.New("super admin account is protected")
	ErrSteamInvalidResponse = errors.New("invalid steam response")
	ErrSteamIDNotFound      = errors.New("could not extract steam id")
	ErrSteamProfileFetch    = errors.New("could not fetch user data")
	ErrStorageUnavailable   = errors.New("object storage is not configured")
	ErrDatabaseError        = errors.New("database error")
)
