package response_models

import (
	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	SteamID   string    `json:"steam_id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
}

func NewUserResponse(u *db_models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		SteamID:   u.SteamID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
