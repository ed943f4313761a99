package request_models

import "github.com/google/uuid"

type CreateUserRequest struct {
	SteamID  string `json:"steam_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UpdateUserRoleRequest struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}
