package services

import (
	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
	"steamwiki/pkg/utils"
)

type Permission int

const (
	// Any live account at editor rank or above.
	PermAuthenticated Permission = iota
	// The resource owner, or any administrator.
	PermOwnerOrAdmin
	PermModeratorOrAdmin
	PermAdminOnly
	// The one distinguished Steam identity, matched by id and not by role.
	PermSuperAdmin
)

// AccessPolicy is the single place role and identity requirements are
// evaluated; handlers never compare role strings inline.
type AccessPolicy struct {
	SuperAdminSteamID string
}

func NewAccessPolicy(superAdminSteamID string) *AccessPolicy {
	return &AccessPolicy{
		SuperAdminSteamID: superAdminSteamID,
	}
}

// Authorize returns nil when caller satisfies required. ownerID is only
// consulted for PermOwnerOrAdmin and may be nil otherwise. An anonymous
// caller always fails with ErrAuthRequired; an authenticated caller with
// an insufficient role fails with ErrAccessDenied.
func (p *AccessPolicy) Authorize(caller *db_models.User, required Permission, ownerID *uuid.UUID) error {
	if caller == nil {
		return utils.ErrAuthRequired
	}

	switch required {
	case PermAuthenticated:
		if caller.Role.AtLeast(db_models.RoleEditor) {
			return nil
		}
	case PermOwnerOrAdmin:
		if caller.Role.AtLeast(db_models.RoleAdministrator) {
			return nil
		}
		if ownerID != nil && *ownerID == caller.ID && caller.Role.AtLeast(db_models.RoleEditor) {
			return nil
		}
	case PermModeratorOrAdmin:
		if caller.Role.AtLeast(db_models.RoleModerator) {
			return nil
		}
	case PermAdminOnly:
		if caller.Role.AtLeast(db_models.RoleAdministrator) {
			return nil
		}
	case PermSuperAdmin:
		if caller.SteamID == p.SuperAdminSteamID {
			return nil
		}
	}

	return utils.ErrAccessDenied
}

func (p *AccessPolicy) IsSuperAdmin(user *db_models.User) bool {
	return user != nil && user.SteamID == p.SuperAdminSteamID
}
