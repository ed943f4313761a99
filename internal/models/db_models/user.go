package db_models

type Role string

const (
	RoleNoAccess      Role = "no_access"
	RoleEditor        Role = "editor"
	RoleModerator     Role = "moderator"
	RoleAdministrator Role = "administrator"
)

var roleRank = map[Role]int{
	RoleNoAccess:      0,
	RoleEditor:        1,
	RoleModerator:     2,
	RoleAdministrator: 3,
}

func (r Role) Known() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r sits at or above min in the role order
// no_access < editor < moderator < administrator.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// User is an account backed by a Steam identity. SteamID is assigned by
// Steam and never changes; Username and AvatarURL are refreshed from the
// Steam profile on every successful login.
type User struct {
	BaseModel
	SteamID   string `gorm:"uniqueIndex;not null"`
	Username  string
	AvatarURL string
	Role      Role `gorm:"type:text;not null;default:'no_access'"`
}
