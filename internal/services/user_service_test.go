package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamwiki/internal/models/db_models"
	"steamwiki/internal/models/request_models"
	"steamwiki/pkg/utils"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]*db_models.User
	deleted []uuid.UUID
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindBySteamID(ctx context.Context, steamID string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.SteamID == steamID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindBySteamAndID(ctx context.Context, steamID string, id uuid.UUID) (*db_models.User, error) {
	u := f.users[id]
	if u == nil || u.SteamID != steamID {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]db_models.User, error) {
	out := make([]db_models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, username, avatarURL string) error {
	if u := f.users[id]; u != nil {
		u.Username = username
		u.AvatarURL = avatarURL
	}
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error {
	if u := f.users[id]; u != nil {
		u.Role = role
	}
	return nil
}

func (f *fakeUserRepo) DeleteWithAuthorship(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newUserService(repo *fakeUserRepo) UserServiceInterface {
	return NewUserService(repo, NewAccessPolicy(testSuperAdminSteamID))
}

func TestResolveOrProvisionRefreshesKnownUser(t *testing.T) {
	existing := testUser(db_models.RoleModerator)
	repo := newFakeUserRepo(existing)
	svc := newUserService(repo)

	user, err := svc.ResolveOrProvision(context.Background(), existing.SteamID, &SteamProfile{
		Username:  "fresh name",
		AvatarURL: "https://avatars.example/new.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "fresh name", user.Username)
	assert.Equal(t, "https://avatars.example/new.jpg", user.AvatarURL)
	assert.Equal(t, db_models.RoleModerator, user.Role, "role must survive profile refresh")
}

func TestResolveOrProvisionDeniesUnknownIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	user, err := svc.ResolveOrProvision(context.Background(), "76561198999999999", &SteamProfile{Username: "nobody"})

	assert.ErrorIs(t, err, utils.ErrAccessNotGranted)
	assert.Nil(t, user)
	assert.Empty(t, repo.users, "denied identities must not be provisioned")
}

func TestResolveOrProvisionCreatesSuperAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	user, err := svc.ResolveOrProvision(context.Background(), testSuperAdminSteamID, &SteamProfile{Username: "the boss"})

	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdministrator, user.Role)
	assert.Equal(t, testSuperAdminSteamID, user.SteamID)
	assert.Len(t, repo.users, 1)
}

func TestSetRoleRequiresSuperAdminIdentity(t *testing.T) {
	target := testUser(db_models.RoleEditor)
	admin := testUser(db_models.RoleAdministrator)
	repo := newFakeUserRepo(target, admin)
	svc := newUserService(repo)

	// A plain administrator is not enough; the identity must match.
	err := svc.SetRole(context.Background(), admin, request_models.UpdateUserRoleRequest{
		ID:   target.ID,
		Role: "moderator",
	})
	assert.ErrorIs(t, err, utils.ErrAccessDenied)

	super := testSuperAdmin()
	repo.users[super.ID] = super
	err = svc.SetRole(context.Background(), super, request_models.UpdateUserRoleRequest{
		ID:   target.ID,
		Role: "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleModerator, target.Role)
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	target := testUser(db_models.RoleEditor)
	super := testSuperAdmin()
	repo := newFakeUserRepo(target, super)
	svc := newUserService(repo)

	err := svc.SetRole(context.Background(), super, request_models.UpdateUserRoleRequest{
		ID:   target.ID,
		Role: "owner",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRole)
}

func TestSetRoleProtectsSuperAdmin(t *testing.T) {
	super := testSuperAdmin()
	repo := newFakeUserRepo(super)
	svc := newUserService(repo)

	err := svc.SetRole(context.Background(), super, request_models.UpdateUserRoleRequest{
		ID:   super.ID,
		Role: "no_access",
	})
	assert.ErrorIs(t, err, utils.ErrSuperAdminProtected)
	assert.Equal(t, db_models.RoleAdministrator, super.Role)
}

func TestDeleteUserProtectsSuperAdmin(t *testing.T) {
	super := testSuperAdmin()
	repo := newFakeUserRepo(super)
	svc := newUserService(repo)

	err := svc.DeleteUser(context.Background(), super, super.ID)

	assert.ErrorIs(t, err, utils.ErrSuperAdminProtected)
	assert.Contains(t, repo.users, super.ID, "super admin row must be untouched")
	assert.Empty(t, repo.deleted)
}

func TestDeleteUserCascades(t *testing.T) {
	super := testSuperAdmin()
	target := testUser(db_models.RoleEditor)
	repo := newFakeUserRepo(super, target)
	svc := newUserService(repo)

	err := svc.DeleteUser(context.Background(), super, target.ID)

	require.NoError(t, err)
	assert.NotContains(t, repo.users, target.ID)
	assert.Equal(t, []uuid.UUID{target.ID}, repo.deleted)
}

func TestCreateUserPreProvisions(t *testing.T) {
	super := testSuperAdmin()
	repo := newFakeUserRepo(super)
	svc := newUserService(repo)

	user, err := svc.CreateUser(context.Background(), super, request_models.CreateUserRequest{
		SteamID:  "76561198123456789",
		Username: "invited",
		Role:     "moderator",
	})

	require.NoError(t, err)
	assert.Equal(t, db_models.RoleModerator, user.Role)

	// The invited identity now resolves on login instead of being denied.
	resolved, err := svc.ResolveOrProvision(context.Background(), "76561198123456789", &SteamProfile{Username: "invited"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}
