package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
	"steamwiki/internal/models/request_models"
	"steamwiki/internal/models/response_models"
	"steamwiki/internal/repositories"
	"steamwiki/pkg/utils"
)

type UserServiceInterface interface {
	ResolveOrProvision(ctx context.Context, steamID string, profile *SteamProfile) (*db_models.User, error)
	FindSession(ctx context.Context, steamID string, accountID uuid.UUID) (*db_models.User, error)
	ListUsers(ctx context.Context, caller *db_models.User) ([]response_models.UserResponse, error)
	CreateUser(ctx context.Context, caller *db_models.User, req request_models.CreateUserRequest) (*db_models.User, error)
	SetRole(ctx context.Context, caller *db_models.User, req request_models.UpdateUserRoleRequest) error
	DeleteUser(ctx context.Context, caller *db_models.User, id uuid.UUID) error
}

type UserService struct {
	userRepo repositories.UserRepository
	policy   *AccessPolicy
}

func NewUserService(userRepo repositories.UserRepository, policy *AccessPolicy) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		policy:   policy,
	}
}

// ResolveOrProvision maps a verified Steam identity to an account.
// Known identities get their profile refreshed; the super-admin identity
// is created on first sight with the administrator role; everyone else
// is denied until an administrator pre-creates them.
func (s *UserService) ResolveOrProvision(ctx context.Context, steamID string, profile *SteamProfile) (*db_models.User, error) {
	existing, err := s.userRepo.FindBySteamID(ctx, steamID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.userRepo.UpdateProfile(ctx, existing.ID, profile.Username, profile.AvatarURL); err != nil {
			return nil, utils.ErrDatabaseError
		}
		existing.Username = profile.Username
		existing.AvatarURL = profile.AvatarURL
		return existing, nil
	}

	if steamID != s.policy.SuperAdminSteamID {
		return nil, utils.ErrAccessNotGranted
	}

	admin := &db_models.User{
		SteamID:   steamID,
		Username:  profile.Username,
		AvatarURL: profile.AvatarURL,
		Role:      db_models.RoleAdministrator,
	}
	if err := s.userRepo.Insert(ctx, admin); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Provisioned super admin account for steam id %s", steamID)
	return admin, nil
}

func (s *UserService) FindSession(ctx context.Context, steamID string, accountID uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindBySteamAndID(ctx, steamID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, caller *db_models.User) ([]response_models.UserResponse, error) {
	if err := s.policy.Authorize(caller, PermSuperAdmin, nil); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, response_models.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// CreateUser pre-provisions a Steam identity so its next login succeeds.
func (s *UserService) CreateUser(ctx context.Context, caller *db_models.User, req request_models.CreateUserRequest) (*db_models.User, error) {
	if err := s.policy.Authorize(caller, PermSuperAdmin, nil); err != nil {
		return nil, err
	}

	if req.SteamID == "" {
		return nil, utils.ErrIDRequired
	}

	role := db_models.Role(req.Role)
	if req.Role == "" {
		role = db_models.RoleEditor
	}
	if !role.Known() {
		return nil, utils.ErrInvalidRole
	}

	user := &db_models.User{
		SteamID:  req.SteamID,
		Username: req.Username,
		Role:     role,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func (s *UserService) SetRole(ctx context.Context, caller *db_models.User, req request_models.UpdateUserRoleRequest) error {
	if err := s.policy.Authorize(caller, PermSuperAdmin, nil); err != nil {
		return err
	}

	if req.ID == uuid.Nil {
		return utils.ErrIDRequired
	}

	role := db_models.Role(req.Role)
	if !role.Known() {
		return utils.ErrInvalidRole
	}

	target, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if target == nil {
		return utils.ErrUserNotFound
	}

	// The super-admin account keeps the administrator role no matter what.
	if s.policy.IsSuperAdmin(target) {
		return utils.ErrSuperAdminProtected
	}

	if err := s.userRepo.UpdateRole(ctx, target.ID, role); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, caller *db_models.User, id uuid.UUID) error {
	if err := s.policy.Authorize(caller, PermSuperAdmin, nil); err != nil {
		return err
	}

	if id == uuid.Nil {
		return utils.ErrIDRequired
	}

	target, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if target == nil {
		return utils.ErrUserNotFound
	}

	if s.policy.IsSuperAdmin(target) {
		return utils.ErrSuperAdminProtected
	}

	if err := s.userRepo.DeleteWithAuthorship(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
