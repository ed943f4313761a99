package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"steamwiki/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindBySteamID(ctx context.Context, steamID string) (*db_models.User, error)
	FindBySteamAndID(ctx context.Context, steamID string, id uuid.UUID) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username, avatarURL string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error
	DeleteWithAuthorship(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindBySteamID(ctx context.Context, steamID string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "steam_id = ?", steamID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindBySteamAndID(ctx context.Context, steamID string, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("steam_id = ? AND id = ?", steamID, id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, avatarURL string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"username":   username,
			"avatar_url": avatarURL,
		}).Error
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("role", role).Error
}

// DeleteWithAuthorship nulls article authorship before removing the row,
// so the author foreign key never dangles mid-sequence.
func (r *userRepository) DeleteWithAuthorship(ctx context.Context, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Model(&db_models.Article{}).
			Where("author_id = ?", id).
			Update("author_id", nil).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Delete(&db_models.User{}, "id = ?", id).Error
	})
}
