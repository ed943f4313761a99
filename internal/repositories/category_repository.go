package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"steamwiki/internal/models/db_models"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *db_models.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	ListAll(ctx context.Context) ([]db_models.Category, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCascade removes association rows, then clears the denormalized
// primary pointer on referencing articles, then deletes the category.
// The order matters: the primary-category FK must not dangle.
func (r *categoryRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Delete(&db_models.ArticleCategory{}, "category_id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).
			Model(&db_models.Article{}).
			Where("primary_category_id = ?", id).
			Update("primary_category_id", nil).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
	})
}
