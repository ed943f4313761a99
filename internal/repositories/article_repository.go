package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"steamwiki/internal/models/db_models"
)

type ArticleRepository interface {
	InsertWithCategories(ctx context.Context, article *db_models.Article, categoryIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Article, error)
	ListAll(ctx context.Context) ([]db_models.Article, error)
	// UpdateSparse applies the whitelisted column updates and, when
	// categoryIDs is non-nil, rebuilds the association rows from scratch.
	UpdateSparse(ctx context.Context, id uuid.UUID, updates map[string]interface{}, categoryIDs *[]uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListWithPreviewImage(ctx context.Context) ([]db_models.Article, error)
	UpdatePreviewImage(ctx context.Context, id uuid.UUID, url string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

func (r *articleRepository) InsertWithCategories(ctx context.Context, article *db_models.Article, categoryIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit("CategoryLinks", "Author").Create(article).Error; err != nil {
			return err
		}

		for i, categoryID := range categoryIDs {
			link := db_models.ArticleCategory{
				ArticleID:  article.ID,
				CategoryID: categoryID,
				Position:   i,
			}
			if err := tx.WithContext(ctx).Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Article, error) {
	var article db_models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("CategoryLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("CategoryLinks.Category").
		First(&article, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &article, nil
}

func (r *articleRepository) ListAll(ctx context.Context) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("CategoryLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("CategoryLinks.Category").
		Order("updated_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) UpdateSparse(ctx context.Context, id uuid.UUID, updates map[string]interface{}, categoryIDs *[]uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if categoryIDs != nil {
			if err := tx.WithContext(ctx).
				Delete(&db_models.ArticleCategory{}, "article_id = ?", id).Error; err != nil {
				return err
			}

			for i, categoryID := range *categoryIDs {
				link := db_models.ArticleCategory{
					ArticleID:  id,
					CategoryID: categoryID,
					Position:   i,
				}
				if err := tx.WithContext(ctx).Create(&link).Error; err != nil {
					return err
				}
			}

			updates["primary_category_id"] = (*categoryIDs)[0]
		}

		if len(updates) == 0 {
			return nil
		}

		return tx.WithContext(ctx).
			Model(&db_models.Article{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Delete(&db_models.ArticleCategory{}, "article_id = ?", id).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Delete(&db_models.Article{}, "id = ?", id).Error
	})
}

func (r *articleRepository) ListWithPreviewImage(ctx context.Context) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := r.db.WithContext(ctx).
		Where("preview_image <> ''").
		Order("created_at").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdatePreviewImage commits a single article's new location; the
// migrator calls it once per item so prior progress survives a failure.
func (r *articleRepository) UpdatePreviewImage(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Article{}).
		Where("id = ?", id).
		Update("preview_image", url).Error
}
