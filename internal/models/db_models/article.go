package db_models

import "github.com/google/uuid"

// Article keeps a denormalized PrimaryCategoryID alongside the ordered
// association rows; it always mirrors the category at position 0.
type Article struct {
	BaseModel
	Title             string `gorm:"not null"`
	Description       string
	Content           string
	PrimaryCategoryID *uuid.UUID `gorm:"type:uuid"`
	AuthorID          *uuid.UUID `gorm:"type:uuid"`
	PreviewImage      string

	Author        *User             `gorm:"foreignKey:AuthorID"`
	CategoryLinks []ArticleCategory `gorm:"foreignKey:ArticleID"`
}

// ArticleCategory is one row of the article/category many-to-many
// relation. Position is 0-based; position 0 is the primary category.
type ArticleCategory struct {
	ArticleID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"not null"`

	Category Category `gorm:"foreignKey:CategoryID"`
}
