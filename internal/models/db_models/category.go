package db_models

type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
	Icon string `gorm:"not null;default:'BookOpen'"`
}
