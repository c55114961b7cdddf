package models

// Category is a named grouping for todos.
// Categories are created on first reference and never deleted.
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:text;not null;uniqueIndex"`
}

func (c *Category) TableName() string {
	return "categories"
}
