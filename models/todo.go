package models

// Todo represents a single task.
// It optionally belongs to a Category; Done only ever goes from false to true.
type Todo struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"type:text;not null"`
	Done        bool      `gorm:"not null;default:false"`
	CategoryID  *int64    `gorm:"index"`
	Category    *Category `gorm:"foreignKey:CategoryID"`
}

func (t *Todo) TableName() string {
	return "todos"
}

// CategoryName returns the name of the joined category, if any.
func (t *Todo) CategoryName() (string, bool) {
	if t.Category == nil {
		return "", false
	}
	return t.Category.Name, true
}
