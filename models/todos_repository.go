package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TodosRepository struct {
	db *gorm.DB
}

// ErrCategoryConflict is returned when a category insert was skipped as a
// conflict but the existing row could not be read back.
var ErrCategoryConflict = errors.New("category insert conflicted but no row was found")

// TodoFilters narrows ListTodos. An empty Category lists every todo.
type TodoFilters struct {
	Category string
}

func NewTodosRepository(db *gorm.DB) *TodosRepository {
	return &TodosRepository{
		db: db,
	}
}

// CreateCategory inserts a category without checking for an existing one.
// A duplicate name fails on the unique index.
func (r *TodosRepository) CreateCategory(ctx context.Context, name string) (*Category, error) {
	category := Category{Name: name}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return &category, nil
}

// FindCategoryIDByName reports the id of the category with exactly this name.
func (r *TodosRepository) FindCategoryIDByName(ctx context.Context, name string) (int64, bool, error) {
	id, found, err := findCategoryID(r.db.WithContext(ctx), name)
	if err != nil {
		return 0, false, fmt.Errorf("find category %q: %w", name, err)
	}
	return id, found, nil
}

// ResolveCategory returns the id of the named category, creating it if needed.
func (r *TodosRepository) ResolveCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = resolveCategory(tx, name)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("resolve category %q: %w", name, err)
	}
	return id, nil
}

// AddTodo stores a new, not yet done todo. A non-empty category is looked up
// and created on first use.
func (r *TodosRepository) AddTodo(ctx context.Context, description, category string) (*Todo, error) {
	var todo *Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := Todo{Description: description}
		if category != "" {
			id, err := resolveCategory(tx, category)
			if err != nil {
				return err
			}
			row.CategoryID = &id
		}

		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		stored, found, err := getTodo(tx, row.ID)
		if err != nil {
			return err
		}
		if !found {
			return gorm.ErrRecordNotFound
		}
		todo = stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add todo: %w", err)
	}
	return todo, nil
}

// CompleteTodo marks the todo as done. It returns nil without error when no
// todo has that id.
func (r *TodosRepository) CompleteTodo(ctx context.Context, id int64) (*Todo, error) {
	db := r.db.WithContext(ctx)

	if err := db.Model(&Todo{}).Where("id = ?", id).Update("done", true).Error; err != nil {
		return nil, fmt.Errorf("complete todo %d: %w", id, err)
	}

	// Re-read rather than trust RowsAffected: some backends report zero for
	// an update that changes nothing.
	todo, found, err := getTodo(db, id)
	if err != nil {
		return nil, fmt.Errorf("complete todo %d: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return todo, nil
}

// ListTodos returns todos in ascending id order.
func (r *TodosRepository) ListTodos(ctx context.Context, filters TodoFilters) ([]Todo, error) {
	query := r.db.WithContext(ctx).
		Model(&Todo{}).
		Preload("Category").
		Order("todos.id ASC")

	// Filter
	if filters.Category != "" {
		query = query.
			Joins("LEFT JOIN categories ON categories.id = todos.category_id").
			Where("categories.name = ?", filters.Category)
	}

	todos := []Todo{}
	if err := query.Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// DeleteDoneTodos removes every done todo and returns how many were removed.
func (r *TodosRepository) DeleteDoneTodos(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("done = ?", true).Delete(&Todo{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete done todos: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func findCategoryID(db *gorm.DB, name string) (int64, bool, error) {
	var category Category
	res := db.Select("id").Where("name = ?", name).Limit(1).Find(&category)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return category.ID, true, nil
}

// resolveCategory is find-or-create. A concurrent writer that inserts the
// same name first turns our insert into a no-op, so the row is read back.
func resolveCategory(tx *gorm.DB, name string) (int64, error) {
	id, found, err := findCategoryID(tx, name)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	category := Category{Name: name}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&category)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 && category.ID != 0 {
		return category.ID, nil
	}

	id, found, err = findCategoryID(tx, name)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrCategoryConflict
	}
	return id, nil
}

func getTodo(db *gorm.DB, id int64) (*Todo, bool, error) {
	var todo Todo
	res := db.Preload("Category").Where("id = ?", id).Limit(1).Find(&todo)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &todo, true, nil
}
