package repository

import (
	"gorm.io/gorm"
)

// contentStore is the generic core shared by the categorized content
// repositories (notes, discussion rooms and their satellites). It covers the
// create/find/save/delete/list shape; anything entity-specific (scoping
// columns, counters, transactions) lives in the concrete repository.
type contentStore[T any] struct {
	db *gorm.DB
}

func newContentStore[T any](db *gorm.DB) contentStore[T] {
	return contentStore[T]{db: db}
}

// Create inserts the item, assigning its identifier and creation timestamp.
func (s contentStore[T]) Create(item *T) error {
	return s.db.Create(item).Error
}

// FindBy returns the first item matching the condition map.
func (s contentStore[T]) FindBy(cond map[string]any) (*T, error) {
	var item T
	if err := s.db.Where(cond).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all items matching the condition map in the given order.
func (s contentStore[T]) List(cond map[string]any, order string) ([]T, error) {
	var items []T
	query := s.db.Where(cond)
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save persists all fields of an existing item.
func (s contentStore[T]) Save(item *T) error {
	return s.db.Save(item).Error
}

// Delete soft deletes by primary key.
func (s contentStore[T]) Delete(id uint64) error {
	return s.db.Delete(new(T), id).Error
}
