// Package repository holds the persistence interfaces and their GORM
// implementations. Services depend on the interfaces only, so the backing
// store can be swapped (or faked in tests) without touching business logic.
package repository

import (
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	// List returns every item in insertion order.
	List() ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	// Delete removes an item and reports how many rows went away.
	Delete(id uint) (int64, error)
	// DeleteExpiredBefore evicts items whose expiry date is strictly before
	// the cutoff date. This is the persisted half of the sweep.
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

type gormItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &gormItemRepository{db: db}
}

func (r *gormItemRepository) List() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *gormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

func (r *gormItemRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Item{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *gormItemRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", cutoff).Delete(&models.Item{})
	return result.RowsAffected, result.Error
}
