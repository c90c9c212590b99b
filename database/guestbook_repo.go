package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/models"
)

type GuestbookRepo struct {
	db *gorm.DB
}

func NewGuestbookRepo(db *gorm.DB) *GuestbookRepo {
	return &GuestbookRepo{db}
}

// FindRecent returns up to limit entries, newest first
func (r *GuestbookRepo) FindRecent(limit int) ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// Add inserts a new guestbook entry
func (r *GuestbookRepo) Add(entry *models.GuestbookEntry) error {
	return r.db.Create(entry).Error
}

// Delete removes the entry with id. Returns gorm.ErrRecordNotFound when
// nothing matched.
func (r *GuestbookRepo) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.GuestbookEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
