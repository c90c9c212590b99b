package database

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hazemessam/portfolio-backend/models"
)

type SiteConfigRepo struct {
	db *gorm.DB
}

func NewSiteConfigRepo(db *gorm.DB) *SiteConfigRepo {
	return &SiteConfigRepo{db}
}

// Get returns the configuration record for key, or gorm.ErrRecordNotFound
// when no value has been saved yet.
func (r *SiteConfigRepo) Get(key string) (*models.SiteConfig, error) {
	var config models.SiteConfig
	if err := r.db.First(&config, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// Set upserts the value for key, refreshing updated_at
func (r *SiteConfigRepo) Set(key, value string) error {
	config := models.SiteConfig{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&config).Error
}
