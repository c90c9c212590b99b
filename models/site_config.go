package models

import "time"

// SiteConfig is a single key/value site configuration record. Rows are
// upserted by key and never deleted.
type SiteConfig struct {
	Key       string    `json:"key" db:"key" gorm:"type:text;primaryKey"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}
