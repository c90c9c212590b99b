package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a showcased portfolio project with metadata
type Project struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"not null"`
	DemoURL     *string                     `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:text"`
	CodeURL     string                      `json:"codeUrl" db:"code_url" gorm:"type:text"`
	Image       *string                     `json:"image,omitempty" db:"image" gorm:"type:text"`
	CreatedAt   time.Time                   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time                   `json:"updatedAt" db:"updated_at"`
}
