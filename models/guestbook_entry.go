package models

import (
	"time"

	"github.com/google/uuid"
)

// GuestbookEntry is a visitor-submitted guestbook record. Entries are
// immutable once written; only an admin can remove them.
type GuestbookEntry struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Location  string    `json:"location" db:"location" gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (GuestbookEntry) TableName() string {
	return "guestbook"
}
