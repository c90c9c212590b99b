package database

import (
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/models"
)

type Database struct {
	projectRepo    *ProjectRepo
	guestbookRepo  *GuestbookRepo
	siteConfigRepo *SiteConfigRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:    NewProjectRepo(db),
		guestbookRepo:  NewGuestbookRepo(db),
		siteConfigRepo: NewSiteConfigRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) GuestbookRepo() *GuestbookRepo {
	return d.guestbookRepo
}

func (d Database) SiteConfigRepo() *SiteConfigRepo {
	return d.siteConfigRepo
}

var (
	connectOnce sync.Once
	sharedDB    *gorm.DB
	connectErr  error
)

// Connect opens the process-wide database connection. The first call dials
// and migrates; every later call returns the same handle (or the original
// connection error) without dialing again.
func Connect(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	connectOnce.Do(func() {
		sharedDB, connectErr = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), gormConfig)
		if connectErr != nil {
			return
		}
		connectErr = migrate(sharedDB)
	})
	return sharedDB, connectErr
}

func migrate(db *gorm.DB) error {
	// gen_random_uuid lives in pgcrypto before PostgreSQL 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.Project{},
		&models.GuestbookEntry{},
		&models.SiteConfig{},
	)
}
