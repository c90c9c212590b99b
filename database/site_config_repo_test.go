package database

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSiteConfigRepoGet(t *testing.T) {
	t.Run("returns the stored record", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSiteConfigRepo(db)

		now := time.Now().UTC()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "site_config" WHERE key = $1`)).
			WithArgs("resumeUrl", 1).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
				AddRow("resumeUrl", "https://cdn.example.com/cv.pdf", now))

		config, err := repo.Get("resumeUrl")
		require.NoError(t, err)
		assert.Equal(t, "resumeUrl", config.Key)
		assert.Equal(t, "https://cdn.example.com/cv.pdf", config.Value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports not found when the key has never been saved", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSiteConfigRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "site_config"`)).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

		config, err := repo.Get("resumeUrl")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, config)
	})
}

func TestSiteConfigRepoSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSiteConfigRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "site_config" ("key","value","updated_at") VALUES ($1,$2,$3) ON CONFLICT ("key") DO UPDATE SET "value"="excluded"."value","updated_at"="excluded"."updated_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set("resumeUrl", "https://cdn.example.com/cv.pdf")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
