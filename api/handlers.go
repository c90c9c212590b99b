package api

import (
	"context"

	"github.com/hazemessam/portfolio-backend/config"
	"github.com/hazemessam/portfolio-backend/database"
	"github.com/hazemessam/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg map[string]string) (*routeHandlers, error) {
	mailer := services.NewMailer(
		config.GetString(cfg, "RESEND_API_KEY", ""),
		config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		config.GetString(cfg, "CONTACT_RECIPIENT", ""),
	)

	// Uploads stay disabled until a bucket is configured; the handler
	// reports that as a server error rather than failing startup.
	var storage ObjectStore
	if bucket := config.GetString(cfg, "S3_BUCKET", ""); bucket != "" {
		s3Storage, err := services.NewS3Storage(
			context.Background(),
			bucket,
			config.GetString(cfg, "S3_PUBLIC_BASE_URL", ""),
		)
		if err != nil {
			return nil, err
		}
		storage = s3Storage
	}

	return &routeHandlers{
		projectHandler:   newProjectHandler(db.ProjectRepo()),
		guestbookHandler: newGuestbookHandler(db.GuestbookRepo()),
		configHandler:    newConfigHandler(db.SiteConfigRepo()),
		contactHandler:   newContactHandler(mailer),
		uploadHandler:    newUploadHandler(storage),
		authHandler: newAuthHandler(
			config.GetString(cfg, "JWT_SECRET", ""),
			config.GetString(cfg, "ADMIN_PASSWORD_HASH", ""),
			config.GetString(cfg, "ADMIN_PASSWORD", ""),
		),
	}, nil
}
