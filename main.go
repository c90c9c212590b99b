package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hazemessam/portfolio-backend/api"
	appconfig "github.com/hazemessam/portfolio-backend/config"
	"github.com/hazemessam/portfolio-backend/database"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	cfg := appconfig.New()

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := database.Connect(buildDSN(cfg), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}

	currentDB := database.New(db)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// buildDSN assembles the connection string from DATABASE_URL, or from the
// individual DB_* variables when no URL is set.
func buildDSN(cfg map[string]string) string {
	if dsn := appconfig.GetString(cfg, "DATABASE_URL", ""); dsn != "" {
		return dsn
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		appconfig.GetString(cfg, "DB_HOST", "localhost"),
		appconfig.GetString(cfg, "DB_USER", "postgres"),
		appconfig.GetString(cfg, "DB_PASSWORD", ""),
		appconfig.GetString(cfg, "DB_NAME", "portfolio"),
		appconfig.GetString(cfg, "DB_PORT", "5432"),
		appconfig.GetString(cfg, "DB_SSLMODE", "disable"),
	)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
