package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/adamingor/dodo-pizza-api/internal/config"
	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// DSN builds the Data Source Name for the configured driver.
func DSN(cfg *config.Config) string {
	switch strings.ToLower(cfg.DBDriver) {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
	case "sqlite", "":
		return cfg.DBPath
	default:
		return ""
	}
}

// Init opens the database connection for the configured driver with retry
// logic and connection pooling, and prepares the schema.
func Init(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver := strings.ToLower(cfg.DBDriver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.DBHost,
		"db_name":   cfg.DBName,
		"db_path":   cfg.DBPath,
	}).Info("Initializing database connection")

	// Retry logic: max 5 attempts with exponential backoff
	maxRetries := 5
	retryDelays := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		switch driver {
		case "postgres", "postgresql":
			db, err = gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{})
		case "sqlite", "":
			db, err = gorm.Open(sqlite.Open(DSN(cfg)), &gorm.Config{})
		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.DBDriver)
		}

		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				err = pingErr
			} else {
				configureConnectionPool(sqlDB)
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")

				if err := Migrate(db); err != nil {
					return nil, err
				}
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// Migrate registers the explicit join tables and migrates the schema. The
// cart and order association tables get their own models so they can be
// queried and deleted directly: cart associations cascade away with their
// cart item, order associations are kept as history.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.CartItem{}, "Ingredients", &models.CartItemIngredient{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.CartItem{}, "AdditionalIngredients", &models.CartItemAdditional{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.OrderItem{}, "Ingredients", &models.OrderItemIngredient{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.OrderItem{}, "AdditionalIngredients", &models.OrderItemAdditional{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.VerificationCode{},
		&models.Ingredient{},
		&models.AdditionalIngredient{},
		&models.Attribute{},
		&models.PizzaVariation{},
		&models.Pizza{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
	)
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
